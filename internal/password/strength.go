package password

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rating is the qualitative strength of a password. Weak < Moderate < Strong.
type Rating int

const (
	Weak Rating = iota
	Moderate
	Strong
)

// String returns the display name of the rating.
func (r Rating) String() string {
	switch r {
	case Strong:
		return "Strong"
	case Moderate:
		return "Moderate"
	default:
		return "Weak"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Scoring table.
const (
	LengthMinimum = 8
	LengthGood    = 16
	LengthLong    = 20

	StrongThreshold   = 7
	ModerateThreshold = 4

	// MaxScore is the highest score the criteria can award (3+1+1+1).
	// It is below StrongThreshold, so no password is ever rated Strong.
	MaxScore = 6
)

// FeedbackCode identifies an unmet criterion.
type FeedbackCode string

const (
	FeedbackTooCommon  FeedbackCode = "too_common"
	FeedbackLength     FeedbackCode = "length"
	FeedbackCaseMixing FeedbackCode = "case_mixing"
	FeedbackDigit      FeedbackCode = "digit"
	FeedbackSpecial    FeedbackCode = "special"
)

var feedbackMessages = map[FeedbackCode]string{
	FeedbackTooCommon:  "Too common! Choose a unique password.",
	FeedbackLength:     "At least 8 characters needed.",
	FeedbackCaseMixing: "Include both uppercase and lowercase letters.",
	FeedbackDigit:      "Add at least one digit (0-9).",
	FeedbackSpecial:    "Include at least one special character (!@#$%^&*).",
}

// Feedback describes one unmet criterion.
type Feedback struct {
	Code    FeedbackCode `json:"code"`
	Message string       `json:"message"`
}

func newFeedback(code FeedbackCode) Feedback {
	return Feedback{Code: code, Message: feedbackMessages[code]}
}

// Result is the outcome of a strength evaluation.
type Result struct {
	Rating   Rating
	Score    int
	Message  string
	Feedback []Feedback
}

// Text renders the headline followed by one feedback line per unmet
// criterion. Strong results carry the headline only.
func (r Result) Text() string {
	if r.Rating == Strong || len(r.Feedback) == 0 {
		return r.Message
	}
	lines := make([]string, 0, len(r.Feedback)+1)
	lines = append(lines, r.Message)
	for _, f := range r.Feedback {
		lines = append(lines, f.Message)
	}
	return strings.Join(lines, "\n")
}

func headline(r Rating) string {
	switch r {
	case Strong:
		return "Your password is extremely strong!"
	case Moderate:
		return "Your password is moderate."
	default:
		return "Your password is weak!"
	}
}

// Evaluator scores passwords against a fixed rule set.
// The zero value uses no blacklist; use NewEvaluator.
type Evaluator struct {
	blacklist Blacklist
}

// NewEvaluator returns an Evaluator that rejects entries of blacklist.
func NewEvaluator(blacklist Blacklist) *Evaluator {
	return &Evaluator{blacklist: blacklist}
}

var defaultEvaluator = NewEvaluator(DefaultBlacklist())

// Evaluate scores password with the default blacklist.
func Evaluate(password string) Result {
	return defaultEvaluator.Evaluate(password)
}

// Evaluate scores password. It never fails: every string gets a rating.
func (e *Evaluator) Evaluate(password string) Result {
	if e.blacklist.Contains(password) {
		return Result{
			Rating:   Weak,
			Message:  headline(Weak),
			Feedback: []Feedback{newFeedback(FeedbackTooCommon)},
		}
	}

	score := 0
	var feedback []Feedback

	switch n := utf8.RuneCountInString(password); {
	case n >= LengthLong:
		score += 3
	case n >= LengthGood:
		score += 2
	case n >= LengthMinimum:
		score++
	default:
		feedback = append(feedback, newFeedback(FeedbackLength))
	}

	hasUpper, hasLower, hasDigit, hasSpecial := classify(password)

	if hasUpper && hasLower {
		score++
	} else {
		feedback = append(feedback, newFeedback(FeedbackCaseMixing))
	}

	if hasDigit {
		score++
	} else {
		feedback = append(feedback, newFeedback(FeedbackDigit))
	}

	if hasSpecial {
		score++
	} else {
		feedback = append(feedback, newFeedback(FeedbackSpecial))
	}

	rating := rate(score)
	return Result{
		Rating:   rating,
		Score:    score,
		Message:  headline(rating),
		Feedback: feedback,
	}
}

func rate(score int) Rating {
	switch {
	case score >= StrongThreshold:
		return Strong
	case score >= ModerateThreshold:
		return Moderate
	default:
		return Weak
	}
}

// classify reports which character classes occur in s. Letters are ASCII
// only; digits are any Unicode decimal digit.
func classify(s string) (upper, lower, digit, special bool) {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		}
	}
	return upper, lower, digit, special
}
