package password

import (
	"reflect"
	"strings"
	"testing"
)

func codes(fb []Feedback) []FeedbackCode {
	out := make([]FeedbackCode, len(fb))
	for i, f := range fb {
		out[i] = f.Code
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		want      Rating
		wantCodes []FeedbackCode
	}{
		{
			name:      "empty",
			password:  "",
			wantScore: 0,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackLength, FeedbackCaseMixing, FeedbackDigit, FeedbackSpecial},
		},
		{
			name:      "moderate ten characters",
			password:  "Abcdefgh1!",
			wantScore: 4,
			want:      Moderate,
			wantCodes: nil,
		},
		{
			name:      "short but every class",
			password:  "Ab1!",
			wantScore: 3,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackLength},
		},
		{
			name:      "sixteen characters",
			password:  "Abcdefghijklmn1!",
			wantScore: 5,
			want:      Moderate,
			wantCodes: nil,
		},
		{
			name:      "twenty characters caps at six",
			password:  "Abcdefghijklmnopqr1!",
			wantScore: 6,
			want:      Moderate,
			wantCodes: nil,
		},
		{
			name:      "long lowercase only",
			password:  "correcthorsebatterystaple",
			wantScore: 3,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackCaseMixing, FeedbackDigit, FeedbackSpecial},
		},
		{
			name:      "symbol outside allow-list",
			password:  "Abcdefgh1?",
			wantScore: 3,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackSpecial},
		},
		{
			name:      "non-ascii letters are not case mixing",
			password:  "ÄÖÜäöüßé1!",
			wantScore: 3,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackCaseMixing},
		},
		{
			name:      "unicode decimal digit counts",
			password:  "Abcdefgh!٣",
			wantScore: 4,
			want:      Moderate,
			wantCodes: nil,
		},
		{
			name:      "length counts characters not bytes",
			password:  "ééééééé",
			wantScore: 0,
			want:      Weak,
			wantCodes: []FeedbackCode{FeedbackLength, FeedbackCaseMixing, FeedbackDigit, FeedbackSpecial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Evaluate(%q) score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Rating != tt.want {
				t.Errorf("Evaluate(%q) rating = %v, want %v", tt.password, got.Rating, tt.want)
			}
			if gotCodes := codes(got.Feedback); len(gotCodes) != 0 || len(tt.wantCodes) != 0 {
				if !reflect.DeepEqual(gotCodes, tt.wantCodes) {
					t.Errorf("Evaluate(%q) feedback = %v, want %v", tt.password, gotCodes, tt.wantCodes)
				}
			}
		})
	}
}

func TestEvaluateCommonPasswordShortCircuits(t *testing.T) {
	for _, pw := range []string{"password", "PASSWORD", "PassWord", "Admin", "abc123"} {
		got := Evaluate(pw)
		if got.Rating != Weak {
			t.Errorf("Evaluate(%q) rating = %v, want Weak", pw, got.Rating)
		}
		if len(got.Feedback) != 1 || got.Feedback[0].Code != FeedbackTooCommon {
			t.Errorf("Evaluate(%q) feedback = %v, want only too_common", pw, codes(got.Feedback))
		}
		if got.Score != 0 {
			t.Errorf("Evaluate(%q) score = %d, want 0", pw, got.Score)
		}
	}
}

func TestEvaluateWithoutBlacklist(t *testing.T) {
	e := NewEvaluator(NewBlacklist())

	got := e.Evaluate("abc123")
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}
	if got.Rating != Weak {
		t.Errorf("rating = %v, want Weak", got.Rating)
	}
	want := []FeedbackCode{FeedbackLength, FeedbackCaseMixing, FeedbackSpecial}
	if !reflect.DeepEqual(codes(got.Feedback), want) {
		t.Errorf("feedback = %v, want %v", codes(got.Feedback), want)
	}
}

func TestEvaluateCustomBlacklist(t *testing.T) {
	e := NewEvaluator(DefaultBlacklist().With("Summer2024!"))

	if got := e.Evaluate("SUMMER2024!"); got.Feedback[0].Code != FeedbackTooCommon {
		t.Errorf("expected extended blacklist entry to be rejected, got %v", codes(got.Feedback))
	}
	if got := e.Evaluate("qwerty"); got.Feedback[0].Code != FeedbackTooCommon {
		t.Errorf("expected default entry to be kept, got %v", codes(got.Feedback))
	}
}

func TestEvaluateIsTotal(t *testing.T) {
	inputs := []string{"", " ", "\x00", "\xff\xfe", "🔐🔑", strings.Repeat("a", 10000), strings.Repeat("Aa1!", 2500)}
	for n := 0; n <= 64; n++ {
		inputs = append(inputs, strings.Repeat("x", n))
	}

	for _, in := range inputs {
		got := Evaluate(in)
		switch got.Rating {
		case Weak, Moderate, Strong:
		default:
			t.Errorf("Evaluate(len %d) returned unknown rating %d", len(in), got.Rating)
		}
		if got.Message == "" {
			t.Errorf("Evaluate(len %d) returned empty message", len(in))
		}
	}
}

func TestEvaluateScoreIsMonotonic(t *testing.T) {
	steps := []string{"abcdefgh", "abcdefgh1", "Abcdefgh1", "Abcdefgh1!", "Abcdefgh1!xxxxxx", "Abcdefgh1!xxxxxxxxxx"}

	prev := -1
	for _, pw := range steps {
		got := Evaluate(pw).Score
		if got < prev {
			t.Errorf("Evaluate(%q) score = %d, decreased from %d", pw, got, prev)
		}
		prev = got
	}
}

// Guards the scoring ceiling: if thresholds or weights change, this fails
// until MaxScore and StrongThreshold are reconciled.
func TestEvaluateMaxScoreBelowStrong(t *testing.T) {
	markers := []string{"A", "a", "1", "!"}
	lengths := []int{0, 7, 8, 15, 16, 19, 20, 64}

	best := 0
	for mask := 0; mask < 1<<len(markers); mask++ {
		var base string
		for i, m := range markers {
			if mask&(1<<i) != 0 {
				base += m
			}
		}
		for _, n := range lengths {
			pw := base
			for len(pw) < n {
				pw += "z"
			}
			got := Evaluate(pw)
			if got.Score > MaxScore {
				t.Fatalf("Evaluate(%q) score = %d exceeds MaxScore %d", pw, got.Score, MaxScore)
			}
			if got.Rating == Strong {
				t.Fatalf("Evaluate(%q) rated Strong", pw)
			}
			if got.Score > best {
				best = got.Score
			}
		}
	}

	if best != MaxScore {
		t.Errorf("highest attainable score = %d, want %d", best, MaxScore)
	}
	if MaxScore >= StrongThreshold {
		t.Errorf("MaxScore %d reaches StrongThreshold %d; update this guard", MaxScore, StrongThreshold)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		score int
		want  Rating
	}{
		{0, Weak}, {3, Weak}, {4, Moderate}, {6, Moderate}, {7, Strong}, {9, Strong},
	}
	for _, tt := range tests {
		if got := rate(tt.score); got != tt.want {
			t.Errorf("rate(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestRatingOrderAndText(t *testing.T) {
	if !(Weak < Moderate && Moderate < Strong) {
		t.Fatal("ratings are not ordered Weak < Moderate < Strong")
	}
	for r, want := range map[Rating]string{Weak: "Weak", Moderate: "Moderate", Strong: "Strong"} {
		b, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() unexpected error: %v", err)
		}
		if string(b) != want {
			t.Errorf("MarshalText() = %q, want %q", b, want)
		}
	}
}

func TestResultText(t *testing.T) {
	got := Evaluate("abcdefgh").Text()
	want := "Your password is weak!\n" +
		"Include both uppercase and lowercase letters.\n" +
		"Add at least one digit (0-9).\n" +
		"Include at least one special character (!@#$%^&*)."
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	strong := Result{Rating: Strong, Message: headline(Strong), Feedback: []Feedback{newFeedback(FeedbackDigit)}}
	if strong.Text() != "Your password is extremely strong!" {
		t.Errorf("Strong Text() = %q, should omit feedback", strong.Text())
	}

	if got := Evaluate("Abcdefgh1!").Text(); got != "Your password is moderate." {
		t.Errorf("Text() = %q, want headline only", got)
	}
}
