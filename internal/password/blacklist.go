package password

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCommonPasswords are always rejected as too common.
var DefaultCommonPasswords = []string{
	"password", "123456", "123456789", "qwerty", "abc123",
	"password1", "12345", "12345678", "admin",
}

// Blacklist is an immutable, case-insensitive set of known-weak passwords.
// It is safe for concurrent reads.
type Blacklist struct {
	words map[string]struct{}
}

// NewBlacklist builds a blacklist from words. Empty entries are ignored.
func NewBlacklist(words ...string) Blacklist {
	b := Blacklist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		b.words[fold(w)] = struct{}{}
	}
	return b
}

// DefaultBlacklist returns a blacklist holding DefaultCommonPasswords.
func DefaultBlacklist() Blacklist {
	return NewBlacklist(DefaultCommonPasswords...)
}

// With returns a new blacklist holding the receiver's words plus words.
func (b Blacklist) With(words ...string) Blacklist {
	merged := Blacklist{words: make(map[string]struct{}, len(b.words)+len(words))}
	for w := range b.words {
		merged.words[w] = struct{}{}
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		merged.words[fold(w)] = struct{}{}
	}
	return merged
}

// Contains reports whether the lower-cased password is blacklisted.
func (b Blacklist) Contains(password string) bool {
	_, ok := b.words[fold(password)]
	return ok
}

// Len returns the number of distinct entries.
func (b Blacklist) Len() int {
	return len(b.words)
}

// fold lower-cases s. A Caser holds state, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
