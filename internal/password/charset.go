package password

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"

	// SpecialChars is the allow-list shared by the strength check and the
	// generator. Symbols outside this set are not counted as special.
	SpecialChars = "!@#$%^&*"
)

// Classes selects which character classes feed the generator pool.
type Classes struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool
}

// AllClasses returns a selection with every class enabled.
func AllClasses() Classes {
	return Classes{Uppercase: true, Lowercase: true, Digits: true, Special: true}
}

// Pool concatenates the enabled classes in fixed order: uppercase, lowercase,
// digits, special. It returns "" when nothing is enabled.
func (c Classes) Pool() string {
	var pool string
	if c.Uppercase {
		pool += UppercaseChars
	}
	if c.Lowercase {
		pool += LowercaseChars
	}
	if c.Digits {
		pool += DigitChars
	}
	if c.Special {
		pool += SpecialChars
	}
	return pool
}
