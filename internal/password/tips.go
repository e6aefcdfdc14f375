package password

// SecurityTips are shown next to the checker and generator.
var SecurityTips = []string{
	"Use at least 20 characters for high security.",
	"Mix uppercase, lowercase, numbers, and symbols.",
	"Avoid common or predictable passwords.",
	"Use a password manager and enable 2FA for enhanced security.",
}
