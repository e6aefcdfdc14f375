package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Count     int   `json:"count"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
}

// GenerateResponse represents a password generation response.
// Password repeats the first entry of Passwords.
type GenerateResponse struct {
	Password  string   `json:"password"`
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
}
