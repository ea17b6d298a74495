package models

// User is a local account. Passwords are stored in plaintext on purpose:
// the store lives on the user's own machine and is not a security boundary.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
}
