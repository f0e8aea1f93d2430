package record

import "github.com/mauriciobenjamin700/regexm/pkg/sanitizer"

// User is a registration form. A nil ConfirmPassword means the form had no
// confirmation field; a pointer to "" is a confirmation left blank.
type User struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirm_password,omitempty"`
}

var cleanName = sanitizer.Compose(sanitizer.NormalizeUnicode, sanitizer.Trim)

// Normalize returns a copy with surrounding whitespace removed from name,
// email and phone and the name composed to NFC. Passwords are untouched.
func (u User) Normalize() User {
	u.Name = cleanName(u.Name)
	u.Email = sanitizer.Trim(u.Email)
	u.Phone = sanitizer.Trim(u.Phone)
	return u
}

// Driver holds the documents of a driver record.
type Driver struct {
	CNH   string `json:"cnh"`
	CRV   string `json:"crv"`
	Plate string `json:"plate"`
}
