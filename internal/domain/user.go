package domain

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
)

// User represents a registered user of the service.
// The ID is assigned by the store on creation.
type User struct {
	ID             int64  `json:"id"   db:"id"`
	Name           string `json:"name" db:"name"`
	Email          string `json:"email" db:"email"`
	Password       string `json:"-" db:"-"`        // Plaintext, held only between registration and hashing
	HashedPassword string `json:"-" db:"password"` // Never exposed in JSON
}

// NewUser creates a new User with the given name, email and plaintext password.
// Returns an error if validation fails.
//
// NOTE: the caller is responsible for hashing the password before storing
// the user; the store rejects users whose HashedPassword is empty.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 6 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates inputs above 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a single @
// with a dotted domain after it. Structural validation of request payloads is
// handled by the validator at the API boundary; this is a last line of defense.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return !strings.Contains(domain, "@")
}
