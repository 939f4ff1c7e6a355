package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for hashing plaintext passwords.
type PasswordHasher interface {
	// Hash produces an opaque digest for the given plaintext password.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptService implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptService struct {
	cost int
}

// NewBcryptService creates a BcryptService with the given cost.
// A cost of zero or less selects the bcrypt default.
func NewBcryptService(cost int) *BcryptService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

// Ensure BcryptService implements both interfaces
var (
	_ PasswordHasher   = (*BcryptService)(nil)
	_ PasswordVerifier = (*BcryptService)(nil)
)

// Hash implements the PasswordHasher interface using bcrypt.
func (s *BcryptService) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (s *BcryptService) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
