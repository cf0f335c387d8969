// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hashlab/backend/internal/application/adapter"
	domainerror "github.com/hashlab/backend/internal/domain/error"
	"github.com/hashlab/backend/internal/domain/valueobject"
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	policy valueobject.HashPolicy
}

// NewPasswordService creates a new password service bound to a hash policy.
func NewPasswordService(policy valueobject.HashPolicy) adapter.PasswordService {
	return &passwordService{policy: policy}
}

// HashPassword hashes a plain text password using bcrypt with the policy's
// active cost.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.policy.ActiveCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
// It returns domainerror.ErrHashMismatch when the plaintext does not match
// and domainerror.ErrMalformedHash when the hash cannot be parsed.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainerror.ErrHashMismatch
	}
	return fmt.Errorf("%w: %w", domainerror.ErrMalformedHash, err)
}

// NeedsUpgrade reports whether a stored hash was produced with a deprecated
// cost. Hashes whose cost cannot be read are treated as deprecated.
func (s *passwordService) NeedsUpgrade(hashedPassword string) bool {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return true
	}
	return s.policy.IsDeprecatedCost(cost)
}
