// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password under the active policy.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// A mismatch is reported as domainerror.ErrHashMismatch, an unparsable
	// hash as domainerror.ErrMalformedHash.
	VerifyPassword(hashedPassword, password string) error

	// NeedsUpgrade reports whether a stored hash is deprecated under the
	// active policy and should be replaced after a successful verification.
	NeedsUpgrade(hashedPassword string) bool
}
