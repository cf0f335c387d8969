// Package hashing contains password hashing use cases.
package hashing

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashlab/backend/internal/application/adapter"
	domainerror "github.com/hashlab/backend/internal/domain/error"
)

// VerifyPasswordInput represents the input for password verification.
type VerifyPasswordInput struct {
	Password string
	Hash     string
}

// VerifyPasswordOutput represents the output of password verification.
// UpgradedHash is set only when the verification succeeded and the stored
// hash is deprecated under the active policy.
type VerifyPasswordOutput struct {
	Valid        bool
	UpgradedHash string
}

// VerifyPasswordUseCase handles password verification logic, including the
// automatic upgrade of deprecated hashes.
type VerifyPasswordUseCase struct {
	passwordService adapter.PasswordService
}

// NewVerifyPasswordUseCase creates a new VerifyPasswordUseCase instance.
func NewVerifyPasswordUseCase(passwordService adapter.PasswordService) *VerifyPasswordUseCase {
	return &VerifyPasswordUseCase{
		passwordService: passwordService,
	}
}

// Execute verifies the plaintext against the stored hash.
func (uc *VerifyPasswordUseCase) Execute(ctx context.Context, input VerifyPasswordInput) (*VerifyPasswordOutput, error) {
	err := uc.passwordService.VerifyPassword(input.Hash, input.Password)
	if err != nil {
		if errors.Is(err, domainerror.ErrHashMismatch) {
			// A mismatch is a valid outcome, not an error.
			return &VerifyPasswordOutput{Valid: false}, nil
		}
		return nil, domainerror.NewHashingError(
			domainerror.ErrCodeMalformedHash,
			"stored hash is not a valid bcrypt hash",
			domainerror.ErrMalformedHash,
		)
	}

	output := &VerifyPasswordOutput{Valid: true}

	if uc.passwordService.NeedsUpgrade(input.Hash) {
		upgraded, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to upgrade deprecated hash: %w", err)
		}
		output.UpgradedHash = upgraded
	}

	return output, nil
}
