// Package hashing contains password hashing use cases.
package hashing

import (
	"context"
	"fmt"

	"github.com/hashlab/backend/internal/application/adapter"
	domainerror "github.com/hashlab/backend/internal/domain/error"
	"github.com/hashlab/backend/internal/domain/valueobject"
)

// maxPasswordBytes is the bcrypt input limit; longer inputs are silently
// truncated by the algorithm, so they are rejected instead.
const maxPasswordBytes = 72

// HashPasswordInput represents the input for password hashing.
type HashPasswordInput struct {
	Password string
}

// HashPasswordOutput represents the output of password hashing.
type HashPasswordOutput struct {
	Hash   string
	Scheme valueobject.Scheme
}

// HashPasswordUseCase handles password hashing logic.
type HashPasswordUseCase struct {
	passwordService adapter.PasswordService
	policy          valueobject.HashPolicy
}

// NewHashPasswordUseCase creates a new HashPasswordUseCase instance.
func NewHashPasswordUseCase(
	passwordService adapter.PasswordService,
	policy valueobject.HashPolicy,
) *HashPasswordUseCase {
	return &HashPasswordUseCase{
		passwordService: passwordService,
		policy:          policy,
	}
}

// Execute hashes the given plaintext under the active policy.
func (uc *HashPasswordUseCase) Execute(ctx context.Context, input HashPasswordInput) (*HashPasswordOutput, error) {
	if input.Password == "" {
		return nil, domainerror.NewHashingError(
			domainerror.ErrCodeEmptyPassword,
			"password must not be empty",
			domainerror.ErrEmptyPassword,
		)
	}

	if len(input.Password) > maxPasswordBytes {
		return nil, domainerror.NewHashingError(
			domainerror.ErrCodePasswordTooLong,
			"password exceeds the 72 byte bcrypt limit",
			domainerror.ErrPasswordTooLong,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &HashPasswordOutput{
		Hash:   hash,
		Scheme: uc.policy.Scheme,
	}, nil
}
