package hashing

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/hashlab/backend/internal/domain/error"
	"github.com/hashlab/backend/internal/domain/valueobject"
	"github.com/hashlab/backend/internal/integration/adapters"
)

func TestVerifyPassword(t *testing.T) {
	policy := valueobject.NewHashPolicy(bcrypt.MinCost)
	service := adapters.NewPasswordService(policy)
	uc := NewVerifyPasswordUseCase(service)

	hash, err := service.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), VerifyPasswordInput{
			Password: "password123",
			Hash:     hash,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Valid {
			t.Error("valid = false, want true")
		}
		if output.UpgradedHash != "" {
			t.Errorf("upgraded hash = %q, want none for a fresh hash", output.UpgradedHash)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), VerifyPasswordInput{
			Password: "wrong_password",
			Hash:     hash,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Valid {
			t.Error("valid = true, want false for a mismatch")
		}
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), VerifyPasswordInput{
			Password: "password123",
			Hash:     "not-a-bcrypt-hash",
		})
		if err == nil {
			t.Fatal("Execute() succeeded, want a domain error")
		}

		var hashErr *domainerror.HashingError
		if !errors.As(err, &hashErr) {
			t.Fatalf("Execute() error = %v, want a HashingError", err)
		}
		if hashErr.Code != domainerror.ErrCodeMalformedHash {
			t.Errorf("error code = %q, want %q", hashErr.Code, domainerror.ErrCodeMalformedHash)
		}
	})
}

func TestVerifyPasswordUpgradesDeprecatedHash(t *testing.T) {
	// Hash produced under an old, cheaper policy.
	oldService := adapters.NewPasswordService(valueobject.NewHashPolicy(bcrypt.MinCost))
	oldHash, err := oldService.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// Verify under the current, stricter policy.
	currentService := adapters.NewPasswordService(valueobject.NewHashPolicy(bcrypt.MinCost + 1))
	uc := NewVerifyPasswordUseCase(currentService)

	output, err := uc.Execute(context.Background(), VerifyPasswordInput{
		Password: "password123",
		Hash:     oldHash,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Valid {
		t.Fatal("valid = false, want true")
	}
	if output.UpgradedHash == "" {
		t.Fatal("upgraded hash missing, want an automatic upgrade for the deprecated hash")
	}
	if output.UpgradedHash == oldHash {
		t.Error("upgraded hash equals the deprecated hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(output.UpgradedHash), []byte("password123")); err != nil {
		t.Errorf("upgraded hash does not verify: %v", err)
	}
	if currentService.NeedsUpgrade(output.UpgradedHash) {
		t.Error("upgraded hash is still deprecated under the current policy")
	}
}
