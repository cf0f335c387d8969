// Package main is a one-shot demonstration of the password hashing service.
// It hashes a fixed plaintext and prints the result, mirroring the service's
// hashing endpoint behavior without any transport.
package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/hashlab/backend/config"
	"github.com/hashlab/backend/internal/application/usecase/hashing"
	"github.com/hashlab/backend/internal/domain/valueobject"
	"github.com/hashlab/backend/internal/integration/adapters"
)

// demoPassword is the fixed plaintext hashed by the demo.
const demoPassword = "password123"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	policy := valueobject.NewHashPolicy(cfg.Hashing.BcryptCost)
	passwordService := adapters.NewPasswordService(policy)
	hashUseCase := hashing.NewHashPasswordUseCase(passwordService, policy)

	output, err := hashUseCase.Execute(context.Background(), hashing.HashPasswordInput{
		Password: demoPassword,
	})
	if err != nil {
		// The error path is caught; the demo always exits 0.
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Printf("Hash: %s\n", output.Hash)
}
