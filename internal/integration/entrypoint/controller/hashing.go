// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hashlab/backend/internal/application/usecase/hashing"
	domainerror "github.com/hashlab/backend/internal/domain/error"
	"github.com/hashlab/backend/internal/integration/entrypoint/dto"
)

// HashingController handles password hashing endpoints.
type HashingController struct {
	hashUseCase   *hashing.HashPasswordUseCase
	verifyUseCase *hashing.VerifyPasswordUseCase
}

// NewHashingController creates a new hashing controller instance.
func NewHashingController(
	hashUseCase *hashing.HashPasswordUseCase,
	verifyUseCase *hashing.VerifyPasswordUseCase,
) *HashingController {
	return &HashingController{
		hashUseCase:   hashUseCase,
		verifyUseCase: verifyUseCase,
	}
}

// Hash handles POST /hashing/hash requests.
func (c *HashingController) Hash(ctx *gin.Context) {
	var req dto.HashRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := hashing.HashPasswordInput{
		Password: req.Password,
	}

	output, err := c.hashUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHashingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HashResponse{
		Hash:   output.Hash,
		Scheme: string(output.Scheme),
	})
}

// Verify handles POST /hashing/verify requests.
func (c *HashingController) Verify(ctx *gin.Context) {
	var req dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := hashing.VerifyPasswordInput{
		Password: req.Password,
		Hash:     req.Hash,
	}

	output, err := c.verifyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHashingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Valid:        output.Valid,
		UpgradedHash: output.UpgradedHash,
	})
}

// handleHashingError maps domain errors to HTTP responses.
func (c *HashingController) handleHashingError(ctx *gin.Context, err error) {
	var hashErr *domainerror.HashingError
	if errors.As(err, &hashErr) {
		ctx.JSON(c.getStatusCodeForHashingError(hashErr.Code), dto.ErrorResponse{
			Error: hashErr.Message,
			Code:  string(hashErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

// getStatusCodeForHashingError returns the HTTP status code for a hashing error code.
func (c *HashingController) getStatusCodeForHashingError(code domainerror.HashingErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyPassword,
		domainerror.ErrCodePasswordTooLong,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeMalformedHash:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
