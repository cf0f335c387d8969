// Package dto defines data transfer objects for API requests and responses.
package dto

// HashRequest represents the request body for password hashing.
type HashRequest struct {
	Password string `json:"password" binding:"required"`
}

// HashResponse represents the response for password hashing.
type HashResponse struct {
	Hash   string `json:"hash"`
	Scheme string `json:"scheme"`
}

// VerifyRequest represents the request body for password verification.
type VerifyRequest struct {
	Password string `json:"password" binding:"required"`
	Hash     string `json:"hash" binding:"required"`
}

// VerifyResponse represents the response for password verification.
// UpgradedHash is present only when the stored hash was deprecated and the
// verification succeeded.
type VerifyResponse struct {
	Valid        bool   `json:"valid"`
	UpgradedHash string `json:"upgraded_hash,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
