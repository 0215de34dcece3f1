package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingRequiredData = errors.New("seller id and api key are required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token expired")
	ErrAuthDisabled        = errors.New("authentication is disabled")
)

// AuthError is an authentication failure with its API error code.
type AuthError struct {
	Err      error
	Code     string
	SellerID string
	Details  string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMissingRequiredData)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewSellerAuthError(baseErr error, code string, sellerID string, details string) *AuthError {
	return &AuthError{
		Err:      baseErr,
		Code:     code,
		SellerID: sellerID,
		Details:  details,
	}
}
