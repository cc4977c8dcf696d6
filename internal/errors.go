package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoToken      = errors.New("no stored token")
	ErrTokenExpired = errors.New("token expired")
)

// ApiError carries the HTTP status and server-provided detail of a failed
// API call.
type ApiError struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error,omitempty"`
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Msg)
}

func NewApiError(statusCode int, msg string) *ApiError {
	return &ApiError{StatusCode: statusCode, Msg: msg}
}
