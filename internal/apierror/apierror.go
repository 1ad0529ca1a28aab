// Package apierror provides the typed error taxonomy for the API.
// Every 4xx/5xx returned to clients goes through this package so that
// internal details (stack traces, SQL errors) are never leaked.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries an HTTP status code and a client-safe message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(code int, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Validation reports a missing/empty required field.
func Validation(field string) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf("%s is required.", field))
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

// Conflict reports a duplicate unique field for the named entity.
func Conflict(name string) *Error {
	return New(http.StatusConflict, fmt.Sprintf("%s with this name already exists.", name))
}

// NotFound reports a primary-key lookup miss for the named entity.
func NotFound(name string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("%s not found!", name))
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *Error {
	return New(http.StatusForbidden, msg)
}

// StatusOf extracts the HTTP status for err. Anything that is not an
// *apierror.Error funnels to 500 — the caller logs the detail and responds
// with a generic message.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}
