package apperrors

import (
	"net/http"
)

// NotFound reports an absent entity, or one outside the caller's ownership scope.
// Both cases produce the same response.
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidTransition is a validation failure keyed on the status field.
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, "Invalid status transition", http.StatusBadRequest).
		WithDetails(map[string]string{"status": message})
}

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"You do not have permission to perform this action",
	http.StatusForbidden,
)

var ErrProfileNotFound = New(
	CodeProfileNotFound,
	"profile",
	"Profile not found for this user",
	http.StatusNotFound,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyApplied,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
