package apperrors

type ErrorCode string

const (
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeAlreadyApplied   ErrorCode = "ALREADY_APPLIED"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
