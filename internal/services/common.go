package services

import (
	"errors"
	"time"

	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func defaultClock(c Clock) Clock {
	if c == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return c
}

// asValidationError converts validator output into the API error. Other errors are internal.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Errors)
	}
	return apperrors.InternalError(err)
}
