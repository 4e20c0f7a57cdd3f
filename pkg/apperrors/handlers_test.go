package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHandleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleError_ValidationEnvelope(t *testing.T) {
	rec, body := runHandleError(t, FieldError("salary", "Invalid salary format."))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, string(CodeValidationFailed), body["code"])
	assert.Nil(t, body["data"])
	assert.Equal(t, map[string]interface{}{"salary": "Invalid salary format."}, body["errors"])
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	rec, body := runHandleError(t, errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	_, hasErrors := body["errors"]
	assert.False(t, hasErrors)
}

func TestHandleError_ConflictAndNotFound(t *testing.T) {
	rec, body := runHandleError(t, ErrAlreadyApplied)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(CodeAlreadyApplied), body["code"])

	rec, body = runHandleError(t, NotFound("job", "Job not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", body["message"])
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	withDetails := ErrProfileNotFound.WithDetails(map[string]string{"role": "company"})

	assert.Nil(t, ErrProfileNotFound.Details)
	assert.NotNil(t, withDetails.Details)
	assert.Equal(t, ErrProfileNotFound.Code, withDetails.Code)
}

func TestInvalidTransition_IsFieldKeyed(t *testing.T) {
	err := ErrInvalidTransition("application", "Can only change from 'Withdrawn' status to 'New'.")

	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details["status"], "Withdrawn")
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
}
