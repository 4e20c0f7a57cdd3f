package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error side of the response envelope.
type ErrorResponse struct {
	Status  string      `json:"status"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors,omitempty"`
}

// GinErrorHandler writes AppErrors as envelopes.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.ErrorContext(c.Request.Context(), "server error", "code", appErr.Code, "error", appErr.Unwrap())
		if !h.Debug {
			appErr = InternalError(appErr.Err)
			appErr.Details = nil
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Status:  "error",
		Code:    appErr.Code,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug toggles whether 5xx details are kept. Called once at startup.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
