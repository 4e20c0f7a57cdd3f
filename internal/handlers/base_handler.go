package handlers

import (
	"context"
	"fmt"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"
	"jobtracker_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActorResolver turns the authenticated user into a policy.Actor with profile ids.
type ActorResolver interface {
	ResolveActor(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) (policy.Actor, error)
}

type BaseHandler struct {
	validator   *validator.Validator
	actors      ActorResolver
	requireAuth gin.HandlerFunc
}

// NewBaseHandler wires the shared helpers. requireAuth guards every non-public route.
func NewBaseHandler(v *validator.Validator, actors ActorResolver, requireAuth gin.HandlerFunc) *BaseHandler {
	return &BaseHandler{
		validator:   v,
		actors:      actors,
		requireAuth: requireAuth,
	}
}

// GetDB returns the *gorm.DB placed on the context by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	} else {
		logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	userID := c.GetString(contextkeys.UserIDKey)
	if userID == "" {
		logger.CtxWarn(ctx, "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	return userID, true
}

// GetActor resolves the caller's role and profile ids. A user whose profile is
// missing gets 404 PROFILE_NOT_FOUND.
func (h *BaseHandler) GetActor(c *gin.Context) (policy.Actor, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return policy.Actor{}, false
	}

	role := models.UserRole(c.GetString(contextkeys.RoleKey))
	actor, err := h.actors.ResolveActor(c.Request.Context(), h.GetDB(c), userID, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return policy.Actor{}, false
	}
	return actor, true
}

// ParsePagination binds ?page=&page_size=. Non-numeric values are a validation error;
// out-of-range numbers are clamped.
func (h *BaseHandler) ParsePagination(c *gin.Context) (dto.PageQuery, bool) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{
			"page": "Page and page_size must be integers.",
		}))
		return page, false
	}
	return page.Resolve(), true
}
