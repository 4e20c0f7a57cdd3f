package handlers

import (
	"net/http"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(h.requireAuth, middleware.RoleMiddleware(models.UserRoleCompany))
	{
		applications.GET("/:id/interviews", h.ListInterviews)
		applications.POST("/:id/interviews", h.CreateInterview)

		applications.GET("/interviews/:interviewId", h.GetInterview)
		applications.PUT("/interviews/:interviewId", h.UpdateInterview)
		applications.DELETE("/interviews/:interviewId", h.DeleteInterview)
	}
}

// CreateInterview godoc
// @Summary Schedule an interview for an application
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.CreateInterviewRequest true "Interview"
// @Success 201 {object} SuccessResponse{data=dto.InterviewResponse}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/{id}/interviews [post]
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.CreateInterview(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Interview scheduled", interview)
}

// ListInterviews godoc
// @Summary Interviews of an application, earliest first
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.InterviewResponse}}
// @Router /api/v1/applications/{id}/interviews [get]
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	items, total, err := h.interviewService.ListInterviews(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Interviews retrieved", items, total, page)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	interview, err := h.interviewService.GetInterview(c.Request.Context(), h.GetDB(c), actor, c.Param("interviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Interview retrieved", interview)
}

// UpdateInterview godoc
// @Summary Partially update an interview
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interviewId path string true "Interview ID"
// @Param request body dto.UpdateInterviewRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.InterviewResponse}
// @Router /api/v1/applications/interviews/{interviewId} [put]
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateInterview(c.Request.Context(), h.GetDB(c), actor, c.Param("interviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Interview updated", interview)
}

func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.interviewService.DeleteInterview(c.Request.Context(), h.GetDB(c), actor, c.Param("interviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
