package handlers

import (
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	timelineService    services.TimelineService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, timelineService services.TimelineService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		timelineService:    timelineService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(h.requireAuth)
	{
		jobSeeker := middleware.RoleMiddleware(models.UserRoleJobSeeker)
		company := middleware.RoleMiddleware(models.UserRoleCompany)

		applications.POST("", jobSeeker, h.Apply)
		applications.GET("/jobseeker", jobSeeker, h.ListMyApplications)
		applications.PUT("/:id", jobSeeker, h.UpdateApplication)

		applications.GET("/company", company, h.ListCompanyApplications)
		applications.GET("/job/:jobId", company, h.ListJobApplications)
		applications.PUT("/:id/status", company, h.UpdateStatus)

		applications.GET("/:id", h.GetApplication)
		applications.GET("/:id/timeline", h.ListTimeline)
	}
}

// Apply godoc
// @Summary Apply to an active job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} SuccessResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} apperrors.ErrorResponse "Inactive job or deadline passed"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Already applied"
// @Router /api/v1/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Application submitted", app)
}

// ListMyApplications godoc
// @Summary The caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.ApplicationResponse}}
// @Router /api/v1/applications/jobseeker [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	apps, total, err := h.applicationService.ListMyApplications(c.Request.Context(), h.GetDB(c), actor, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Applications retrieved", apps, total, page)
}

// ListCompanyApplications godoc
// @Summary Applications received across the company's jobs
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.ApplicationResponse}}
// @Router /api/v1/applications/company [get]
func (h *ApplicationHandler) ListCompanyApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	apps, total, err := h.applicationService.ListCompanyApplications(c.Request.Context(), h.GetDB(c), actor, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Applications retrieved", apps, total, page)
}

// ListJobApplications godoc
// @Summary Applications for one owned job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.ApplicationResponse}}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/job/{jobId} [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	apps, total, err := h.applicationService.ListJobApplications(c.Request.Context(), h.GetDB(c), actor, c.Param("jobId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Applications retrieved", apps, total, page)
}

// GetApplication godoc
// @Summary Application visible to its job seeker or the job's company
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} SuccessResponse{data=dto.ApplicationResponse}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	app, err := h.applicationService.GetApplication(c.Request.Context(), h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Application retrieved", app)
}

// UpdateApplication godoc
// @Summary Edit cover letter or resume
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationRequest true "Content"
// @Success 200 {object} SuccessResponse{data=dto.ApplicationResponse}
// @Router /api/v1/applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateApplication(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Application updated", app)
}

// UpdateStatus godoc
// @Summary Move an application to a new status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} apperrors.ErrorResponse "Transition not allowed"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Application status updated", app)
}

// ListTimeline godoc
// @Summary Event log of one application, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.TimelineEventResponse}}
// @Router /api/v1/applications/{id}/timeline [get]
func (h *ApplicationHandler) ListTimeline(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	events, total, err := h.timelineService.ListTimeline(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Timeline retrieved", events, total, page)
}
