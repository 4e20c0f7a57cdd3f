package handlers

import (
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/search", h.SearchJobs)
		jobs.GET("/:id", h.GetJob)
	}

	company := rg.Group("/jobs")
	company.Use(h.requireAuth, middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.GET("/company", h.ListCompanyJobs)
		company.POST("", h.CreateJob)
		company.PUT("/:id", h.UpdateJob)
	}
}

// ListJobs godoc
// @Summary Active job postings, newest first
// @Tags jobs
// @Produce json
// @Param location query string false "Location substring"
// @Param employment_type query string false "Employment type"
// @Param experience_level query string false "Experience level"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.JobResponse}}
// @Router /api/v1/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, total, err := h.jobService.ListJobs(c.Request.Context(), h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Jobs retrieved", jobs, total, query.PageQuery)
}

// SearchJobs godoc
// @Summary Free-text search over title, description, requirements and company name
// @Tags jobs
// @Produce json
// @Param q query string false "Search text"
// @Param location query string false "Location substring"
// @Param employment_type query string false "Employment type"
// @Param experience_level query string false "Experience level"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.JobResponse}}
// @Router /api/v1/jobs/search [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, total, err := h.jobService.SearchJobs(c.Request.Context(), h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Jobs retrieved", jobs, total, query.PageQuery)
}

// GetJob godoc
// @Summary Job posting by id
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} SuccessResponse{data=dto.JobResponse}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Job retrieved", job)
}

// ListCompanyJobs godoc
// @Summary Every job of the caller's company, any status
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.JobResponse}}
// @Router /api/v1/jobs/company [get]
func (h *JobHandler) ListCompanyJobs(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	jobs, total, err := h.jobService.ListCompanyJobs(c.Request.Context(), h.GetDB(c), actor, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Jobs retrieved", jobs, total, page)
}

// CreateJob godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} SuccessResponse{data=dto.JobResponse}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Job created", job)
}

// UpdateJob godoc
// @Summary Partially update an owned job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.JobResponse}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Job updated", job)
}
