package handlers

import (
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
	timelineService  services.TimelineService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService, timelineService services.TimelineService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
		timelineService:  timelineService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(h.requireAuth, middleware.RoleMiddleware(models.UserRoleJobSeeker))
	{
		analytics.GET("/dashboard", h.GetDashboard)
		analytics.GET("/timeline", h.GetTimeline)
	}
}

// GetDashboard godoc
// @Summary Application counts by status group
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.DashboardMetrics}
// @Router /api/v1/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	metrics, err := h.analyticsService.Dashboard(c.Request.Context(), h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Dashboard retrieved", metrics)
}

// GetTimeline godoc
// @Summary Events across all of the caller's applications, newest first
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.TimelineEventResponse}}
// @Router /api/v1/analytics/timeline [get]
func (h *AnalyticsHandler) GetTimeline(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	events, total, err := h.timelineService.MyTimeline(c.Request.Context(), h.GetDB(c), actor, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Timeline retrieved", events, total, page)
}
