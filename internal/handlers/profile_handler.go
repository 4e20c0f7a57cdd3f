package handlers

import (
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/me", h.requireAuth, h.GetMyProfile)
	rg.GET("/companies/:id", h.GetCompany)
}

// GetMyProfile godoc
// @Summary Current user and role profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Profile missing"
// @Router /api/v1/profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyProfile(c.Request.Context(), h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Profile retrieved", profile)
}

// GetCompany godoc
// @Summary Public company profile
// @Tags profiles
// @Produce json
// @Param id path string true "Company profile ID"
// @Success 200 {object} SuccessResponse{data=models.CompanyProfile}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/companies/{id} [get]
func (h *ProfileHandler) GetCompany(c *gin.Context) {
	company, err := h.profileService.GetCompany(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondOK(c, "Company retrieved", company)
}
