package handlers

import (
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers holds every HTTP handler of the API.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	InterviewHandler   *InterviewHandler
	NoteHandler        *NoteHandler
	AnalyticsHandler   *AnalyticsHandler
	PracticeHandler    *PracticeHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, requireAuth gin.HandlerFunc) *AppHandlers {
	base := NewBaseHandler(v, svc.ProfileService, requireAuth)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, svc.AuthService),
		ProfileHandler:     NewProfileHandler(base, svc.ProfileService),
		JobHandler:         NewJobHandler(base, svc.JobService),
		ApplicationHandler: NewApplicationHandler(base, svc.ApplicationService, svc.TimelineService),
		InterviewHandler:   NewInterviewHandler(base, svc.InterviewService),
		NoteHandler:        NewNoteHandler(base, svc.NoteService),
		AnalyticsHandler:   NewAnalyticsHandler(base, svc.AnalyticsService, svc.TimelineService),
		PracticeHandler:    NewPracticeHandler(base, svc.PracticeService),
	}
}

// RegisterRoutes mounts every handler on the API group.
func (h *AppHandlers) RegisterRoutes(api *gin.RouterGroup) {
	h.AuthHandler.RegisterRoutes(api)
	h.ProfileHandler.RegisterRoutes(api)
	h.JobHandler.RegisterRoutes(api)
	h.ApplicationHandler.RegisterRoutes(api)
	h.InterviewHandler.RegisterRoutes(api)
	h.NoteHandler.RegisterRoutes(api)
	h.AnalyticsHandler.RegisterRoutes(api)
	h.PracticeHandler.RegisterRoutes(api)
}
