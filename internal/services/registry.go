package services

import (
	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	InterviewService    InterviewService
	NoteService         NoteService
	TimelineService     TimelineService
	AnalyticsService    AnalyticsService
	PracticeService     PracticeService
	NotificationService NotificationService
}

type Dependencies struct {
	JWT       *auth.JWTManager
	Email     email.Provider
	Metrics   metrics.Sink
	Validator *validator.Validator
	Clock     Clock
}

// NewServiceContainer wires repositories into services.
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNoopSink()
	}
	if deps.Email == nil {
		deps.Email = email.NewNoopProvider()
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	skillRepo := repositories.NewSkillRepository()
	appRepo := repositories.NewApplicationRepository()
	interviewRepo := repositories.NewInterviewRepository()
	noteRepo := repositories.NewNoteRepository()
	timelineRepo := repositories.NewTimelineRepository()
	practiceRepo := repositories.NewPracticeRepository()

	notifier := NewNotificationService(deps.Email, userRepo, profileRepo, deps.Metrics)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, profileRepo, deps.JWT),
		ProfileService:      NewProfileService(userRepo, profileRepo),
		JobService:          NewJobService(jobRepo, skillRepo, deps.Validator, deps.Metrics, deps.Clock),
		ApplicationService:  NewApplicationService(appRepo, jobRepo, timelineRepo, notifier, deps.Validator, deps.Metrics, deps.Clock),
		InterviewService:    NewInterviewService(interviewRepo, appRepo, notifier, deps.Validator, deps.Metrics, deps.Clock),
		NoteService:         NewNoteService(noteRepo, appRepo, deps.Validator, deps.Metrics),
		TimelineService:     NewTimelineService(timelineRepo, appRepo),
		AnalyticsService:    NewAnalyticsService(appRepo),
		PracticeService:     NewPracticeService(practiceRepo, deps.Validator, deps.Metrics, deps.Clock),
		NotificationService: notifier,
	}
}
