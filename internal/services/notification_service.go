package services

import (
	"context"
	"fmt"

	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"

	"gorm.io/gorm"
)

// NotificationService sends best-effort emails after a write has committed.
// Failures are logged and counted, never returned.
type NotificationService interface {
	ApplicationSubmitted(ctx context.Context, db *gorm.DB, app *models.Application)
	InterviewScheduled(ctx context.Context, db *gorm.DB, interview *models.Interview)
}

type notificationService struct {
	provider    email.Provider
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	sink        metrics.Sink
}

func NewNotificationService(
	provider email.Provider,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	sink metrics.Sink,
) NotificationService {
	return &notificationService{
		provider:    provider,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sink:        sink,
	}
}

func (s *notificationService) ApplicationSubmitted(ctx context.Context, db *gorm.DB, app *models.Application) {
	db = db.WithContext(ctx)
	if app.Job == nil || app.Job.Company == nil {
		logger.CtxWarn(ctx, "Skipping application notification: job not loaded", "application_id", app.ID)
		return
	}

	company, err := s.userRepo.FindByID(db, app.Job.Company.UserID)
	if err != nil {
		s.fail(ctx, email.TemplateApplicationReceived, err, "application_id", app.ID)
		return
	}

	candidate := ""
	if app.JobSeeker != nil {
		candidate = app.JobSeeker.FullName
	}

	s.send(ctx, []string{company.Email}, fmt.Sprintf("New application for %s", app.Job.Title),
		email.TemplateApplicationReceived, email.TemplateData{
			"CompanyName":   app.Job.Company.CompanyName,
			"CandidateName": candidate,
			"JobTitle":      app.Job.Title,
			"ApplicationID": app.ID,
		})
}

func (s *notificationService) InterviewScheduled(ctx context.Context, db *gorm.DB, interview *models.Interview) {
	db = db.WithContext(ctx)
	app := interview.Application
	if app == nil || app.Job == nil {
		logger.CtxWarn(ctx, "Skipping interview notification: application not loaded", "interview_id", interview.ID)
		return
	}

	seeker, err := s.profileRepo.FindJobSeekerByID(db, app.JobSeekerID)
	if err != nil || seeker.User == nil {
		if err == nil {
			err = repositories.ErrUserNotFound
		}
		s.fail(ctx, email.TemplateInterviewScheduled, err, "interview_id", interview.ID)
		return
	}

	companyName := ""
	if app.Job.Company != nil {
		companyName = app.Job.Company.CompanyName
	}

	s.send(ctx, []string{seeker.User.Email}, fmt.Sprintf("Interview scheduled for %s", app.Job.Title),
		email.TemplateInterviewScheduled, email.TemplateData{
			"CandidateName": seeker.FullName,
			"CompanyName":   companyName,
			"JobTitle":      app.Job.Title,
			"InterviewType": string(interview.InterviewType),
			"ScheduledAt":   interview.ScheduledAt.UTC().Format("2006-01-02 15:04 MST"),
			"Duration":      interview.Duration,
			"Location":      interview.Location,
		})
}

func (s *notificationService) send(ctx context.Context, to []string, subject, template string, data email.TemplateData) {
	err := s.provider.SendTemplate(ctx, to, subject, template, data)
	s.sink.NotificationSent(template, err)
	if err != nil {
		logger.CtxWarn(ctx, "Notification delivery failed", "template", template, "error", err)
		return
	}
	logger.CtxDebug(ctx, "Notification sent", "template", template)
}

func (s *notificationService) fail(ctx context.Context, template string, err error, args ...any) {
	s.sink.NotificationSent(template, err)
	logger.CtxWarn(ctx, "Notification skipped", append([]any{"template", template, "error", err}, args...)...)
}
