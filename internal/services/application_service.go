package services

import (
	"context"
	"errors"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	TimelineEventSubmitted = "submitted"
	submittedTimelineNotes = "Application submitted by job seeker."
)

type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplication(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string) (*dto.ApplicationResponse, error)
	ListMyApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error)
	ListCompanyApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error)
	ListJobApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, jobID string, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error)
	UpdateApplication(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	appRepo      repositories.ApplicationRepository
	jobRepo      repositories.JobRepository
	timelineRepo repositories.TimelineRepository
	notifier     NotificationService
	validator    *validator.Validator
	sink         metrics.Sink
	now          Clock
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	timelineRepo repositories.TimelineRepository,
	notifier NotificationService,
	v *validator.Validator,
	sink metrics.Sink,
	now Clock,
) ApplicationService {
	return &applicationService{
		appRepo:      appRepo,
		jobRepo:      jobRepo,
		timelineRepo: timelineRepo,
		notifier:     notifier,
		validator:    v,
		sink:         sink,
		now:          defaultClock(now),
	}
}

// Apply submits an application in status New and records the "submitted" timeline
// event in the same transaction.
func (s *applicationService) Apply(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	job, err := s.jobRepo.FindByID(tx, req.JobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.FieldError("job", "Cannot apply to inactive job.")
	}
	if job.DeadlinePassed(s.now()) {
		return nil, apperrors.FieldError("job", "Application deadline has passed.")
	}

	exists, err := s.appRepo.ExistsForJobSeeker(tx, actor.JobSeekerID, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		JobSeekerID: actor.JobSeekerID,
		JobID:       job.ID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
		Status:      models.ApplicationStatusNew,
	}
	if err := s.appRepo.Create(tx, app); err != nil {
		return nil, handleApplicationError(err)
	}

	event := &models.ApplicationTimeline{
		ApplicationID: app.ID,
		EventType:     TimelineEventSubmitted,
		EventDate:     s.now(),
		Notes:         submittedTimelineNotes,
	}
	if err := s.timelineRepo.Create(tx, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, handleApplicationError(err)
	}

	s.sink.ApplicationSubmitted()
	logger.CtxInfo(ctx, "Application submitted", "application_id", app.ID, "job_id", job.ID)

	saved, err := s.appRepo.FindByID(db.WithContext(ctx), app.ID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	s.notifier.ApplicationSubmitted(ctx, db, saved)
	return dto.NewApplicationResponse(saved), nil
}

func (s *applicationService) GetApplication(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := loadApplication(db.WithContext(ctx), s.appRepo, applicationID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.Application(app), "", "application"); err != nil {
		return nil, err
	}
	return dto.NewApplicationResponse(app), nil
}

func (s *applicationService) ListMyApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, 0, err
	}
	return s.list(ctx, db, repositories.ApplicationCriteria{JobSeekerID: actor.JobSeekerID}, page)
}

func (s *applicationService) ListCompanyApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error) {
	if err := policy.RequireRole(actor, models.UserRoleCompany); err != nil {
		return nil, 0, err
	}
	return s.list(ctx, db, repositories.ApplicationCriteria{CompanyID: actor.CompanyID}, page)
}

// ListJobApplications lists one job's applications; a job owned by another company is not found.
func (s *applicationService) ListJobApplications(ctx context.Context, db *gorm.DB, actor policy.Actor, jobID string, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error) {
	job, err := s.jobRepo.FindByID(db.WithContext(ctx), jobID)
	if err != nil {
		return nil, 0, handleJobError(err)
	}
	if err := policy.Authorize(actor, policy.Job(job), models.UserRoleCompany, "job"); err != nil {
		return nil, 0, err
	}
	return s.list(ctx, db, repositories.ApplicationCriteria{JobID: job.ID}, page)
}

func (s *applicationService) list(ctx context.Context, db *gorm.DB, criteria repositories.ApplicationCriteria, page dto.PageQuery) ([]*dto.ApplicationResponse, int64, error) {
	criteria.Pagination = repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()}

	apps, total, err := s.appRepo.FindWithFilter(db.WithContext(ctx), criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponses(apps), total, nil
}

// UpdateApplication lets the submitting job seeker edit cover letter and resume.
func (s *applicationService) UpdateApplication(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := loadApplication(tx, s.appRepo, applicationID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.Application(app), models.UserRoleJobSeeker, "application"); err != nil {
		return nil, err
	}

	if req.CoverLetter != nil {
		app.CoverLetter = *req.CoverLetter
	}
	if req.Resume != nil {
		app.Resume = *req.Resume
	}
	if err := s.appRepo.UpdateContent(tx, app); err != nil {
		return nil, handleApplicationError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetApplication(ctx, db, actor, app.ID)
}

// UpdateStatus moves an application through the transition table. It writes no
// timeline event and takes no lock: concurrent updates are last-write-wins.
func (s *applicationService) UpdateStatus(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}
	next := models.ApplicationStatus(req.Status)

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := loadApplication(tx, s.appRepo, applicationID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ApplicationForCompany(app), models.UserRoleCompany, "application"); err != nil {
		return nil, err
	}

	current := app.Status
	if !current.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition("application", current.TransitionError())
	}

	if err := s.appRepo.UpdateStatus(tx, app.ID, next); err != nil {
		return nil, handleApplicationError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sink.ApplicationStatusChanged(string(current), string(next))
	logger.CtxInfo(ctx, "Application status updated", "application_id", app.ID, "from", current, "to", next)

	app.Status = next
	return dto.NewApplicationResponse(app), nil
}

// loadApplication fetches an application with its job, mapping misses to 404.
func loadApplication(db *gorm.DB, repo repositories.ApplicationRepository, applicationID string) (*models.Application, error) {
	app, err := repo.FindByID(db, applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	return app, nil
}

func handleApplicationError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("application", "Application not found")
	case errors.Is(err, repositories.ErrApplicationAlreadyExists):
		return apperrors.ErrAlreadyApplied.WithError(err)
	}
	return apperrors.InternalError(err)
}
