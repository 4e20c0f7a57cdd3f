package services

import (
	"context"
	"errors"
	"strings"

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

// InterviewService manages interviews on behalf of the company owning the application's job.
// Scheduling does not depend on the application's status.
type InterviewService interface {
	CreateInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	ListInterviews(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.InterviewResponse, int64, error)
	GetInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string) (*dto.InterviewResponse, error)
	UpdateInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
	DeleteInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string) error
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	appRepo       repositories.ApplicationRepository
	notifier      NotificationService
	validator     *validator.Validator
	sink          metrics.Sink
	now           Clock
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	appRepo repositories.ApplicationRepository,
	notifier NotificationService,
	v *validator.Validator,
	sink metrics.Sink,
	now Clock,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
		notifier:      notifier,
		validator:     v,
		sink:          sink,
		now:           defaultClock(now),
	}
}

func (s *interviewService) CreateInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := loadApplication(tx, s.appRepo, applicationID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ApplicationForCompany(app), models.UserRoleCompany, "application"); err != nil {
		return nil, err
	}

	interview := &models.Interview{
		ApplicationID: app.ID,
		ScheduledAt:   req.ScheduledAt.UTC(),
		InterviewType: models.InterviewType(req.InterviewType),
		Location:      strings.TrimSpace(req.Location),
		Notes:         strings.TrimSpace(req.Notes),
		Duration:      DefaultInterviewLength,
	}
	if req.Duration != nil {
		interview.Duration = *req.Duration
	}

	if err := ValidateInterviewSchedule(interview, s.now(), true); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.interviewRepo.Create(tx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sink.InterviewScheduled()
	logger.CtxInfo(ctx, "Interview scheduled", "interview_id", interview.ID, "application_id", app.ID)

	interview.Application = app
	s.notifier.InterviewScheduled(ctx, db, interview)
	return dto.NewInterviewResponse(interview), nil
}

func (s *interviewService) ListInterviews(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.InterviewResponse, int64, error) {
	db = db.WithContext(ctx)

	app, err := loadApplication(db, s.appRepo, applicationID)
	if err != nil {
		return nil, 0, err
	}
	if err := policy.Authorize(actor, policy.ApplicationForCompany(app), models.UserRoleCompany, "application"); err != nil {
		return nil, 0, err
	}

	items, total, err := s.interviewRepo.FindByApplication(db, app.ID, repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponses(items), total, nil
}

func (s *interviewService) GetInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string) (*dto.InterviewResponse, error) {
	interview, err := s.loadOwned(db.WithContext(ctx), actor, interviewID)
	if err != nil {
		return nil, err
	}
	return dto.NewInterviewResponse(interview), nil
}

// UpdateInterview merges the supplied fields. Scheduling windows are checked only
// when scheduled_at is part of the request.
func (s *interviewService) UpdateInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	interview, err := s.loadOwned(tx, actor, interviewID)
	if err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		interview.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.InterviewType != nil {
		interview.InterviewType = models.InterviewType(*req.InterviewType)
	}
	if req.Location != nil {
		interview.Location = strings.TrimSpace(*req.Location)
	}
	if req.Notes != nil {
		interview.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Duration != nil {
		interview.Duration = *req.Duration
	}

	if err := ValidateInterviewSchedule(interview, s.now(), req.ScheduledAt != nil); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.interviewRepo.Update(tx, interview); err != nil {
		return nil, handleInterviewError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview updated", "interview_id", interview.ID)
	return s.GetInterview(ctx, db, actor, interview.ID)
}

func (s *interviewService) DeleteInterview(ctx context.Context, db *gorm.DB, actor policy.Actor, interviewID string) error {
	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	interview, err := s.loadOwned(tx, actor, interviewID)
	if err != nil {
		return err
	}
	if err := s.interviewRepo.Delete(tx, interview.ID); err != nil {
		return handleInterviewError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview deleted", "interview_id", interview.ID)
	return nil
}

func (s *interviewService) loadOwned(db *gorm.DB, actor policy.Actor, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil {
		return nil, handleInterviewError(err)
	}
	if err := policy.Authorize(actor, policy.Interview(interview), models.UserRoleCompany, "interview"); err != nil {
		return nil, err
	}
	return interview, nil
}

func handleInterviewError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrInterviewNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("interview", "Interview not found")
	}
	return apperrors.InternalError(err)
}
