package services

import (
	"context"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// TimelineService reads the append-only application event log.
type TimelineService interface {
	ListTimeline(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.TimelineEventResponse, int64, error)
	MyTimeline(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.TimelineEventResponse, int64, error)
}

type timelineService struct {
	timelineRepo repositories.TimelineRepository
	appRepo      repositories.ApplicationRepository
}

func NewTimelineService(timelineRepo repositories.TimelineRepository, appRepo repositories.ApplicationRepository) TimelineService {
	return &timelineService{
		timelineRepo: timelineRepo,
		appRepo:      appRepo,
	}
}

// ListTimeline is visible to both parties of the application.
func (s *timelineService) ListTimeline(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.TimelineEventResponse, int64, error) {
	db = db.WithContext(ctx)

	app, err := loadApplication(db, s.appRepo, applicationID)
	if err != nil {
		return nil, 0, err
	}
	if err := policy.Authorize(actor, policy.Application(app), "", "application"); err != nil {
		return nil, 0, err
	}

	events, total, err := s.timelineRepo.FindByApplication(db, app.ID, repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewTimelineResponses(events), total, nil
}

// MyTimeline merges the events of all the job seeker's applications, newest first.
func (s *timelineService) MyTimeline(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.TimelineEventResponse, int64, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, 0, err
	}

	events, total, err := s.timelineRepo.FindByJobSeeker(db.WithContext(ctx), actor.JobSeekerID, repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewTimelineResponses(events), total, nil
}
