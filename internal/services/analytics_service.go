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

type AnalyticsService interface {
	Dashboard(ctx context.Context, db *gorm.DB, actor policy.Actor) (*dto.DashboardMetrics, error)
}

type analyticsService struct {
	appRepo repositories.ApplicationRepository
}

func NewAnalyticsService(appRepo repositories.ApplicationRepository) AnalyticsService {
	return &analyticsService{appRepo: appRepo}
}

// Dashboard counts the job seeker's applications from a single grouped query.
func (s *analyticsService) Dashboard(ctx context.Context, db *gorm.DB, actor policy.Actor) (*dto.DashboardMetrics, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, err
	}

	counts, err := s.appRepo.CountByStatus(db.WithContext(ctx), actor.JobSeekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	m := &dto.DashboardMetrics{
		InProgress: counts[models.ApplicationStatusNew] +
			counts[models.ApplicationStatusUnderReview] +
			counts[models.ApplicationStatusShortlisted],
		Interviewed: counts[models.ApplicationStatusInterviewed],
		Offers:      counts[models.ApplicationStatusOffer],
		Rejections:  counts[models.ApplicationStatusRejected],
		Hired:       counts[models.ApplicationStatusHired],
		Withdrawn:   counts[models.ApplicationStatusWithdrawn],
	}
	for _, n := range counts {
		m.TotalApplications += n
	}
	if m.TotalApplications > 0 {
		m.SuccessRate = float64(m.Offers) / float64(m.TotalApplications) * 100
	}
	return m, nil
}
