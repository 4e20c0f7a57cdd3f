package repositories

import (
	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

type TimelineRepository interface {
	Create(db *gorm.DB, event *models.ApplicationTimeline) error
	FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.ApplicationTimeline, int64, error)
	FindByJobSeeker(db *gorm.DB, jobSeekerID string, page Pagination) ([]models.ApplicationTimeline, int64, error)
}

type TimelineRepositoryImpl struct{}

func NewTimelineRepository() TimelineRepository {
	return &TimelineRepositoryImpl{}
}

func (r *TimelineRepositoryImpl) Create(db *gorm.DB, event *models.ApplicationTimeline) error {
	return db.Create(event).Error
}

func (r *TimelineRepositoryImpl) FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.ApplicationTimeline, int64, error) {
	query := db.Model(&models.ApplicationTimeline{}).Where("application_id = ?", applicationID)
	return r.find(query, page)
}

func (r *TimelineRepositoryImpl) FindByJobSeeker(db *gorm.DB, jobSeekerID string, page Pagination) ([]models.ApplicationTimeline, int64, error) {
	query := db.Model(&models.ApplicationTimeline{}).
		Joins("JOIN applications ON applications.id = application_timelines.application_id").
		Where("applications.jobseeker_id = ?", jobSeekerID)
	return r.find(query, page)
}

func (r *TimelineRepositoryImpl) find(query *gorm.DB, page Pagination) ([]models.ApplicationTimeline, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.ApplicationTimeline
	err := page.apply(query).
		Select("application_timelines.*").
		Order("application_timelines.event_date DESC").
		Find(&events).Error
	return events, total, err
}
