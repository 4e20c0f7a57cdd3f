package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.Interview) error
	FindByID(db *gorm.DB, id string) (*models.Interview, error)
	FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.Interview, int64, error)
	Update(db *gorm.DB, interview *models.Interview) error
	Delete(db *gorm.DB, id string) error
}

type InterviewRepositoryImpl struct{}

func NewInterviewRepository() InterviewRepository {
	return &InterviewRepositoryImpl{}
}

func (r *InterviewRepositoryImpl) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Omit("Application").Create(interview).Error
}

// FindByID loads the interview with its application and job, which ownership checks need.
func (r *InterviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Interview, error) {
	var interview models.Interview
	err := db.Preload("Application.Job").First(&interview, "interviews.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.Interview, int64, error) {
	query := db.Model(&models.Interview{}).Where("application_id = ?", applicationID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []models.Interview
	err := page.apply(query).Order("scheduled_at ASC").Find(&interviews).Error
	return interviews, total, err
}

func (r *InterviewRepositoryImpl) Update(db *gorm.DB, interview *models.Interview) error {
	return db.Model(&models.Interview{}).Where("id = ?", interview.ID).
		Updates(map[string]interface{}{
			"scheduled_at":   interview.ScheduledAt,
			"interview_type": interview.InterviewType,
			"location":       interview.Location,
			"notes":          interview.Notes,
			"duration":       interview.Duration,
		}).Error
}

func (r *InterviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Interview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
