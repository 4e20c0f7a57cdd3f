package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	ExistsForJobSeeker(db *gorm.DB, jobSeekerID, jobID string) (bool, error)
	FindWithFilter(db *gorm.DB, criteria ApplicationCriteria) ([]models.Application, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	UpdateContent(db *gorm.DB, app *models.Application) error
	CountByStatus(db *gorm.DB, jobSeekerID string) (map[models.ApplicationStatus]int64, error)
}

// ApplicationCriteria scopes an application listing to one owner.
type ApplicationCriteria struct {
	JobSeekerID string
	CompanyID   string
	JobID       string
	Pagination
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts a new application. The (jobseeker_id, job_id) unique index is the
// final guard against duplicates and maps to ErrApplicationAlreadyExists.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Omit("Job", "JobSeeker").Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job.Company").Preload("JobSeeker").
		First(&app, "applications.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsForJobSeeker(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("jobseeker_id = ? AND job_id = ?", jobSeekerID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindWithFilter(db *gorm.DB, criteria ApplicationCriteria) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{})

	if criteria.JobSeekerID != "" {
		query = query.Where("applications.jobseeker_id = ?", criteria.JobSeekerID)
	}
	if criteria.JobID != "" {
		query = query.Where("applications.job_id = ?", criteria.JobID)
	}
	if criteria.CompanyID != "" {
		query = query.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.company_id = ?", criteria.CompanyID)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	err := criteria.Pagination.apply(query).
		Preload("Job.Company").
		Preload("JobSeeker").
		Order("applications.created_at DESC").
		Find(&apps).Error

	return apps, total, err
}

// UpdateStatus writes the status column only. Concurrent writers are last-write-wins.
func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) UpdateContent(db *gorm.DB, app *models.Application) error {
	return db.Model(&models.Application{}).Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"cover_letter": app.CoverLetter,
			"resume":       app.Resume,
		}).Error
}

func (r *ApplicationRepositoryImpl) CountByStatus(db *gorm.DB, jobSeekerID string) (map[models.ApplicationStatus]int64, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Total  int64
	}
	err := db.Model(&models.Application{}).
		Select("status, COUNT(*) AS total").
		Where("jobseeker_id = ?", jobSeekerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
