package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	Update(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindWithFilter(db *gorm.DB, criteria JobCriteria) ([]models.Job, int64, error)
	CountApplications(db *gorm.DB, jobIDs []string) (map[string]int64, error)
}

// JobCriteria filters job listings. Empty fields are ignored; set fields are AND-combined.
type JobCriteria struct {
	CompanyID       string
	Status          models.JobStatus
	Location        string
	EmploymentType  models.EmploymentType
	ExperienceLevel models.ExperienceLevel
	Query           string
	Pagination
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Omit("Skills", "Company").Create(job).Error
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Omit("Skills", "Company", "CreatedAt").Save(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("skills.name ASC") }).
		First(&job, "jobs.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindWithFilter(db *gorm.DB, criteria JobCriteria) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if criteria.CompanyID != "" {
		query = query.Where("jobs.company_id = ?", criteria.CompanyID)
	}
	if criteria.Status != "" {
		query = query.Where("jobs.status = ?", criteria.Status)
	}
	if criteria.Location != "" {
		query = query.Where(ilike("jobs.location"), likePattern(criteria.Location))
	}
	if criteria.EmploymentType != "" {
		query = query.Where("jobs.employment_type = ?", criteria.EmploymentType)
	}
	if criteria.ExperienceLevel != "" {
		query = query.Where("jobs.experience_level = ?", criteria.ExperienceLevel)
	}
	if criteria.Query != "" {
		pattern := likePattern(criteria.Query)
		query = query.Joins("JOIN company_profiles ON company_profiles.id = jobs.company_id").
			Where(
				ilike("jobs.title")+" OR "+ilike("jobs.description")+" OR "+ilike("jobs.requirements")+" OR "+ilike("company_profiles.company_name"),
				pattern, pattern, pattern, pattern,
			)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := criteria.Pagination.apply(query).
		Preload("Company").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("skills.name ASC") }).
		Order("jobs.created_at DESC").
		Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) CountApplications(db *gorm.DB, jobIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		JobID string
		Total int64
	}
	err := db.Model(&models.Application{}).
		Select("job_id, COUNT(*) AS total").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.JobID] = row.Total
	}
	return counts, nil
}
