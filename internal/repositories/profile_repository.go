package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrCompanyNotFound = errors.New("company not found")
)

type ProfileRepository interface {
	CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error
	CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error
	FindJobSeekerByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)
	FindCompanyByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	FindCompanyByID(db *gorm.DB, id string) (*models.CompanyProfile, error)
	FindJobSeekerByID(db *gorm.DB, id string) (*models.JobSeekerProfile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindJobSeekerByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyByID(db *gorm.DB, id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindJobSeekerByID(db *gorm.DB, id string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := db.Preload("User").First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
