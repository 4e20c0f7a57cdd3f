package repositories

import (
	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

// NoteRepository is append-only: notes are never updated or deleted individually.
type NoteRepository interface {
	Create(db *gorm.DB, note *models.ApplicationNote) error
	FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.ApplicationNote, int64, error)
}

type NoteRepositoryImpl struct{}

func NewNoteRepository() NoteRepository {
	return &NoteRepositoryImpl{}
}

func (r *NoteRepositoryImpl) Create(db *gorm.DB, note *models.ApplicationNote) error {
	return db.Omit("Creator").Create(note).Error
}

func (r *NoteRepositoryImpl) FindByApplication(db *gorm.DB, applicationID string, page Pagination) ([]models.ApplicationNote, int64, error) {
	query := db.Model(&models.ApplicationNote{}).Where("application_id = ?", applicationID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []models.ApplicationNote
	err := page.apply(query).Order("created_at DESC").Find(&notes).Error
	return notes, total, err
}
