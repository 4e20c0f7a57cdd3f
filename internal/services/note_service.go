package services

import (
	"context"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// NoteService appends private company notes to applications. Notes are immutable.
type NoteService interface {
	AddNote(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	ListNotes(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.NoteResponse, int64, error)
}

type noteService struct {
	noteRepo  repositories.NoteRepository
	appRepo   repositories.ApplicationRepository
	validator *validator.Validator
	sink      metrics.Sink
}

func NewNoteService(noteRepo repositories.NoteRepository, appRepo repositories.ApplicationRepository, v *validator.Validator, sink metrics.Sink) NoteService {
	return &noteService{
		noteRepo:  noteRepo,
		appRepo:   appRepo,
		validator: v,
		sink:      sink,
	}
}

func (s *noteService) AddNote(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	req.Normalize()
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

	createdBy := actor.UserID
	note := &models.ApplicationNote{
		ApplicationID: app.ID,
		Text:          req.Text,
		CreatedBy:     &createdBy,
	}
	if err := s.noteRepo.Create(tx, note); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sink.NoteAdded()
	return dto.NewNoteResponse(note), nil
}

func (s *noteService) ListNotes(ctx context.Context, db *gorm.DB, actor policy.Actor, applicationID string, page dto.PageQuery) ([]*dto.NoteResponse, int64, error) {
	db = db.WithContext(ctx)

	app, err := loadApplication(db, s.appRepo, applicationID)
	if err != nil {
		return nil, 0, err
	}
	if err := policy.Authorize(actor, policy.ApplicationForCompany(app), models.UserRoleCompany, "application"); err != nil {
		return nil, 0, err
	}

	notes, total, err := s.noteRepo.FindByApplication(db, app.ID, repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewNoteResponses(notes), total, nil
}
