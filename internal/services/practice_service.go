package services

import (
	"context"
	"errors"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PracticeService manages the shared interview question bank and job seekers' scored practice answers.
type PracticeService interface {
	ListQuestions(ctx context.Context, db *gorm.DB, query dto.PracticeQuestionListQuery) ([]*dto.PracticeQuestionResponse, int64, error)
	CreateQuestion(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreatePracticeQuestionRequest) (*dto.PracticeQuestionResponse, error)
	SubmitAnswer(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreatePracticeAnswerRequest) (*dto.PracticeAnswerResponse, error)
	ListAnswers(ctx context.Context, db *gorm.DB, actor policy.Actor, query dto.PracticeAnswerListQuery) ([]*dto.PracticeAnswerResponse, int64, error)
}

type practiceService struct {
	practiceRepo repositories.PracticeRepository
	validator    *validator.Validator
	sink         metrics.Sink
	now          Clock
}

func NewPracticeService(practiceRepo repositories.PracticeRepository, v *validator.Validator, sink metrics.Sink, now Clock) PracticeService {
	return &practiceService{
		practiceRepo: practiceRepo,
		validator:    v,
		sink:         sink,
		now:          defaultClock(now),
	}
}

func (s *practiceService) ListQuestions(ctx context.Context, db *gorm.DB, query dto.PracticeQuestionListQuery) ([]*dto.PracticeQuestionResponse, int64, error) {
	if err := s.validator.Validate(&query); err != nil {
		return nil, 0, asValidationError(err)
	}

	page := repositories.Pagination{Limit: query.Limit(), Offset: query.Offset()}
	questions, total, err := s.practiceRepo.ListQuestions(db.WithContext(ctx), models.QuestionCategory(query.Category), page)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewPracticeQuestionResponses(questions), total, nil
}

// CreateQuestion adds to the shared bank. Any authenticated caller may contribute.
func (s *practiceService) CreateQuestion(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreatePracticeQuestionRequest) (*dto.PracticeQuestionResponse, error) {
	if actor.UserID == "" {
		return nil, apperrors.NewUnauthorizedError("Authentication credentials were not provided.")
	}

	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	question := &models.PracticeQuestion{
		BaseModel:    models.BaseModel{CreatedAt: s.now()},
		QuestionText: req.QuestionText,
		Category:     models.QuestionCategory(req.Category),
	}
	if err := s.practiceRepo.CreateQuestion(db.WithContext(ctx), question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPracticeQuestionResponse(question), nil
}

// SubmitAnswer stores the answer with its score. The score is computed once, here.
func (s *practiceService) SubmitAnswer(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreatePracticeAnswerRequest) (*dto.PracticeAnswerResponse, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	question, err := s.practiceRepo.FindQuestionByID(tx, req.QuestionID)
	if err != nil {
		return nil, handlePracticeError(err)
	}

	answer := &models.PracticeAnswer{
		BaseModel:   models.BaseModel{CreatedAt: s.now()},
		QuestionID:  question.ID,
		JobSeekerID: actor.JobSeekerID,
		AnswerText:  req.AnswerText,
		Score:       ScoreAnswer(req.AnswerText),
	}
	if err := s.practiceRepo.CreateAnswer(tx, answer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sink.PracticeAnswerScored(answer.Score)
	answer.Question = question
	return dto.NewPracticeAnswerResponse(answer), nil
}

// ListAnswers returns only the caller's own answers, newest first.
func (s *practiceService) ListAnswers(ctx context.Context, db *gorm.DB, actor policy.Actor, query dto.PracticeAnswerListQuery) ([]*dto.PracticeAnswerResponse, int64, error) {
	if err := policy.RequireRole(actor, models.UserRoleJobSeeker); err != nil {
		return nil, 0, err
	}

	filter := repositories.PracticeAnswerFilter{JobSeekerID: actor.JobSeekerID, QuestionID: query.QuestionID}
	page := repositories.Pagination{Limit: query.Limit(), Offset: query.Offset()}
	answers, total, err := s.practiceRepo.ListAnswers(db.WithContext(ctx), filter, page)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewPracticeAnswerResponses(answers), total, nil
}

func handlePracticeError(err error) error {
	if errors.Is(err, repositories.ErrPracticeQuestionNotFound) {
		return apperrors.NotFound("practice", "Question not found")
	}
	return apperrors.InternalError(err)
}
