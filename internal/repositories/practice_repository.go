package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPracticeQuestionNotFound = errors.New("practice question not found")

// PracticeAnswerFilter narrows a job seeker's answers. An empty QuestionID lists all of them.
type PracticeAnswerFilter struct {
	JobSeekerID string
	QuestionID  string
}

type PracticeRepository interface {
	CreateQuestion(db *gorm.DB, question *models.PracticeQuestion) error
	FindQuestionByID(db *gorm.DB, id string) (*models.PracticeQuestion, error)
	ListQuestions(db *gorm.DB, category models.QuestionCategory, page Pagination) ([]models.PracticeQuestion, int64, error)
	CreateAnswer(db *gorm.DB, answer *models.PracticeAnswer) error
	ListAnswers(db *gorm.DB, filter PracticeAnswerFilter, page Pagination) ([]models.PracticeAnswer, int64, error)
}

type PracticeRepositoryImpl struct{}

func NewPracticeRepository() PracticeRepository {
	return &PracticeRepositoryImpl{}
}

func (r *PracticeRepositoryImpl) CreateQuestion(db *gorm.DB, question *models.PracticeQuestion) error {
	return db.Create(question).Error
}

func (r *PracticeRepositoryImpl) FindQuestionByID(db *gorm.DB, id string) (*models.PracticeQuestion, error) {
	var question models.PracticeQuestion
	if err := db.Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPracticeQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *PracticeRepositoryImpl) ListQuestions(db *gorm.DB, category models.QuestionCategory, page Pagination) ([]models.PracticeQuestion, int64, error) {
	query := db.Model(&models.PracticeQuestion{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.PracticeQuestion
	err := page.apply(query).Order("created_at DESC").Order("id").Find(&questions).Error
	return questions, total, err
}

func (r *PracticeRepositoryImpl) CreateAnswer(db *gorm.DB, answer *models.PracticeAnswer) error {
	return db.Omit("Question", "JobSeeker").Create(answer).Error
}

func (r *PracticeRepositoryImpl) ListAnswers(db *gorm.DB, filter PracticeAnswerFilter, page Pagination) ([]models.PracticeAnswer, int64, error) {
	query := db.Model(&models.PracticeAnswer{}).Where("jobseeker_id = ?", filter.JobSeekerID)
	if filter.QuestionID != "" {
		query = query.Where("question_id = ?", filter.QuestionID)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var answers []models.PracticeAnswer
	err := page.apply(query).Preload("Question").Order("created_at DESC").Order("id").Find(&answers).Error
	return answers, total, err
}
