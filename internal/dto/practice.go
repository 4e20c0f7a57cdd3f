package dto

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

type CreatePracticeQuestionRequest struct {
	QuestionText string `json:"question_text" validate:"required,min=10,max=2000"`
	Category     string `json:"category" validate:"omitempty,is-question-category"`
}

// Normalize trims the text and defaults the category to General.
func (r *CreatePracticeQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		r.Category = string(models.QuestionCategoryGeneral)
	}
}

type PracticeQuestionListQuery struct {
	Category string `form:"category" validate:"omitempty,is-question-category"`
	PageQuery
}

type CreatePracticeAnswerRequest struct {
	QuestionID string `json:"question" validate:"required"`
	AnswerText string `json:"answer_text" validate:"required,max=5000"`
}

func (r *CreatePracticeAnswerRequest) Normalize() {
	r.QuestionID = strings.TrimSpace(r.QuestionID)
	r.AnswerText = strings.TrimSpace(r.AnswerText)
}

type PracticeAnswerListQuery struct {
	QuestionID string `form:"question"`
	PageQuery
}

type PracticeQuestionResponse struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPracticeQuestionResponse(q *models.PracticeQuestion) *PracticeQuestionResponse {
	return &PracticeQuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Category:     string(q.Category),
		CreatedAt:    q.CreatedAt,
	}
}

func NewPracticeQuestionResponses(questions []models.PracticeQuestion) []*PracticeQuestionResponse {
	out := make([]*PracticeQuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, NewPracticeQuestionResponse(&questions[i]))
	}
	return out
}

type PracticeAnswerResponse struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"question"`
	QuestionText string    `json:"question_text,omitempty"`
	AnswerText   string    `json:"answer_text"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPracticeAnswerResponse(a *models.PracticeAnswer) *PracticeAnswerResponse {
	resp := &PracticeAnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		AnswerText: a.AnswerText,
		Score:      a.Score,
		CreatedAt:  a.CreatedAt,
	}
	if a.Question != nil {
		resp.QuestionText = a.Question.QuestionText
	}
	return resp
}

func NewPracticeAnswerResponses(answers []models.PracticeAnswer) []*PracticeAnswerResponse {
	out := make([]*PracticeAnswerResponse, 0, len(answers))
	for i := range answers {
		out = append(out, NewPracticeAnswerResponse(&answers[i]))
	}
	return out
}
