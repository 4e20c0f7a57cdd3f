package handlers

import (
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PracticeHandler struct {
	*BaseHandler
	practiceService services.PracticeService
}

func NewPracticeHandler(base *BaseHandler, practiceService services.PracticeService) *PracticeHandler {
	return &PracticeHandler{
		BaseHandler:     base,
		practiceService: practiceService,
	}
}

func (h *PracticeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/interview-questions", h.ListQuestions)
	rg.POST("/analytics/interview-questions", h.requireAuth, h.CreateQuestion)

	answers := rg.Group("/analytics/practice-answers")
	answers.Use(h.requireAuth, middleware.RoleMiddleware(models.UserRoleJobSeeker))
	{
		answers.GET("", h.ListAnswers)
		answers.POST("", h.SubmitAnswer)
	}
}

// ListQuestions godoc
// @Summary Interview practice questions, newest first
// @Tags practice
// @Produce json
// @Param category query string false "General, Technical, Behavioral or Other"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.PracticeQuestionResponse}}
// @Router /api/v1/analytics/interview-questions [get]
func (h *PracticeHandler) ListQuestions(c *gin.Context) {
	var query dto.PracticeQuestionListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	questions, total, err := h.practiceService.ListQuestions(c.Request.Context(), h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Questions retrieved", questions, total, query.PageQuery)
}

// CreateQuestion godoc
// @Summary Add a question to the practice bank
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePracticeQuestionRequest true "Question"
// @Success 201 {object} SuccessResponse{data=dto.PracticeQuestionResponse}
// @Router /api/v1/analytics/interview-questions [post]
func (h *PracticeHandler) CreateQuestion(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreatePracticeQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.practiceService.CreateQuestion(c.Request.Context(), h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Question created", question)
}

// SubmitAnswer godoc
// @Summary Submit a practice answer; the response carries its score
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePracticeAnswerRequest true "Answer"
// @Success 201 {object} SuccessResponse{data=dto.PracticeAnswerResponse}
// @Router /api/v1/analytics/practice-answers [post]
func (h *PracticeHandler) SubmitAnswer(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreatePracticeAnswerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	answer, err := h.practiceService.SubmitAnswer(c.Request.Context(), h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Answer scored", answer)
}

// ListAnswers godoc
// @Summary The caller's practice answers, newest first
// @Tags practice
// @Produce json
// @Security BearerAuth
// @Param question query string false "Question ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.PracticeAnswerResponse}}
// @Router /api/v1/analytics/practice-answers [get]
func (h *PracticeHandler) ListAnswers(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var query dto.PracticeAnswerListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	answers, total, err := h.practiceService.ListAnswers(c.Request.Context(), h.GetDB(c), actor, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Answers retrieved", answers, total, query.PageQuery)
}
