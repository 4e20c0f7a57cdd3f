package handlers

import (
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	*BaseHandler
	noteService services.NoteService
}

func NewNoteHandler(base *BaseHandler, noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		BaseHandler: base,
		noteService: noteService,
	}
}

func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/applications/:id/notes")
	notes.Use(h.requireAuth, middleware.RoleMiddleware(models.UserRoleCompany))
	{
		notes.GET("", h.ListNotes)
		notes.POST("", h.AddNote)
	}
}

// AddNote godoc
// @Summary Add a private company note to an application
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.CreateNoteRequest true "Note"
// @Success 201 {object} SuccessResponse{data=dto.NoteResponse}
// @Router /api/v1/applications/{id}/notes [post]
func (h *NoteHandler) AddNote(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	note, err := h.noteService.AddNote(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondCreated(c, "Note added", note)
}

// ListNotes godoc
// @Summary Notes of an application, newest first
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} SuccessResponse{data=dto.PaginatedResponse{results=[]dto.NoteResponse}}
// @Router /api/v1/applications/{id}/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	notes, total, err := h.noteService.ListNotes(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondPage(c, "Notes retrieved", notes, total, page)
}
