package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"jobtracker_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the success side of the response envelope.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, message, data)
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, message, data)
}

// respondPage wraps a page of results with absolute links to the neighbouring pages.
func respondPage(c *gin.Context, message string, results interface{}, total int64, page dto.PageQuery) {
	page = page.Resolve()

	body := dto.PaginatedResponse{
		Count:   total,
		Results: results,
	}
	if int64(page.Page*page.PageSize) < total {
		body.Next = pageURL(c, page.Page+1)
	}
	if page.Page > 1 {
		body.Previous = pageURL(c, page.Page-1)
	}

	respondOK(c, message, body)
}

func pageURL(c *gin.Context, page int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	query := c.Request.URL.Query()
	query.Set("page", strconv.Itoa(page))

	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: query.Encode(),
	}
	s := u.String()
	return &s
}
