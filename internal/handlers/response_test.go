package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtracker_backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) dto.PaginatedResponse {
	t.Helper()
	var body struct {
		Status string                `json:"status"`
		Data   dto.PaginatedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	return body.Data
}

func TestRespondPage_Links(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		page     dto.PageQuery
		total    int64
		next     string
		previous string
	}{
		{"single page", "/api/v1/jobs", dto.PageQuery{}, 4, "", ""},
		{"first of many", "/api/v1/jobs?page_size=2", dto.PageQuery{PageSize: 2}, 5, "http://example.com/api/v1/jobs?page=2&page_size=2", ""},
		{"middle", "/api/v1/jobs?page=2&page_size=2&q=go", dto.PageQuery{Page: 2, PageSize: 2}, 5,
			"http://example.com/api/v1/jobs?page=3&page_size=2&q=go", "http://example.com/api/v1/jobs?page=1&page_size=2&q=go"},
		{"last exact", "/api/v1/jobs?page=2&page_size=2", dto.PageQuery{Page: 2, PageSize: 2}, 4, "", "http://example.com/api/v1/jobs?page=1&page_size=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := pageContext(tt.target)
			respondPage(c, "ok", []string{}, tt.total, tt.page)

			page := decodePage(t, w)
			assert.Equal(t, tt.total, page.Count)
			if tt.next == "" {
				assert.Nil(t, page.Next)
			} else {
				require.NotNil(t, page.Next)
				assert.Equal(t, tt.next, *page.Next)
			}
			if tt.previous == "" {
				assert.Nil(t, page.Previous)
			} else {
				require.NotNil(t, page.Previous)
				assert.Equal(t, tt.previous, *page.Previous)
			}
		})
	}
}

func TestPageURL_ForwardedProto(t *testing.T) {
	c, _ := pageContext("/api/v1/jobs?page=1")
	c.Request.Header.Set("X-Forwarded-Proto", "https")

	link := pageURL(c, 2)
	require.NotNil(t, link)
	assert.Equal(t, "https://example.com/api/v1/jobs?page=2", *link)
}
