package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tokens *auth.JWTManager, role models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/private", AuthMiddleware(tokens), RoleMiddleware(role), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return r
}

func serve(r *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewJWTManager("middleware-secret", time.Hour)
	company := &models.User{BaseModel: models.BaseModel{ID: "company-1"}, Role: models.UserRoleCompany}
	seeker := &models.User{BaseModel: models.BaseModel{ID: "seeker-1"}, Role: models.UserRoleJobSeeker}

	companyToken, err := tokens.Generate(company)
	require.NoError(t, err)
	seekerToken, err := tokens.Generate(seeker)
	require.NoError(t, err)

	foreign, err := auth.NewJWTManager("other-secret", time.Hour).Generate(company)
	require.NoError(t, err)

	r := newRouter(tokens, models.UserRoleCompany)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `"UNAUTHORIZED"`},
		{"not bearer", "Token " + companyToken, http.StatusUnauthorized, `"UNAUTHORIZED"`},
		{"wrong signature", "Bearer " + foreign, http.StatusUnauthorized, `"INVALID_TOKEN"`},
		{"wrong role", "Bearer " + seekerToken, http.StatusForbidden, `"FORBIDDEN"`},
		{"ok", "Bearer " + companyToken, http.StatusOK, "company-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}
			w := serve(r, h)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := newRouter(auth.NewJWTManager("s", time.Hour), models.UserRoleCompany)

	h := http.Header{}
	h.Set(RequestIDHeader, "req-123")
	w := serve(r, h)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = serve(r, http.Header{})
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecoveryMiddleware_WritesErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), RecoveryMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		panic("no database on context")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, w.Body.String(), "no database on context")
}
