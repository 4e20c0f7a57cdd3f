package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtracker_backend/internal/app"
	"jobtracker_backend/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer is the full application behind a real HTTP listener.
type TestServer struct {
	Server *httptest.Server
	App    *app.App
}

// Envelope mirrors both sides of the API response envelope.
type Envelope struct {
	Status  string            `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func NewTestServer(t *testing.T, db *gorm.DB) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Defaults()
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "integration-secret"

	a, err := app.NewWithDB(cfg, db)
	if err != nil {
		t.Fatalf("could not build app: %v", err)
	}
	return &TestServer{Server: httptest.NewServer(a.Router), App: a}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// SendRequest performs a JSON request and decodes the envelope when there is one.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, Envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not encode request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("could not build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("could not read response: %v", err)
	}

	var env Envelope
	if len(raw) > 0 && strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("could not decode envelope %q: %v", raw, err)
		}
	}
	return res, env
}

// Register creates an account with a unique email and returns its access token.
func (ts *TestServer) Register(t *testing.T, role, name string) string {
	t.Helper()

	body := map[string]string{
		"email":    fmt.Sprintf("%s_%d@test.com", role, time.Now().UnixNano()),
		"password": "password123",
		"role":     role,
	}
	if role == "company" {
		body["company_name"] = name
	} else {
		body["full_name"] = name
	}

	res, env := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, %+v", role, res.StatusCode, env)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil || payload.AccessToken == "" {
		t.Fatalf("register %s: no access token in %s", role, env.Data)
	}
	return payload.AccessToken
}

// DecodeData unmarshals the envelope's data into out.
func DecodeData(t *testing.T, env Envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("could not decode data %s: %v", env.Data, err)
	}
}
