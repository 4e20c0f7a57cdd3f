package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/testutil"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixedNow is the pinned clock for every service test.
var fixedNow = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	ctx      context.Context
	db       *gorm.DB
	services *ServiceContainer
	mail     *email.NoopProvider
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ctx:  context.Background(),
		db:   testutil.NewDB(t),
		mail: email.NewNoopProvider(),
		now:  fixedNow,
	}
	env.services = NewServiceContainer(Dependencies{
		JWT:       auth.NewJWTManager("service-test-secret", time.Hour),
		Email:     env.mail,
		Metrics:   metrics.NewNoopSink(),
		Validator: validator.New(),
		Clock:     func() time.Time { return env.now },
	})
	return env
}

func (e *testEnv) registerJobSeeker(t *testing.T, name string) policy.Actor {
	t.Helper()
	return e.register(t, &dto.RegisterRequest{
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "-" + uuid.NewString()[:8] + "@example.com",
		Password: "correct-horse-battery",
		Role:     string(models.UserRoleJobSeeker),
		FullName: name,
	})
}

func (e *testEnv) registerCompany(t *testing.T, name string) policy.Actor {
	t.Helper()
	return e.register(t, &dto.RegisterRequest{
		Email:       "hr-" + uuid.NewString()[:8] + "@example.com",
		Password:    "correct-horse-battery",
		Role:        string(models.UserRoleCompany),
		CompanyName: name,
	})
}

func (e *testEnv) register(t *testing.T, req *dto.RegisterRequest) policy.Actor {
	t.Helper()
	resp, err := e.services.AuthService.Register(e.ctx, e.db, req)
	require.NoError(t, err)

	actor, err := e.services.ProfileService.ResolveActor(e.ctx, e.db, resp.User.ID, resp.User.Role)
	require.NoError(t, err)
	return actor
}

func (e *testEnv) deadline(days int) *string {
	s := e.now.AddDate(0, 0, days).Format(dto.DateLayout)
	return &s
}

func (e *testEnv) jobRequest(title string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:               title,
		Description:         "Build and operate the services behind our hiring platform, end to end.",
		Requirements:        "Three years of backend experience.",
		Location:            "Berlin",
		Salary:              "$90,000 - $120,000",
		EmploymentType:      string(models.EmploymentTypeFullTime),
		ExperienceLevel:     string(models.ExperienceLevelMid),
		ApplicationDeadline: e.deadline(30),
		Skills:              []string{"Go", "PostgreSQL"},
	}
}

func (e *testEnv) postJob(t *testing.T, company policy.Actor, title string) *dto.JobResponse {
	t.Helper()
	job, err := e.services.JobService.CreateJob(e.ctx, e.db, company, e.jobRequest(title))
	require.NoError(t, err)
	return job
}

func (e *testEnv) apply(t *testing.T, seeker policy.Actor, jobID string) *dto.ApplicationResponse {
	t.Helper()
	app, err := e.services.ApplicationService.Apply(e.ctx, e.db, seeker, &dto.CreateApplicationRequest{
		JobID:       jobID,
		CoverLetter: "I would love to join the team.",
	})
	require.NoError(t, err)
	return app
}

// assertAppError checks the HTTP status carried by err.
func assertAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	assert.Equal(t, status, appErr.HTTPCode)
	return appErr
}

// fieldErrors extracts the per-field validation messages of err.
func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr := assertAppError(t, err, 400)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok, "expected field details, got %T", appErr.Details)
	return details
}
