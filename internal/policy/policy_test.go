package policy

import (
	"net/http"
	"testing"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seeker  = Actor{UserID: "u1", Role: models.UserRoleJobSeeker, JobSeekerID: "js1"}
	other   = Actor{UserID: "u2", Role: models.UserRoleJobSeeker, JobSeekerID: "js2"}
	company = Actor{UserID: "u3", Role: models.UserRoleCompany, CompanyID: "c1"}
	rival   = Actor{UserID: "u4", Role: models.UserRoleCompany, CompanyID: "c2"}
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.HTTPCode
}

func TestAuthorizeJob(t *testing.T) {
	job := &models.Job{CompanyID: "c1"}

	assert.NoError(t, Authorize(company, Job(job), models.UserRoleCompany, "job"))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(rival, Job(job), models.UserRoleCompany, "job")))
	assert.Equal(t, http.StatusForbidden, statusOf(t, Authorize(seeker, Job(job), models.UserRoleCompany, "job")))
}

func TestAuthorizeApplicationEitherParty(t *testing.T) {
	app := &models.Application{JobSeekerID: "js1", Job: &models.Job{CompanyID: "c1"}}

	assert.NoError(t, Authorize(seeker, Application(app), "", "application"))
	assert.NoError(t, Authorize(company, Application(app), "", "application"))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(other, Application(app), "", "application")))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(rival, Application(app), "", "application")))
}

func TestAuthorizeCompanySideOnly(t *testing.T) {
	app := &models.Application{JobSeekerID: "js1", Job: &models.Job{CompanyID: "c1"}}
	interview := &models.Interview{Application: app}

	assert.NoError(t, Authorize(company, Interview(interview), models.UserRoleCompany, "interview"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, Authorize(seeker, Interview(interview), models.UserRoleCompany, "interview")))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(seeker, ApplicationForCompany(app), "", "application")))
}

func TestAuthorizeNilResource(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(company, Interview(nil), models.UserRoleCompany, "interview")))
}

func TestAdminGetsNothing(t *testing.T) {
	admin := Actor{UserID: "a", Role: models.UserRoleAdmin}
	app := &models.Application{JobSeekerID: "js1", Job: &models.Job{CompanyID: "c1"}}

	assert.Error(t, RequireRole(admin, models.UserRoleCompany))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Authorize(admin, Application(app), "", "application")))
}
