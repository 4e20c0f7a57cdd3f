package integration_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"jobtracker_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idPayload struct {
	ID string `json:"id"`
}

func postJob(t *testing.T, ts *helpers.TestServer, token, title string) string {
	t.Helper()
	res, env := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":                title,
		"description":          "Own the Postgres-backed services of a fast-growing hiring product.",
		"requirements":         "Solid Go and SQL fundamentals.",
		"location":             "Remote",
		"salary":               "90000-120000",
		"employment_type":      "full-time",
		"application_deadline": time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02"),
		"skills":               []string{"Go", "PostgreSQL"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "%+v", env)

	var job idPayload
	helpers.DecodeData(t, env, &job)
	return job.ID
}

func TestApplicationLifecycle(t *testing.T) {
	ts := newServer(t)
	company := ts.Register(t, "company", "Initech")
	seeker := ts.Register(t, "jobseeker", "Peter Gibbons")

	jobID := postJob(t, ts, company, "Platform Engineer")

	res, env := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", seeker, map[string]string{
		"job":          jobID,
		"cover_letter": "I would like to work on fewer TPS reports.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "%+v", env)
	var application idPayload
	helpers.DecodeData(t, env, &application)

	for _, status := range []string{"Under Review", "Shortlisted", "Interviewed", "Offer", "Hired", "Withdrawn"} {
		res, env = ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+application.ID+"/status", company,
			map[string]string{"status": status})
		require.Equal(t, http.StatusOK, res.StatusCode, "%s: %+v", status, env)
	}

	res, env = ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+application.ID+"/status", company,
		map[string]string{"status": "Offer"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, env.Errors, "status")

	res, env = ts.SendRequest(t, http.MethodGet, "/api/v1/analytics/dashboard", seeker, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var metrics map[string]float64
	helpers.DecodeData(t, env, &metrics)
	assert.EqualValues(t, 1, metrics["total_applications"])
	assert.EqualValues(t, 1, metrics["withdrawn"])
	assert.EqualValues(t, 0, metrics["hired"])
}

func TestConcurrentApplyKeepsOneApplication(t *testing.T) {
	ts := newServer(t)
	company := ts.Register(t, "company", "Initrode")
	seeker := ts.Register(t, "jobseeker", "Milton Waddams")
	jobID := postJob(t, ts, company, "Storage Engineer")

	const attempts = 8
	statuses := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", seeker, map[string]string{"job": jobID})
			statuses[i] = res.StatusCode
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, s := range statuses {
		switch s {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created, "statuses: %v", statuses)
	assert.Equal(t, attempts-1, conflicts, "statuses: %v", statuses)
}

func TestJobSearchIsCaseInsensitive(t *testing.T) {
	ts := newServer(t)
	company := ts.Register(t, "company", "Umbrella Analytics")
	marker := fmt.Sprintf("Zeta%d", time.Now().UnixNano()%100000)
	postJob(t, ts, company, marker+" Data Engineer")

	res, env := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/search?q="+marker+"+DATA", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "%+v", env)

	var page struct {
		Count int64 `json:"count"`
	}
	helpers.DecodeData(t, env, &page)
	assert.EqualValues(t, 1, page.Count)
}
