package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*PrometheusSink, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewPrometheusSink(reg), reg
}

func findMetric(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) *dto.Metric {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matchLabels(m.GetLabel(), labels) {
				return m
			}
		}
	}
	return nil
}

func matchLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; !ok || v != p.GetValue() {
			return false
		}
	}
	return true
}

func TestPrometheusSink_WorkflowCounters(t *testing.T) {
	sink, reg := newTestSink(t)

	sink.ApplicationSubmitted()
	sink.ApplicationSubmitted()
	sink.InterviewScheduled()
	sink.NoteAdded()
	sink.JobPosted()
	sink.ApplicationStatusChanged("New", "Rejected")
	sink.PracticeAnswerScored(40)
	sink.PracticeAnswerScored(0)

	m := findMetric(t, reg, "jobtracker_applications_submitted_total", nil)
	require.NotNil(t, m)
	assert.Equal(t, 2.0, m.GetCounter().GetValue())

	m = findMetric(t, reg, "jobtracker_application_status_changes_total", map[string]string{"from": "New", "to": "Rejected"})
	require.NotNil(t, m)
	assert.Equal(t, 1.0, m.GetCounter().GetValue())

	m = findMetric(t, reg, "jobtracker_practice_answer_score", nil)
	require.NotNil(t, m)
	assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
	assert.Equal(t, 40.0, m.GetHistogram().GetSampleSum())
}

func TestPrometheusSink_HTTPAndNotifications(t *testing.T) {
	sink, reg := newTestSink(t)

	sink.RequestCompleted("GET", "/api/v1/jobs", 200, 15*time.Millisecond)
	sink.RequestCompleted("GET", "", 404, time.Millisecond)
	sink.NotificationSent("interview_scheduled", nil)
	sink.NotificationSent("interview_scheduled", errors.New("smtp down"))

	m := findMetric(t, reg, "jobtracker_http_requests_total", map[string]string{"method": "GET", "route": "/api/v1/jobs", "status": "200"})
	require.NotNil(t, m)
	assert.Equal(t, 1.0, m.GetCounter().GetValue())

	assert.NotNil(t, findMetric(t, reg, "jobtracker_http_requests_total", map[string]string{"method": "GET", "route": "unmatched", "status": "404"}))

	m = findMetric(t, reg, "jobtracker_notifications_total", map[string]string{"template": "interview_scheduled", "outcome": OutcomeFailed})
	require.NotNil(t, m)
	assert.Equal(t, 1.0, m.GetCounter().GetValue())
}

func TestPrometheusSink_DoubleRegistrationDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusSink(reg)
	assert.NotPanics(t, func() {
		NewPrometheusSink(reg).ApplicationSubmitted()
	})
}

var (
	_ Sink = (*NoopSink)(nil)
	_ Sink = (*PrometheusSink)(nil)
)
