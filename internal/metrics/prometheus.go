package metrics

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink with the Prometheus client.
// Registration failures are logged and never propagated.
type PrometheusSink struct {
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	applicationsSubmittedTotal prometheus.Counter
	statusChangesTotal         *prometheus.CounterVec
	interviewsScheduledTotal   prometheus.Counter
	notesAddedTotal            prometheus.Counter
	jobsPostedTotal            prometheus.Counter
	practiceScores             prometheus.Histogram

	notificationsTotal *prometheus.CounterVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{}
	s.initHTTPMetrics(reg)
	s.initWorkflowMetrics(reg)
	s.initNotificationMetrics(reg)
	return s
}

func (s *PrometheusSink) initHTTPMetrics(reg prometheus.Registerer) {
	s.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtracker_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	s.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobtracker_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	s.register(reg, s.httpRequestsTotal, "jobtracker_http_requests_total")
	s.register(reg, s.httpDuration, "jobtracker_http_request_duration_seconds")
}

func (s *PrometheusSink) initWorkflowMetrics(reg prometheus.Registerer) {
	s.applicationsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_applications_submitted_total",
		Help: "Total number of submitted applications.",
	})
	s.statusChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtracker_application_status_changes_total",
		Help: "Total number of application status updates by source and target status.",
	}, []string{"from", "to"})
	s.interviewsScheduledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_interviews_scheduled_total",
		Help: "Total number of scheduled interviews.",
	})
	s.notesAddedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_notes_added_total",
		Help: "Total number of application notes.",
	})
	s.jobsPostedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_jobs_posted_total",
		Help: "Total number of created job postings.",
	})
	s.practiceScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "jobtracker_practice_answer_score",
		Help:    "Scores given to submitted practice answers.",
		Buckets: prometheus.LinearBuckets(0, 10, 9),
	})

	s.register(reg, s.applicationsSubmittedTotal, "jobtracker_applications_submitted_total")
	s.register(reg, s.statusChangesTotal, "jobtracker_application_status_changes_total")
	s.register(reg, s.interviewsScheduledTotal, "jobtracker_interviews_scheduled_total")
	s.register(reg, s.notesAddedTotal, "jobtracker_notes_added_total")
	s.register(reg, s.jobsPostedTotal, "jobtracker_jobs_posted_total")
	s.register(reg, s.practiceScores, "jobtracker_practice_answer_score")
}

func (s *PrometheusSink) initNotificationMetrics(reg prometheus.Registerer) {
	s.notificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtracker_notifications_total",
		Help: "Total number of notification attempts by template and outcome.",
	}, []string{"template", "outcome"})

	s.register(reg, s.notificationsTotal, "jobtracker_notifications_total")
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		slog.Warn("metrics: failed to register collector", "name", name, "error", err)
	}
}

func (s *PrometheusSink) RequestCompleted(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	s.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (s *PrometheusSink) ApplicationSubmitted() {
	s.applicationsSubmittedTotal.Inc()
}

func (s *PrometheusSink) ApplicationStatusChanged(from, to string) {
	s.statusChangesTotal.WithLabelValues(from, to).Inc()
}

func (s *PrometheusSink) InterviewScheduled() {
	s.interviewsScheduledTotal.Inc()
}

func (s *PrometheusSink) NoteAdded() {
	s.notesAddedTotal.Inc()
}

func (s *PrometheusSink) JobPosted() {
	s.jobsPostedTotal.Inc()
}

func (s *PrometheusSink) PracticeAnswerScored(score int) {
	s.practiceScores.Observe(float64(score))
}

func (s *PrometheusSink) NotificationSent(template string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailed
	}
	s.notificationsTotal.WithLabelValues(template, outcome).Inc()
}
