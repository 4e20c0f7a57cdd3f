package metrics

import "time"

// Sink records domain and HTTP metrics.
// All methods are fire-and-forget: implementations must not block or return errors.
type Sink interface {
	// HTTP
	RequestCompleted(method, route string, status int, duration time.Duration)

	// Workflow
	ApplicationSubmitted()
	ApplicationStatusChanged(from, to string)
	InterviewScheduled()
	NoteAdded()
	JobPosted()
	PracticeAnswerScored(score int)

	// Notifications
	NotificationSent(template string, err error)
}

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)
