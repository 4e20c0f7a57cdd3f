package metrics

import "time"

// NoopSink is used when metrics are disabled.
type NoopSink struct{}

func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) RequestCompleted(method, route string, status int, duration time.Duration) {}
func (n *NoopSink) ApplicationSubmitted()                                                     {}
func (n *NoopSink) ApplicationStatusChanged(from, to string)                                  {}
func (n *NoopSink) InterviewScheduled()                                                       {}
func (n *NoopSink) NoteAdded()                                                                {}
func (n *NoopSink) JobPosted()                                                                {}
func (n *NoopSink) PracticeAnswerScored(score int)                                           {}
func (n *NoopSink) NotificationSent(template string, err error)                               {}
