package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"new to under review", ApplicationStatusNew, ApplicationStatusUnderReview, true},
		{"offer back to new", ApplicationStatusOffer, ApplicationStatusNew, true},
		{"hired to rejected", ApplicationStatusHired, ApplicationStatusRejected, true},
		{"rejected to new", ApplicationStatusRejected, ApplicationStatusNew, true},
		{"rejected to withdrawn", ApplicationStatusRejected, ApplicationStatusWithdrawn, true},
		{"rejected to offer", ApplicationStatusRejected, ApplicationStatusOffer, false},
		{"rejected to hired", ApplicationStatusRejected, ApplicationStatusHired, false},
		{"withdrawn to new", ApplicationStatusWithdrawn, ApplicationStatusNew, true},
		{"withdrawn to shortlisted", ApplicationStatusWithdrawn, ApplicationStatusShortlisted, false},
		{"withdrawn to rejected", ApplicationStatusWithdrawn, ApplicationStatusRejected, false},
		{"same unrestricted status", ApplicationStatusShortlisted, ApplicationStatusShortlisted, true},
		{"rejected to rejected", ApplicationStatusRejected, ApplicationStatusRejected, false},
		{"withdrawn to withdrawn", ApplicationStatusWithdrawn, ApplicationStatusWithdrawn, false},
		{"unknown target", ApplicationStatusNew, ApplicationStatus("Archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEveryUnrestrictedStatusReachesAll(t *testing.T) {
	for _, from := range ApplicationStatuses {
		if _, restricted := ApplicationTransitions[from]; restricted {
			continue
		}
		for _, to := range ApplicationStatuses {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestJobDeadlinePassed(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	job := &Job{}
	assert.False(t, job.DeadlinePassed(now), "no deadline never passes")

	job.ApplicationDeadline = NewDate(now)
	assert.False(t, job.DeadlinePassed(now), "today is still open")

	job.ApplicationDeadline = NewDate(now.AddDate(0, 0, -1))
	assert.True(t, job.DeadlinePassed(now))
}
