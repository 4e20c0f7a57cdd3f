package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/validator"
)

const (
	MinInterviewLead       = time.Hour
	MaxInterviewHorizon    = 180 * 24 * time.Hour
	MinInterviewDuration   = 15
	MaxInterviewDuration   = 240
	DefaultInterviewLength = 60
	MaxInterviewLocation   = 200
	MaxInterviewNotes      = 1000
)

// ValidateInterviewSchedule checks an interview record against now.
// Temporal rules run only when checkSchedule is set, so partial updates that
// leave scheduled_at untouched are not re-judged against the current clock.
func ValidateInterviewSchedule(iv *models.Interview, now time.Time, checkSchedule bool) error {
	errs := &validator.ValidationError{}

	if checkSchedule {
		switch {
		case iv.ScheduledAt.Before(now):
			errs.Add("scheduled_at", "Interview cannot be scheduled in the past.")
		case iv.ScheduledAt.Before(now.Add(MinInterviewLead)):
			errs.Add("scheduled_at", "Interview must be scheduled at least 1 hour in advance.")
		case iv.ScheduledAt.After(now.Add(MaxInterviewHorizon)):
			errs.Add("scheduled_at", "Interview cannot be scheduled more than 6 months in advance.")
		}
	}

	if !iv.InterviewType.IsValid() {
		names := make([]string, 0, len(models.InterviewTypes))
		for _, t := range models.InterviewTypes {
			names = append(names, string(t))
		}
		errs.Add("interview_type", fmt.Sprintf("Invalid interview type. Choose from: %s.", strings.Join(names, ", ")))
	}

	switch {
	case iv.Duration < MinInterviewDuration:
		errs.Add("duration", "Interview duration must be at least 15 minutes.")
	case iv.Duration > MaxInterviewDuration:
		errs.Add("duration", "Interview duration cannot exceed 4 hours (240 minutes).")
	}

	if utf8.RuneCountInString(iv.Location) > MaxInterviewLocation {
		errs.Add("location", "Location description cannot exceed 200 characters.")
	}
	if utf8.RuneCountInString(iv.Notes) > MaxInterviewNotes {
		errs.Add("notes", "Notes cannot exceed 1000 characters.")
	}

	if iv.InterviewType == models.InterviewTypeInPerson && strings.TrimSpace(iv.Location) == "" {
		errs.Add("location", "Location is required for in-person interviews.")
	}

	return errs.OrNil()
}
