package models

// ApplicationTransitions lists the restricted source states and where they may go.
// States absent from the table may move to any status.
var ApplicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusRejected:  {ApplicationStatusNew, ApplicationStatusWithdrawn},
	ApplicationStatusWithdrawn: {ApplicationStatusNew},
}

// CanTransitionTo reports whether an application in s may be moved to next.
// Restricted states may not be re-applied to themselves.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.IsValid() {
		return false
	}
	allowed, restricted := ApplicationTransitions[s]
	if !restricted {
		return true
	}
	return contains(allowed, next)
}

// TransitionError describes why a move out of s is refused.
func (s ApplicationStatus) TransitionError() string {
	switch s {
	case ApplicationStatusRejected:
		return "Cannot change from 'Rejected' status except to 'New' or 'Withdrawn'."
	case ApplicationStatusWithdrawn:
		return "Can only change from 'Withdrawn' status to 'New'."
	default:
		return "Invalid status transition."
	}
}
