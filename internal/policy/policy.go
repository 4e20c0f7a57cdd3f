// Package policy decides whether a resolved caller may act on a resource.
package policy

import (
	"jobtracker_backend/internal/models"
	"jobtracker_backend/pkg/apperrors"
)

// Actor is the caller resolved to its role and profile ids.
// Only the profile id matching Role is set.
type Actor struct {
	UserID      string
	Role        models.UserRole
	JobSeekerID string
	CompanyID   string
}

func (a Actor) IsJobSeeker() bool { return a.Role == models.UserRoleJobSeeker && a.JobSeekerID != "" }
func (a Actor) IsCompany() bool   { return a.Role == models.UserRoleCompany && a.CompanyID != "" }

type Ownable interface {
	OwnedBy(actor Actor) bool
}

type OwnableFunc func(actor Actor) bool

func (f OwnableFunc) OwnedBy(actor Actor) bool { return f(actor) }

// RequireRole returns a forbidden error unless the actor carries role.
func RequireRole(actor Actor, role models.UserRole) error {
	if actor.Role != role {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

// Authorize checks the role first (403) and then ownership. Ownership misses are
// reported as not found so callers cannot probe for foreign resources.
// An empty requiredRole skips the role check.
func Authorize(actor Actor, resource Ownable, requiredRole models.UserRole, domain string) error {
	if requiredRole != "" {
		if err := RequireRole(actor, requiredRole); err != nil {
			return err
		}
	}
	if resource == nil || !resource.OwnedBy(actor) {
		return apperrors.NotFound(domain, domain+" not found")
	}
	return nil
}

// Job is owned by the company that posted it.
func Job(job *models.Job) Ownable {
	return OwnableFunc(func(actor Actor) bool {
		return job != nil && actor.IsCompany() && job.CompanyID == actor.CompanyID
	})
}

// Application is owned by the job seeker who submitted it and by the company owning its job.
// The application's Job must be loaded for the company side.
func Application(app *models.Application) Ownable {
	return OwnableFunc(func(actor Actor) bool {
		if app == nil {
			return false
		}
		switch {
		case actor.IsJobSeeker():
			return app.JobSeekerID == actor.JobSeekerID
		case actor.IsCompany():
			return app.CompanyID() == actor.CompanyID
		}
		return false
	})
}

// ApplicationForCompany is the company-side view of an application, used for notes and interviews.
func ApplicationForCompany(app *models.Application) Ownable {
	return OwnableFunc(func(actor Actor) bool {
		return app != nil && actor.IsCompany() && app.CompanyID() == actor.CompanyID
	})
}

// Interview follows the ownership of its application; Application.Job must be loaded.
func Interview(interview *models.Interview) Ownable {
	if interview == nil {
		return nil
	}
	return ApplicationForCompany(interview.Application)
}
