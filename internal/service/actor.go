package service

import (
	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
)

// Actor is the authenticated caller a service acts on behalf of.
type Actor struct {
	UserID     string
	Username   string
	Name       string
	Role       domain.UserRole
	FieldRepID string
}

// IsAdmin reports whether the actor has back-office rights.
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// DisplayName is what gets recorded in audit fields.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// ScopeFieldRep resolves which rep a request is about. Admins may ask for any
// rep; an MR user is pinned to their own rep and an empty id means "mine".
func (a Actor) ScopeFieldRep(fieldRepID string) (string, error) {
	if a.IsAdmin() {
		return fieldRepID, nil
	}
	if a.FieldRepID == "" {
		return "", domain.ErrForbidden
	}
	if fieldRepID == "" || fieldRepID == a.FieldRepID {
		return a.FieldRepID, nil
	}
	return "", domain.ErrForbidden
}

// Calendar derives "today" and builds engines with one shared clock.
type Calendar struct {
	opts []analytics.Option
}

// NewCalendar creates a Calendar from engine options.
func NewCalendar(opts ...analytics.Option) Calendar {
	return Calendar{opts: opts}
}

// Today returns the current calendar day.
func (c Calendar) Today() string {
	return analytics.New(nil, c.opts...).Today()
}

// Engine wraps data in an engine sharing this calendar's clock.
func (c Calendar) Engine(data *analytics.Dataset) *analytics.Engine {
	return analytics.New(data, c.opts...)
}
