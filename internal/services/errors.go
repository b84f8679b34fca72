package services

import "github.com/pkg/errors"

var (
	// ErrNoActiveTimer is returned when a stop is requested for a project
	// with no running entry.
	ErrNoActiveTimer = errors.New("no active timer for project")

	// ErrNoTimeEntries is returned when a project has never had a timer started.
	ErrNoTimeEntries = errors.New("project has no time entries")

	// ErrInvalidCredentials is returned on login with an unknown username or
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when a registration password is too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrSessionExpired is returned when a bearer token resolves to a session
	// past its expiry.
	ErrSessionExpired = errors.New("session expired")
)
