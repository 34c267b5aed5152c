package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/gohire/recruitment-service/internal/recruitment/domain PersonRepository,ApplicationRepository,SessionStore,EventLogger

import (
	"context"
	"time"
)

type PersonRepository interface {
	// GetByUsername returns nil, nil when no person has the username.
	GetByUsername(ctx context.Context, username string) (*Person, error)
	GetByID(ctx context.Context, id int64) (*Person, error)
	CreateApplicant(ctx context.Context, person *Person) (*Person, error)
}

type ApplicationRepository interface {
	ListApplicants(ctx context.Context) ([]Applicant, error)
	// UpdateStatusIfUnhandled sets the status only while it is still
	// unhandled. It fails with ErrApplicationAlreadyHandled otherwise.
	UpdateStatusIfUnhandled(ctx context.Context, applicantID int64, status ApplicationStatus) (*Applicant, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	// Get returns nil, nil for unknown or expired sessions.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// EventLogger appends lines to the event and error logs.
type EventLogger interface {
	LogEvent(message string) error
	LogError(err error) error
}
