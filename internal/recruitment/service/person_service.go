package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/metrics"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/gohire/recruitment-service/internal/recruitment/dto"
	"golang.org/x/crypto/bcrypt"
)

type AuthOutcome int

const (
	AuthSucceeded AuthOutcome = iota
	// AuthRejected covers both an unknown username and a wrong password.
	AuthRejected
	// AuthUnavailable means the credential store could not be consulted.
	AuthUnavailable
)

// AuthResult is the outcome of checking a username/password pair. Person is
// set only when Outcome is AuthSucceeded; Err only when AuthUnavailable.
type AuthResult struct {
	Outcome AuthOutcome
	Person  *domain.Person
	Err     error
}

func (r AuthResult) Succeeded() bool {
	return r.Outcome == AuthSucceeded && r.Person != nil
}

// unknownUserPassword is hashed once per service and compared against when a
// username does not exist, so both rejection paths run one bcrypt comparison.
const unknownUserPassword = "gohire-unknown-user"

type PersonService struct {
	people       domain.PersonRepository
	applications domain.ApplicationRepository
	events       domain.EventLogger
	hashCost     int
	compare      func(hash, password []byte) error

	dummyOnce sync.Once
	dummy     []byte
}

func NewPersonService(people domain.PersonRepository, applications domain.ApplicationRepository, events domain.EventLogger) *PersonService {
	return &PersonService{
		people:       people,
		applications: applications,
		events:       events,
		hashCost:     bcrypt.DefaultCost,
		compare:      bcrypt.CompareHashAndPassword,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *PersonService) WithHashCost(cost int) *PersonService {
	s.hashCost = cost
	return s
}

// Authenticate checks the credentials against the person store without
// touching any session.
func (s *PersonService) Authenticate(ctx context.Context, username, password string) AuthResult {
	person, err := s.people.GetByUsername(ctx, username)
	if err != nil {
		return AuthResult{Outcome: AuthUnavailable, Err: err}
	}
	if person == nil {
		_ = s.compare(s.dummyHash(), []byte(password))
		return AuthResult{Outcome: AuthRejected}
	}
	if s.compare([]byte(person.PasswordHash), []byte(password)) != nil {
		return AuthResult{Outcome: AuthRejected}
	}
	return AuthResult{Outcome: AuthSucceeded, Person: person}
}

// dummyHash is generated at the service's hash cost on first use.
func (s *PersonService) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte(unknownUserPassword), s.hashCost)
	})
	return s.dummy
}

// Login authenticates a login request. The caller binds the returned person
// to a session.
func (s *PersonService) Login(ctx context.Context, input dto.LoginInput) (*domain.Person, error) {
	result := s.Authenticate(ctx, input.Username, input.Password)
	switch {
	case result.Outcome == AuthUnavailable:
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to authenticate %s: %w", input.Username, result.Err)
	case !result.Succeeded():
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	if err := s.events.LogEvent("User logged in: " + result.Person.Username); err != nil {
		return nil, err
	}
	return result.Person, nil
}

func (s *PersonService) CreateApplicant(ctx context.Context, input dto.CreateApplicantInput) (*domain.Person, error) {
	existing, err := s.people.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{{
			Field:   "password",
			Message: fmt.Sprintf("Invalid password: password must be at most %d bytes long.", dto.MaxPasswordBytes),
		}}}
	}
	if err != nil {
		return nil, err
	}

	created, err := s.people.CreateApplicant(ctx, &domain.Person{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PersonNumber: input.PersonNumber,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleApplicant,
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.LogEvent("New applicant registered: " + created.Username); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PersonService) FetchPerson(ctx context.Context, id int64) (*domain.Person, error) {
	person, err := s.people.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.ErrMissingSession
	}
	return person, nil
}

func (s *PersonService) ListApplications(ctx context.Context) ([]domain.Applicant, error) {
	return s.applications.ListApplicants(ctx)
}

// ChangeApplicationStatus lets the recruiter bound to session decide an
// application. The supplied credentials must authenticate and must belong to
// the session's person before anything is written.
func (s *PersonService) ChangeApplicationStatus(ctx context.Context, session *domain.Session, input dto.ChangeStatusInput) (*domain.Applicant, error) {
	// Step 1: re-authenticate independently of the session
	result := s.Authenticate(ctx, input.Username, input.Password)
	if !result.Succeeded() {
		metrics.StatusChanges.WithLabelValues("reauth_failed").Inc()
		return nil, apperrors.ErrReauthenticationFailed
	}

	// Step 2: the authenticated person must be the one bound to the session
	if session == nil || result.Person.ID != session.PersonID {
		metrics.StatusChanges.WithLabelValues("reauth_failed").Inc()
		return nil, apperrors.ErrReauthenticationFailed
	}

	// Step 3: conditional transition out of unhandled
	applicant, err := s.applications.UpdateStatusIfUnhandled(ctx, input.ID, domain.ApplicationStatus(input.NewStatus))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrApplicationAlreadyHandled):
			metrics.StatusChanges.WithLabelValues("already_handled").Inc()
		case errors.Is(err, apperrors.ErrApplicantNotFound):
			metrics.StatusChanges.WithLabelValues("not_found").Inc()
		default:
			metrics.StatusChanges.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	metrics.StatusChanges.WithLabelValues("success").Inc()

	// Step 4: record the decision
	msg := fmt.Sprintf("%s changed status of applicant %s %s (id %d) to %s.",
		result.Person.Username, applicant.FirstName, applicant.LastName, applicant.ID, applicant.Status)
	if err := s.events.LogEvent(msg); err != nil {
		return nil, err
	}

	return applicant, nil
}

// RecordLogout writes the logout event for username.
func (s *PersonService) RecordLogout(username string) error {
	return s.events.LogEvent("User logged out: " + username)
}
