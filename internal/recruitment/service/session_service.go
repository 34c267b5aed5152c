package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/google/uuid"
)

type SessionService struct {
	store  domain.SessionStore
	tokens TokenGenerator
}

func NewSessionService(store domain.SessionStore, tokens TokenGenerator) *SessionService {
	return &SessionService{store: store, tokens: tokens}
}

// Start binds person to a new server-side session and returns the signed
// cookie value.
func (s *SessionService) Start(ctx context.Context, person *domain.Person) (string, time.Time, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		PersonID:  person.ID,
		Username:  person.Username,
		Role:      person.Role,
		CreatedAt: time.Now().UTC(),
	}

	token, expiresAt, err := s.tokens.Generate(session.ID, session.Username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.store.Save(ctx, session, s.tokens.GetExpiry()); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Resolve maps a cookie value to its live session. A bad signature, an
// expired token or a session that was ended all yield ErrMissingSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperrors.ErrMissingSession
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.ErrMissingSession
	}

	session, err := s.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrMissingSession
	}
	return session, nil
}

func (s *SessionService) End(ctx context.Context, session *domain.Session) error {
	return s.store.Delete(ctx, session.ID)
}
