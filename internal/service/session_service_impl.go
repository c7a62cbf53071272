package service

import (
	"context"
	"time"

	"chrona/internal/domain"
	"chrona/internal/repository"

	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Add(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Category == "" {
		sess.Category = domain.CategoryOther
	}
	sess.DurationMin = domain.DurationMinutes(sess.StartedAt, sess.EndedAt)
	sess.CreatedAt = time.Now().UTC()

	return s.sessions.Create(ctx, sess)
}

func (s *sessionService) Delete(ctx context.Context, id string) (bool, error) {
	return s.sessions.Delete(ctx, id)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ListToday(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	return s.sessions.ListStartedOn(ctx, now)
}
