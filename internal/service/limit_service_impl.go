package service

import (
	"context"
	"time"

	"chrona/internal/limit"
	"chrona/internal/report"
	"chrona/internal/repository"
)

type limitService struct {
	sessions repository.SessionRepo
	settings repository.SettingsRepo
}

func NewLimitService(sessions repository.SessionRepo, settings repository.SettingsRepo) LimitService {
	return &limitService{sessions: sessions, settings: settings}
}

func (s *limitService) DailyLimit(ctx context.Context) (int, error) {
	return s.settings.DailyLimit(ctx)
}

func (s *limitService) SetDailyLimit(ctx context.Context, minutes int) (int, error) {
	clamped := limit.ClampMinutes(minutes)
	if err := s.settings.SetDailyLimit(ctx, clamped); err != nil {
		return 0, err
	}
	return clamped, nil
}

func (s *limitService) TodayUsage(ctx context.Context, now time.Time) (limit.Usage, error) {
	limitMin, err := s.settings.DailyLimit(ctx)
	if err != nil {
		return limit.Usage{}, err
	}
	today, err := s.sessions.ListStartedOn(ctx, now)
	if err != nil {
		return limit.Usage{}, err
	}
	return limit.Usage{
		TotalMin: report.TotalMinutes(today),
		LimitMin: limitMin,
	}, nil
}
