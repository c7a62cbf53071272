package service

import (
	"context"
	"io"
	"time"

	"chrona/internal/db"
	"chrona/internal/exchange"
	"chrona/internal/repository"

	"github.com/google/uuid"
)

type exchangeService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewExchangeService(sessions repository.SessionRepo, uow db.UnitOfWork) ExchangeService {
	return &exchangeService{sessions: sessions, uow: uow}
}

func (s *exchangeService) Export(ctx context.Context, w io.Writer) (int, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(sessions) == 0 {
		// Nothing to write; the surface reports a warning, not an error.
		return 0, nil
	}
	if err := exchange.Write(w, sessions); err != nil {
		return 0, err
	}
	return len(sessions), nil
}

func (s *exchangeService) Import(ctx context.Context, r io.Reader) (int, error) {
	rows, err := exchange.Parse(r)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		row.CreatedAt = now
	}

	// Single transaction: either the whole batch lands or none of it.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		for _, row := range rows {
			if err := txSessions.Create(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
