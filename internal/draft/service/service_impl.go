package service

import (
	"context"
	"encoding/json"

	"github.com/smallbiznis/pompabon/internal/clock"
	"github.com/smallbiznis/pompabon/internal/config"
	"github.com/smallbiznis/pompabon/internal/draft/domain"
	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Repo   domain.Repository
	Clock  clock.Clock
	Prices *config.PriceTableHolder
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   domain.Repository
	clock  clock.Clock
	prices *config.PriceTableHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("draft.service"),
		repo:   p.Repo,
		clock:  p.Clock,
		prices: p.Prices,
	}
}

func (s *Service) Load(ctx context.Context) (receiptdomain.Transaction, error) {
	tx, err := s.load(ctx)
	if err != nil {
		return receiptdomain.Transaction{}, err
	}

	// transaction-scoped fields never survive a rehydration
	tx.ClearTransactionScoped()
	return tx, nil
}

func (s *Service) Save(ctx context.Context, tx receiptdomain.Transaction) (receiptdomain.Transaction, error) {
	prev, err := s.load(ctx)
	if err != nil {
		return receiptdomain.Transaction{}, err
	}

	tx.Normalize()

	// Seconds is assigned exactly once, at the moment the time field is
	// edited. It is kept verbatim afterwards and never recomputed at
	// print time.
	if tx.Time != prev.Time {
		tx.Seconds = s.clock.Now().Second()
	} else {
		tx.Seconds = prev.Seconds
	}

	// Switching products pulls the table price unless the operator
	// edited the price in the same save.
	if tx.FuelType != prev.FuelType || tx.UnitPrice == 0 {
		if tx.UnitPrice == prev.UnitPrice || tx.UnitPrice == 0 {
			if price, ok := s.prices.Get().UnitPriceFor(string(tx.FuelType)); ok {
				tx.UnitPrice = price
			}
		}
	}

	if err := s.persist(ctx, tx); err != nil {
		return receiptdomain.Transaction{}, err
	}
	return tx, nil
}

func (s *Service) ClearTransactionScoped(ctx context.Context) error {
	tx, err := s.load(ctx)
	if err != nil {
		return err
	}

	tx.ClearTransactionScoped()
	return s.persist(ctx, tx)
}

func (s *Service) load(ctx context.Context) (receiptdomain.Transaction, error) {
	record, err := s.repo.Find(ctx, s.db, domain.StoreKey)
	if err != nil {
		return receiptdomain.Transaction{}, err
	}
	if record == nil {
		return receiptdomain.Transaction{}, nil
	}

	var tx receiptdomain.Transaction
	if err := json.Unmarshal(record.Payload, &tx); err != nil {
		// a corrupt slot should not brick the form; start clean
		s.log.Warn("draft payload unreadable, resetting", zap.Error(err))
		return receiptdomain.Transaction{}, nil
	}
	return tx, nil
}

func (s *Service) persist(ctx context.Context, tx receiptdomain.Transaction) error {
	payload, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	return s.repo.Upsert(ctx, s.db, &domain.Record{
		Key:       domain.StoreKey,
		Payload:   payload,
		UpdatedAt: s.clock.Now(),
	})
}
