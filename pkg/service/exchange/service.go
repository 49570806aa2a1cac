// Package exchange serves stored exchange rates and quotes.
package exchange

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/eventbus"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service exposes the stored rate list and the quote calculator.
//
// Stored rates and the live table move together: Seed loads stored rates
// into the table and UpdateRate applies each edit to it after the write, so
// a quoter built over the same table prices with the stored rates.
type Service struct {
	uow    repository.UnitOfWork
	rates  *exchange.LiveTable
	quoter quote.Quoter
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a new Service. bus may be nil. A nil quoter prices over rates.
func New(
	uow repository.UnitOfWork,
	rates *exchange.LiveTable,
	quoter quote.Quoter,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if rates == nil {
		rates = exchange.NewLiveTable(nil)
	}
	if quoter == nil {
		quoter = quote.NewCalculator(rates, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, rates: rates, quoter: quoter, bus: bus, logger: logger}
}

// Rates returns the live table the service keeps in step with storage.
func (s *Service) Rates() *exchange.LiveTable {
	return s.rates
}

// Seed stores every table entry when the rate store is empty and returns the
// number of rates written. A populated store is loaded into the live table
// instead.
func (s *Service) Seed(ctx context.Context) (int, error) {
	seeded := 0
	var stored []*dto.ExchangeRateRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExchangeRateRepository()
		if err != nil {
			return err
		}
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			stored, err = repo.List(ctx)
			return err
		}
		for _, e := range s.rates.Entries() {
			if _, err := repo.Create(ctx, &dto.ExchangeRateCreate{
				FromCurrency: e.From,
				ToCurrency:   e.To,
				Rate:         e.Rate,
			}); err != nil {
				return fmt.Errorf("seed %s: %w", e.Key(), err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Seeding exchange rates failed", "error", err)
		return 0, err
	}
	if seeded > 0 {
		s.logger.Info("Seeded exchange rates", "count", seeded)
	}
	for _, r := range stored {
		if err := s.rates.SetRate(r.FromCurrency, r.ToCurrency, r.Rate); err != nil {
			return 0, fmt.Errorf("load %s: %w", exchange.PairKey(r.FromCurrency, r.ToCurrency), err)
		}
	}
	if len(stored) > 0 {
		s.logger.Info("Loaded stored exchange rates", "count", len(stored))
	}
	return seeded, nil
}

// ListRates returns all stored rates.
func (s *Service) ListRates(ctx context.Context) ([]*dto.ExchangeRateRead, error) {
	var rates []*dto.ExchangeRateRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExchangeRateRepository()
		if err != nil {
			return err
		}
		rates, err = repo.List(ctx)
		return err
	})
	return rates, err
}

// GetRate returns the stored rate for an ordered pair.
func (s *Service) GetRate(ctx context.Context, from, to string) (*dto.ExchangeRateRead, error) {
	var rate *dto.ExchangeRateRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExchangeRateRepository()
		if err != nil {
			return err
		}
		rate, err = repo.Get(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rate, nil
}

// UpdateRate replaces a stored rate and publishes ExchangeRateUpdated.
func (s *Service) UpdateRate(ctx context.Context, id int64, rate decimal.Decimal) (*dto.ExchangeRateRead, error) {
	if !rate.IsPositive() {
		return nil, exchange.ErrInvalidRate
	}

	var before, after *dto.ExchangeRateRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExchangeRateRepository()
		if err != nil {
			return err
		}
		if before, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		after, err = repo.Update(ctx, id, &dto.ExchangeRateUpdate{Rate: rate})
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.rates.SetRate(after.FromCurrency, after.ToCurrency, after.Rate); err != nil {
		return nil, err
	}

	s.logger.Info("Exchange rate updated",
		"pair", exchange.PairKey(after.FromCurrency, after.ToCurrency),
		"old_rate", before.Rate, "new_rate", after.Rate)
	if s.bus != nil {
		evt := events.NewExchangeRateUpdated(events.ExchangeRateUpdated{
			RateID:       after.ID,
			FromCurrency: after.FromCurrency,
			ToCurrency:   after.ToCurrency,
			OldRate:      before.Rate,
			NewRate:      after.Rate,
		})
		if err := s.bus.Emit(ctx, evt); err != nil {
			s.logger.Warn("UpdateRate: event publish failed", "error", err)
		}
	}
	return after, nil
}

// Quote prices a transfer with the live rates.
func (s *Service) Quote(from, to string, amount decimal.Decimal) (quote.Quote, error) {
	return s.quoter.Compute(from, to, amount)
}
