package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/exchange"
)

type exchangeRateRepository struct {
	view
}

func (r *exchangeRateRepository) Create(_ context.Context, create *dto.ExchangeRateCreate) (*dto.ExchangeRateRead, error) {
	var out dto.ExchangeRateRead
	err := r.with(func(s *Store) error {
		key := exchange.PairKey(create.FromCurrency, create.ToCurrency)
		if _, taken := s.rateByPair[key]; taken {
			return fmt.Errorf("rate %s: %w", key, domain.ErrAlreadyExists)
		}
		s.nextRateID++
		out = dto.ExchangeRateRead{
			ID:           s.nextRateID,
			FromCurrency: create.FromCurrency,
			ToCurrency:   create.ToCurrency,
			Rate:         create.Rate,
			UpdatedAt:    s.now(),
		}
		s.rates[out.ID] = out
		s.rateByPair[key] = out.ID
		id := out.ID
		r.onRollback(func() {
			delete(s.rates, id)
			delete(s.rateByPair, key)
			s.nextRateID--
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *exchangeRateRepository) Get(_ context.Context, from, to string) (*dto.ExchangeRateRead, error) {
	var out dto.ExchangeRateRead
	err := r.with(func(s *Store) error {
		id, ok := s.rateByPair[exchange.PairKey(from, to)]
		if !ok {
			return fmt.Errorf("rate %s: %w", exchange.PairKey(from, to), domain.ErrNotFound)
		}
		out = s.rates[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *exchangeRateRepository) GetByID(_ context.Context, id int64) (*dto.ExchangeRateRead, error) {
	var out dto.ExchangeRateRead
	err := r.with(func(s *Store) error {
		rate, ok := s.rates[id]
		if !ok {
			return fmt.Errorf("rate %d: %w", id, domain.ErrNotFound)
		}
		out = rate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *exchangeRateRepository) Update(_ context.Context, id int64, update *dto.ExchangeRateUpdate) (*dto.ExchangeRateRead, error) {
	var out dto.ExchangeRateRead
	err := r.with(func(s *Store) error {
		prev, ok := s.rates[id]
		if !ok {
			return fmt.Errorf("rate %d: %w", id, domain.ErrNotFound)
		}
		out = prev
		out.Rate = update.Rate
		out.UpdatedAt = s.now()
		s.rates[id] = out
		r.onRollback(func() { s.rates[id] = prev })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *exchangeRateRepository) List(context.Context) ([]*dto.ExchangeRateRead, error) {
	out := []*dto.ExchangeRateRead{}
	_ = r.with(func(s *Store) error {
		for _, rate := range s.rates {
			rate := rate
			out = append(out, &rate)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *exchangeRateRepository) Count(context.Context) (int64, error) {
	var n int64
	_ = r.with(func(s *Store) error {
		n = int64(len(s.rates))
		return nil
	})
	return n, nil
}
