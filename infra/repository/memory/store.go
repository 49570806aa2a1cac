// Package memory is an in-process repository. Every record lives in a
// per-entity arena keyed by a sequential ID allocated under a single mutex.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/amirasaad/globalremit/pkg/repository/exchangerate"
	"github.com/amirasaad/globalremit/pkg/repository/transfer"
	"github.com/amirasaad/globalremit/pkg/repository/user"
)

// Store holds all arenas. It is safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users      map[int64]dto.UserRead
	nextUserID int64

	transfers      map[int64]dto.TransferRead
	transferByTxID map[string]int64
	nextTransferID int64

	rates      map[int64]dto.ExchangeRateRead
	rateByPair map[string]int64
	nextRateID int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:            func() time.Time { return time.Now().UTC() },
		users:          make(map[int64]dto.UserRead),
		transfers:      make(map[int64]dto.TransferRead),
		transferByTxID: make(map[string]int64),
		rates:          make(map[int64]dto.ExchangeRateRead),
		rateByPair:     make(map[string]int64),
	}
}

// view is a handle on the store. Inside UoW.Do the store mutex is already
// held and mutations append compensating actions to undo.
type view struct {
	s      *Store
	locked bool
	undo   *[]func()
}

func (v view) with(fn func(s *Store) error) error {
	if !v.locked {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(v.s)
}

func (v view) onRollback(fn func()) {
	if v.undo != nil {
		*v.undo = append(*v.undo, fn)
	}
}

// UoW implements repository.UnitOfWork over a Store. Do serialises units of
// work and reverts their writes when fn fails.
type UoW struct {
	view
}

// NewUoW returns a unit of work over store.
func NewUoW(store *Store) *UoW {
	return &UoW{view{s: store}}
}

func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.locked {
		return fn(u)
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	var undo []func()
	tx := &UoW{view{s: u.s, locked: true, undo: &undo}}
	if err := fn(tx); err != nil {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return err
	}
	return nil
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return &userRepository{u.view}, nil
}

func (u *UoW) TransferRepository() (transfer.Repository, error) {
	return &transferRepository{u.view}, nil
}

func (u *UoW) ExchangeRateRepository() (exchangerate.Repository, error) {
	return &exchangeRateRepository{u.view}, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
