// Package user provides business logic for registering and reading users.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/domain/user"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/eventbus"
	"github.com/amirasaad/globalremit/pkg/repository"
)

// CreateInput is the data needed to register a user. Password is plain text
// and is hashed before storage.
type CreateInput struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber *string
}

// Service provides user operations.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a new Service. bus may be nil.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger,
	}
}

// CreateUser registers a user. Taken usernames or emails yield an error
// wrapping domain.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, in CreateInput) (*dto.UserRead, error) {
	logger := s.logger.With("username", in.Username, "email", in.Email)

	u, err := user.NewUser(in.Username, in.Password, in.FirstName, in.LastName, in.Email, in.PhoneNumber)
	if err != nil {
		logger.Error("CreateUser failed: domain error", "error", err)
		return nil, err
	}

	var created *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, user.ErrUsernameTaken)
		}
		taken, err = repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, user.ErrEmailTaken)
		}
		created, err = repo.Create(ctx, &dto.UserCreate{
			Username:    u.Username,
			Password:    u.Password,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
		})
		return err
	})
	if err != nil {
		logger.Error("CreateUser failed", "error", err)
		return nil, err
	}

	if s.bus != nil {
		evt := events.NewUserRegistered(created.ID, created.Username, created.Email)
		if err := s.bus.Emit(ctx, evt); err != nil {
			logger.Warn("CreateUser: event publish failed", "error", err)
		}
	}
	logger.Info("CreateUser successful", "user_id", created.ID)
	return created, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*dto.UserRead, error) {
	var u *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	var u *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
