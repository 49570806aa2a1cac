package memory

import (
	"context"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/dto"
)

type userRepository struct {
	view
}

func (r *userRepository) Create(_ context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	var out dto.UserRead
	err := r.with(func(s *Store) error {
		for _, u := range s.users {
			if u.Username == create.Username || u.Email == create.Email {
				return fmt.Errorf("user %q: %w", create.Username, domain.ErrAlreadyExists)
			}
		}
		s.nextUserID++
		out = dto.UserRead{
			ID:             s.nextUserID,
			Username:       create.Username,
			HashedPassword: create.Password,
			FirstName:      create.FirstName,
			LastName:       create.LastName,
			Email:          create.Email,
			PhoneNumber:    create.PhoneNumber,
			CreatedAt:      s.now(),
		}
		s.users[out.ID] = out
		id := out.ID
		r.onRollback(func() {
			delete(s.users, id)
			s.nextUserID--
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Get(_ context.Context, id int64) (*dto.UserRead, error) {
	var out dto.UserRead
	err := r.with(func(s *Store) error {
		u, ok := s.users[id]
		if !ok {
			return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*dto.UserRead, error) {
	var out dto.UserRead
	err := r.with(func(s *Store) error {
		for _, u := range s.users {
			if u.Username == username {
				out = u
				return nil
			}
		}
		return fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	var found bool
	_ = r.with(func(s *Store) error {
		for _, u := range s.users {
			if u.Username == username {
				found = true
				break
			}
		}
		return nil
	})
	return found, nil
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	var found bool
	_ = r.with(func(s *Store) error {
		for _, u := range s.users {
			if u.Email == email {
				found = true
				break
			}
		}
		return nil
	})
	return found, nil
}
