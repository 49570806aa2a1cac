package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository/user"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a gorm-backed user repository.
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) (*dto.UserRead, error) {
	u := &User{
		Username:    create.Username,
		Password:    create.Password,
		FirstName:   create.FirstName,
		LastName:    create.LastName,
		Email:       create.Email,
		PhoneNumber: create.PhoneNumber,
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(u), nil
}

func (r *userRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, MapGormErrorToDomain(err))
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", username, MapGormErrorToDomain(err))
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func mapUserToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		HashedPassword: u.Password,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		CreatedAt:      u.CreatedAt,
	}
}
