package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors anywhere in err's chain to the
// matching domain error, keeping the original message as context. Other
// errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return err
}
