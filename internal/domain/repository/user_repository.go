package repository

import "github.com/echomap/echomap/internal/domain/entity"

// UserRepository defines the interface for account persistence.
// GetByEmail is a case-sensitive exact match, mirroring the stored value.
type UserRepository interface {
	All() ([]entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Create(u *entity.User) error
}
