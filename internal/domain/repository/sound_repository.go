package repository

import "github.com/echomap/echomap/internal/domain/entity"

// SoundRepository defines the interface for sound pin persistence.
// Delete is idempotent: removing an absent id is a no-op, not an error.
type SoundRepository interface {
	All() ([]entity.Sound, error)
	GetByID(id string) (*entity.Sound, error)
	Create(s *entity.Sound) error
	Delete(id string) error
}
