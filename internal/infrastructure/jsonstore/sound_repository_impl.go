package jsonstore

import (
	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
)

type SoundRepository struct {
	store *Store
}

func NewSoundRepository(store *Store) *SoundRepository {
	return &SoundRepository{store: store}
}

func (r *SoundRepository) All() ([]entity.Sound, error) {
	return Read[entity.Sound](r.store, CollectionSounds)
}

func (r *SoundRepository) GetByID(id string) (*entity.Sound, error) {
	sounds, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range sounds {
		if sounds[i].ID == id {
			return &sounds[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *SoundRepository) Create(s *entity.Sound) error {
	return Update(r.store, CollectionSounds, func(sounds []entity.Sound) ([]entity.Sound, error) {
		return append(sounds, *s), nil
	})
}

// Delete removes the pin with the given id and persists the remainder.
// Deleting an absent id succeeds with no effect.
func (r *SoundRepository) Delete(id string) error {
	return Update(r.store, CollectionSounds, func(sounds []entity.Sound) ([]entity.Sound, error) {
		kept := sounds[:0]
		for _, s := range sounds {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		return kept, nil
	})
}

var _ repository.SoundRepository = (*SoundRepository)(nil)
