package jsonstore

import (
	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) All() ([]entity.User, error) {
	return Read[entity.User](r.store, CollectionUsers)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail is a case-sensitive exact match against the stored value.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) Create(u *entity.User) error {
	return Update(r.store, CollectionUsers, func(users []entity.User) ([]entity.User, error) {
		return append(users, *u), nil
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)
