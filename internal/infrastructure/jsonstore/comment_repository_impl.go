package jsonstore

import (
	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
)

type CommentRepository struct {
	store *Store
}

func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{store: store}
}

// BySound returns the sound's comments in insertion order (oldest first).
func (r *CommentRepository) BySound(soundID string) ([]entity.Comment, error) {
	comments, err := Read[entity.Comment](r.store, CollectionComments)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Comment, 0)
	for _, c := range comments {
		if c.SoundID == soundID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	return Update(r.store, CollectionComments, func(comments []entity.Comment) ([]entity.Comment, error) {
		return append(comments, *c), nil
	})
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
