package repository

import "github.com/echomap/echomap/internal/domain/entity"

// CommentRepository defines the interface for comment persistence.
type CommentRepository interface {
	BySound(soundID string) ([]entity.Comment, error)
	Create(c *entity.Comment) error
}
