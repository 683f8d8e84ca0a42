package application

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
)

// CommentService implements per-sound comment listing and creation.
type CommentService struct {
	Comments repository.CommentRepository
	Sounds   repository.SoundRepository
	Users    repository.UserRepository
}

func NewCommentService(comments repository.CommentRepository, sounds repository.SoundRepository, users repository.UserRepository) *CommentService {
	return &CommentService{Comments: comments, Sounds: sounds, Users: users}
}

// ListBySound returns a pin's comments oldest first, each joined with its
// author summary (null when the author no longer resolves).
func (s *CommentService) ListBySound(soundID string) ([]entity.CommentView, error) {
	comments, err := s.Comments.BySound(soundID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CommentView, 0, len(comments))
	for _, c := range comments {
		var sum *entity.UserSummary
		if u, err := s.Users.GetByID(c.UserID); err == nil {
			v := u.Summary()
			sum = &v
		}
		out = append(out, entity.CommentView{Comment: c, User: sum})
	}
	return out, nil
}

// Create attaches a comment to an existing pin.
func (s *CommentService) Create(userID, soundID, text string) (*entity.CommentView, error) {
	if text == "" {
		return nil, invalidField("text", "is required")
	}
	if _, err := s.Sounds.GetByID(soundID); err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			return nil, ErrSoundNotFound
		}
		return nil, err
	}
	c := &entity.Comment{
		ID:        uuid.NewString(),
		SoundID:   soundID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Comments.Create(c); err != nil {
		return nil, err
	}
	var sum *entity.UserSummary
	if u, err := s.Users.GetByID(userID); err == nil {
		v := u.Summary()
		sum = &v
	}
	return &entity.CommentView{Comment: *c, User: sum}, nil
}
