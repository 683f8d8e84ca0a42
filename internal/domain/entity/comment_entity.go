package entity

import "time"

// Comment is a text note attached to a sound pin.
type Comment struct {
	ID        string    `json:"id"`
	SoundID   string    `json:"soundId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentView is a comment joined with its author summary.
type CommentView struct {
	Comment
	User *UserSummary `json:"user"`
}
