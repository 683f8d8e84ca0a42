package entity

import "time"

// Sound categories as submitted by clients. Stored as provided; the enum is
// advisory, not enforced by the store.
const (
	CategoryMusic        = "music"
	CategoryConversation = "conversation"
	CategoryAmbient      = "ambient"
	CategoryEffect       = "effect"
	CategoryStory        = "story"
)

// Privacy values for a sound pin.
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Sound is a geo-tagged audio pin owned by a user.
// JSON tags define the on-disk record layout of the sounds collection.
type Sound struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	Privacy     string    `json:"privacy"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SoundView is a sound joined with its owner summary. Owner is null when the
// owning account no longer resolves.
type SoundView struct {
	Sound
	User *UserSummary `json:"user"`
}
