package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
	"github.com/echomap/echomap/internal/infrastructure/blob"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
)

// SoundService implements the sound catalog: validated creation of geo-tagged
// pins and visibility-filtered listings.
type SoundService struct {
	Sounds  repository.SoundRepository
	Users   repository.UserRepository
	Reports repository.ReportRepository
	Uploads blob.Uploader
	Logger  *logrus.Logger
}

func NewSoundService(sounds repository.SoundRepository, users repository.UserRepository, reports repository.ReportRepository, uploads blob.Uploader, logger *logrus.Logger) *SoundService {
	return &SoundService{Sounds: sounds, Users: users, Reports: reports, Uploads: uploads, Logger: logger}
}

// CreateSoundInput carries the multipart metadata fields as submitted.
// Tags is a JSON-encoded array string; Latitude/Longitude are decimal strings.
type CreateSoundInput struct {
	Title       string
	Description string
	Tags        string
	Category    string
	Language    string
	Privacy     string
	Latitude    string
	Longitude   string
}

// AudioPayload is the uploaded file handed to the blob collaborator.
type AudioPayload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// Create validates the fields, stores the audio payload, mints a new pin and
// persists it. The returned view embeds the owner's public summary.
func (s *SoundService) Create(ctx context.Context, userID string, in CreateSoundInput, audio *AudioPayload) (*entity.SoundView, error) {
	fields := map[string]string{}
	for f, v := range map[string]string{
		"title":     in.Title,
		"category":  in.Category,
		"language":  in.Language,
		"privacy":   in.Privacy,
		"latitude":  in.Latitude,
		"longitude": in.Longitude,
	} {
		if v == "" {
			fields[f] = "is required"
		}
	}
	if audio == nil || audio.Reader == nil {
		fields["file"] = "audio file is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	lat, err := parseCoordinate(in.Latitude, -90, 90)
	if err != nil {
		return nil, invalidField("latitude", "must be a number between -90 and 90")
	}
	lng, err := parseCoordinate(in.Longitude, -180, 180)
	if err != nil {
		return nil, invalidField("longitude", "must be a number between -180 and 180")
	}

	tags := []string{}
	if in.Tags != "" {
		if err := json.Unmarshal([]byte(in.Tags), &tags); err != nil {
			return nil, invalidField("tags", "must be a JSON array of strings")
		}
	}

	filename, err := s.Uploads.Save(ctx, audio.Reader, audio.Filename, audio.ContentType)
	if err != nil {
		return nil, err
	}

	sound := &entity.Sound{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Tags:        tags,
		Category:    in.Category,
		Language:    in.Language,
		Privacy:     in.Privacy,
		Latitude:    lat,
		Longitude:   lng,
		Filename:    filename,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Sounds.Create(sound); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"sound_id": sound.ID, "user_id": userID}).Info("sound created")

	return &entity.SoundView{Sound: *sound, User: s.ownerSummary(userID)}, nil
}

// parseCoordinate accepts finite decimal values within [min, max], boundaries
// inclusive.
func parseCoordinate(s string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < min || v > max {
		return 0, errors.New("out of range")
	}
	return v, nil
}

// List returns all public pins, each joined with a minimal owner summary.
// A pin whose owner cannot be resolved still appears with a null owner.
func (s *SoundService) List() ([]entity.SoundView, error) {
	sounds, err := s.Sounds.All()
	if err != nil {
		return nil, err
	}
	owners, err := s.ownerIndex()
	if err != nil {
		return nil, err
	}
	out := make([]entity.SoundView, 0, len(sounds))
	for _, snd := range sounds {
		if snd.Privacy != entity.PrivacyPublic {
			continue
		}
		out = append(out, entity.SoundView{Sound: snd, User: owners[snd.UserID]})
	}
	return out, nil
}

// ListByAccount returns the account's public pins. Private pins are excluded
// regardless of the requester, including the owner: this is a public profile
// view (see DESIGN.md).
func (s *SoundService) ListByAccount(userID string) ([]entity.Sound, error) {
	sounds, err := s.Sounds.All()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sound, 0)
	for _, snd := range sounds {
		if snd.UserID == userID && snd.Privacy == entity.PrivacyPublic {
			out = append(out, snd)
		}
	}
	return out, nil
}

// Report files an abuse report against an existing pin.
func (s *SoundService) Report(userID, soundID, reason string) (*entity.Report, error) {
	if _, err := s.Sounds.GetByID(soundID); err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			return nil, ErrSoundNotFound
		}
		return nil, err
	}
	rep := &entity.Report{
		ID:        uuid.NewString(),
		SoundID:   soundID,
		UserID:    userID,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Reports.Create(rep); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"sound_id": soundID, "user_id": userID}).Info("sound reported")
	return rep, nil
}

func (s *SoundService) ownerIndex() (map[string]*entity.UserSummary, error) {
	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*entity.UserSummary, len(users))
	for i := range users {
		sum := users[i].Summary()
		idx[users[i].ID] = &sum
	}
	return idx, nil
}

func (s *SoundService) ownerSummary(userID string) *entity.UserSummary {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return nil
	}
	sum := u.Summary()
	return &sum
}
