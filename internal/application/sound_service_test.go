package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/infrastructure/blob"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
)

type soundDeps struct {
	svc     *SoundService
	users   *jsonstore.UserRepository
	sounds  *jsonstore.SoundRepository
	reports *jsonstore.ReportRepository
}

func newSoundService(t *testing.T) soundDeps {
	t.Helper()
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Init())
	users := jsonstore.NewUserRepository(store)
	sounds := jsonstore.NewSoundRepository(store)
	reports := jsonstore.NewReportRepository(store)
	uploads := blob.NewLocalUploader(t.TempDir())
	return soundDeps{
		svc:     NewSoundService(sounds, users, reports, uploads, testLogger()),
		users:   users,
		sounds:  sounds,
		reports: reports,
	}
}

func validInput() CreateSoundInput {
	return CreateSoundInput{
		Title:     "Birds",
		Category:  entity.CategoryAmbient,
		Language:  "en",
		Privacy:   entity.PrivacyPublic,
		Latitude:  "10",
		Longitude: "20",
	}
}

func testAudio() *AudioPayload {
	return &AudioPayload{
		Reader:      strings.NewReader("fake audio bytes"),
		Filename:    "birds.mp3",
		ContentType: "audio/mpeg",
	}
}

func TestCreateSound(t *testing.T) {
	d := newSoundService(t)
	require.NoError(t, d.users.Create(&entity.User{ID: "u1", Name: "Ana", Avatar: "a.png"}))

	in := validInput()
	in.Description = "morning chorus"
	in.Tags = `["nature","dawn"]`

	view, err := d.svc.Create(context.Background(), "u1", in, testAudio())
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "u1", view.UserID)
	assert.Equal(t, []string{"nature", "dawn"}, view.Tags)
	assert.Equal(t, 10.0, view.Latitude)
	assert.Equal(t, 20.0, view.Longitude)
	assert.True(t, strings.HasSuffix(view.Filename, ".mp3"))
	require.NotNil(t, view.User)
	assert.Equal(t, "Ana", view.User.Name)
	assert.Equal(t, "a.png", view.User.Avatar)

	persisted, err := d.sounds.All()
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestCreateSoundMissingFields(t *testing.T) {
	d := newSoundService(t)

	for _, field := range []string{"title", "category", "language", "privacy", "latitude", "longitude"} {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			switch field {
			case "title":
				in.Title = ""
			case "category":
				in.Category = ""
			case "language":
				in.Language = ""
			case "privacy":
				in.Privacy = ""
			case "latitude":
				in.Latitude = ""
			case "longitude":
				in.Longitude = ""
			}
			_, err := d.svc.Create(context.Background(), "u1", in, testAudio())
			ve, ok := AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, field)
		})
	}
}

func TestCreateSoundRequiresAudio(t *testing.T) {
	d := newSoundService(t)
	_, err := d.svc.Create(context.Background(), "u1", validInput(), nil)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "file")
}

func TestCreateSoundCoordinateBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng string
		ok       bool
	}{
		{"origin", "0", "0", true},
		{"lat north pole", "90", "0", true},
		{"lat south pole", "-90", "0", true},
		{"lng antimeridian east", "0", "180", true},
		{"lng antimeridian west", "0", "-180", true},
		{"lat just above range", "90.0001", "0", false},
		{"lat just below range", "-90.0001", "0", false},
		{"lng just above range", "0", "180.0001", false},
		{"lng just below range", "0", "-180.0001", false},
		{"lat not a number", "north", "0", false},
		{"lng not a number", "0", "west", false},
		{"lat NaN", "NaN", "0", false},
		{"lng infinity", "0", "+Inf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newSoundService(t)
			in := validInput()
			in.Latitude = tt.lat
			in.Longitude = tt.lng
			_, err := d.svc.Create(context.Background(), "u1", in, testAudio())
			if tt.ok {
				assert.NoError(t, err)
			} else {
				_, isValidation := AsValidation(err)
				assert.True(t, isValidation, "expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateSoundTagDefaultsAndBadTags(t *testing.T) {
	d := newSoundService(t)

	view, err := d.svc.Create(context.Background(), "u1", validInput(), testAudio())
	require.NoError(t, err)
	assert.Equal(t, []string{}, view.Tags)

	in := validInput()
	in.Tags = "nature,dawn" // not a JSON array
	_, err = d.svc.Create(context.Background(), "u1", in, testAudio())
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "tags")
}

func TestListFiltersVisibility(t *testing.T) {
	d := newSoundService(t)
	require.NoError(t, d.users.Create(&entity.User{ID: "u1", Name: "Ana"}))
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s1", UserID: "u1", Title: "Pub", Privacy: entity.PrivacyPublic}))
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s2", UserID: "u1", Title: "Priv", Privacy: entity.PrivacyPrivate}))

	views, err := d.svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "s1", views[0].ID)
	require.NotNil(t, views[0].User)
	assert.Equal(t, "Ana", views[0].User.Name)
}

func TestListKeepsPinWithUnresolvedOwner(t *testing.T) {
	d := newSoundService(t)
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s1", UserID: "ghost", Privacy: entity.PrivacyPublic}))

	views, err := d.svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].User)
}

func TestListByAccountExcludesPrivateEvenForOwner(t *testing.T) {
	d := newSoundService(t)
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s1", UserID: "u1", Privacy: entity.PrivacyPublic}))
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s2", UserID: "u1", Privacy: entity.PrivacyPrivate}))
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s3", UserID: "u2", Privacy: entity.PrivacyPublic}))

	// Public profile view: the owner's own private pins stay hidden too
	sounds, err := d.svc.ListByAccount("u1")
	require.NoError(t, err)
	require.Len(t, sounds, 1)
	assert.Equal(t, "s1", sounds[0].ID)
}

func TestReportSound(t *testing.T) {
	d := newSoundService(t)
	require.NoError(t, d.sounds.Create(&entity.Sound{ID: "s1", UserID: "u1", Privacy: entity.PrivacyPublic}))

	rep, err := d.svc.Report("u2", "s1", "loud")
	require.NoError(t, err)
	assert.Equal(t, "s1", rep.SoundID)
	assert.Equal(t, "u2", rep.UserID)
	assert.WithinDuration(t, time.Now(), rep.CreatedAt, 5*time.Second)

	_, err = d.svc.Report("u2", "missing", "loud")
	assert.ErrorIs(t, err, ErrSoundNotFound)
}
