package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echomap/echomap/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	require.NoError(t, s.Init())
	return s
}

func TestInitSeedsEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())

	for _, name := range []string{"users", "sounds", "comments", "reports"} {
		b, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	}
}

func TestInitLeavesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())

	repo := NewUserRepository(s)
	require.NoError(t, repo.Create(&entity.User{ID: "u1", Name: "Ana", Email: "a@b.com"}))

	// Second Init must not reset seeded data
	require.NoError(t, s.Init())
	users, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestReadFailsOnMalformedCollection(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{broken"), 0o644))

	_, err := Read[entity.User](s, CollectionUsers)
	assert.Error(t, err)
}

func TestReadFailsOnMissingFile(t *testing.T) {
	s := New(t.TempDir()) // no Init
	_, err := Read[entity.Sound](s, CollectionSounds)
	assert.Error(t, err)
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s)

	u := &entity.User{
		ID:        "u1",
		Name:      "Ana",
		Email:     "a@b.com",
		Password:  "hash",
		Role:      entity.RoleUser,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(u))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	byEmail, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	// Case-sensitive lookup
	_, err = repo.GetByEmail("A@b.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s)
	require.NoError(t, repo.Create(&entity.User{ID: "u1", Email: "1@x.io"}))
	require.NoError(t, repo.Create(&entity.User{ID: "u2", Email: "2@x.io"}))
	require.NoError(t, repo.Create(&entity.User{ID: "u3", Email: "3@x.io"}))

	users, err := repo.All()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"u1", "u2", "u3"}, []string{users[0].ID, users[1].ID, users[2].ID})
}

func TestSoundRepositoryDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	repo := NewSoundRepository(s)
	require.NoError(t, repo.Create(&entity.Sound{ID: "s1", Title: "Birds"}))
	require.NoError(t, repo.Create(&entity.Sound{ID: "s2", Title: "Rain"}))

	// Deleting an absent id succeeds and changes nothing
	require.NoError(t, repo.Delete("missing"))
	sounds, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, sounds, 2)

	require.NoError(t, repo.Delete("s1"))
	require.NoError(t, repo.Delete("s1")) // second delete is a no-op
	sounds, err = repo.All()
	require.NoError(t, err)
	require.Len(t, sounds, 1)
	assert.Equal(t, "s2", sounds[0].ID)
}

func TestCommentRepositoryFiltersBySound(t *testing.T) {
	s := newTestStore(t)
	repo := NewCommentRepository(s)
	require.NoError(t, repo.Create(&entity.Comment{ID: "c1", SoundID: "s1", Text: "first"}))
	require.NoError(t, repo.Create(&entity.Comment{ID: "c2", SoundID: "s2", Text: "other"}))
	require.NoError(t, repo.Create(&entity.Comment{ID: "c3", SoundID: "s1", Text: "second"}))

	comments, err := repo.BySound("s1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}

func TestConcurrentAppendsAreNotLost(t *testing.T) {
	s := newTestStore(t)
	repo := NewReportRepository(s)

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(id int) {
			done <- repo.Create(&entity.Report{ID: string(rune('a' + id)), SoundID: "s1"})
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	reports, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, reports, n)
}
