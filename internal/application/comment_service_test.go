package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
)

func newCommentService(t *testing.T) (*CommentService, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Init())
	return NewCommentService(
		jsonstore.NewCommentRepository(store),
		jsonstore.NewSoundRepository(store),
		jsonstore.NewUserRepository(store),
	), store
}

func TestCommentCreateAndList(t *testing.T) {
	svc, store := newCommentService(t)
	require.NoError(t, jsonstore.NewUserRepository(store).Create(&entity.User{ID: "u1", Name: "Ana"}))
	require.NoError(t, jsonstore.NewSoundRepository(store).Create(&entity.Sound{ID: "s1", Title: "Birds"}))

	first, err := svc.Create("u1", "s1", "lovely")
	require.NoError(t, err)
	require.NotNil(t, first.User)
	assert.Equal(t, "Ana", first.User.Name)

	_, err = svc.Create("ghost", "s1", "anonymous-ish")
	require.NoError(t, err)

	views, err := svc.ListBySound("s1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "lovely", views[0].Text)
	// Unresolvable author renders as null, the comment still shows
	assert.Nil(t, views[1].User)
}

func TestCommentValidation(t *testing.T) {
	svc, store := newCommentService(t)
	require.NoError(t, jsonstore.NewSoundRepository(store).Create(&entity.Sound{ID: "s1"}))

	_, err := svc.Create("u1", "s1", "")
	_, ok := AsValidation(err)
	assert.True(t, ok)

	_, err = svc.Create("u1", "missing-sound", "hello")
	assert.ErrorIs(t, err, ErrSoundNotFound)
}
