package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/domain/user"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

func newTestStore(t *testing.T) *UserStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "users.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGetByEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := &user.User{
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$hash",
		FullName:       "Ada Lovelace",
		IsActive:       true,
	}
	require.NoError(t, store.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := store.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.Equal(t, "$2a$10$hash", got.HashedPassword)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsLinked)
	assert.Nil(t, got.LinkedPersonID)
	assert.Nil(t, got.UpdatedAt)
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &user.User{Email: "ada@example.com", HashedPassword: "h", IsActive: true}
	require.NoError(t, store.Create(ctx, first))

	err := store.Create(ctx, &user.User{Email: "ada@example.com", HashedPassword: "h2", IsActive: true})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestGetByEmailNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByEmail(context.Background(), "missing@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSetPersonLink(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := &user.User{Email: "ada@example.com", HashedPassword: "h", IsActive: true}
	require.NoError(t, store.Create(ctx, u))

	require.NoError(t, store.SetPersonLink(ctx, u.ID, "ada-lovelace-1a2b3c4d"))

	got, err := store.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, got.IsLinked)
	require.NotNil(t, got.LinkedPersonID)
	assert.Equal(t, "ada-lovelace-1a2b3c4d", *got.LinkedPersonID)
	assert.NotNil(t, got.UpdatedAt)
}

func TestSetPersonLinkUnknownUser(t *testing.T) {
	store := newTestStore(t)

	err := store.SetPersonLink(context.Background(), 9999, "x")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPaginates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, store.Create(ctx, &user.User{Email: email, HashedPassword: "h", IsActive: true}))
	}

	page, err := store.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@example.com", page[0].Email)

	all, err := store.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
