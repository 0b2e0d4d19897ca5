package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close(db) })
	return db
}

func TestUserCollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	users := InitUserCollection(newTestDB(t), zap.NewNop())

	require.True(t, AddUser(ctx, "SC", "sesame@uw.edu", "Sesame", "Chan", users))
	assert.False(t, AddUser(ctx, "SC", "other@uw.edu", "Other", "Person", users), "duplicate id")

	found := SearchUser(ctx, "SC", users)
	require.NotNil(t, found)
	assert.Equal(t, "SC", found.UserID)
	assert.Equal(t, "sesame@uw.edu", found.Email)

	assert.True(t, UpdateUser(ctx, "SC", "newemail@uw.edu", "Sesame", "Chan", users))
	assert.Equal(t, "newemail@uw.edu", SearchUser(ctx, "SC", users).Email)
	assert.False(t, UpdateUser(ctx, "nobody", "x", "y", "z", users))

	assert.True(t, DeleteUser(ctx, "SC", users))
	assert.False(t, DeleteUser(ctx, "SC", users))
	assert.Nil(t, SearchUser(ctx, "SC", users))
}

func TestUserCollectionList(t *testing.T) {
	ctx := context.Background()
	users := InitUserCollection(newTestDB(t), zap.NewNop())

	assert.Empty(t, users.ListUsers(ctx))
	require.True(t, users.AddUser(ctx, "b", "b@uw.edu", "B", "B"))
	require.True(t, users.AddUser(ctx, "a", "a@uw.edu", "A", "A"))

	list := users.ListUsers(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].UserID)
	assert.Equal(t, "b", list[1].UserID)
}

func TestStatusCollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := InitUserCollection(db, zap.NewNop())
	statuses := InitStatusCollection(db, zap.NewNop())

	require.True(t, users.AddUser(ctx, "SF", "safe@uw.edu", "Sabrina", "Fechtner"))
	require.True(t, users.AddUser(ctx, "SC", "sesame@uw.edu", "Sesame", "Chan"))

	assert.False(t, AddStatus(ctx, "ghost", "status0", "nobody home", statuses), "unknown user")
	assert.Nil(t, SearchStatus(ctx, "status0", statuses))

	require.True(t, AddStatus(ctx, "SF", "status1", "Hello World!", statuses))
	require.True(t, AddStatus(ctx, "SF", "status2", "Second", statuses))
	assert.False(t, AddStatus(ctx, "SC", "status1", "taken", statuses), "duplicate id")

	assert.True(t, UpdateStatus(ctx, "status1", "SC", "Updated Status!", statuses))
	updated := SearchStatus(ctx, "status1", statuses)
	require.NotNil(t, updated)
	assert.Equal(t, "SC", updated.UserID)
	assert.Equal(t, "Updated Status!", updated.Text)

	untouched := SearchStatus(ctx, "status2", statuses)
	require.NotNil(t, untouched)
	assert.Equal(t, "SF", untouched.UserID)
	assert.Equal(t, "Second", untouched.Text)

	assert.False(t, UpdateStatus(ctx, "status1", "ghost", "nope", statuses), "unknown user")
	assert.Equal(t, "Updated Status!", SearchStatus(ctx, "status1", statuses).Text)
	assert.False(t, UpdateStatus(ctx, "missing", "SF", "nope", statuses))

	assert.Len(t, statuses.ListStatuses(ctx, "SF"), 1)

	assert.True(t, DeleteStatus(ctx, "status1", statuses))
	assert.False(t, DeleteStatus(ctx, "status1", statuses))
	assert.Nil(t, SearchStatus(ctx, "status1", statuses))
}

func TestDeleteUserRemovesTheirStatuses(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := InitUserCollection(db, zap.NewNop())
	statuses := InitStatusCollection(db, zap.NewNop())

	require.True(t, users.AddUser(ctx, "SF", "safe@uw.edu", "Sabrina", "Fechtner"))
	require.True(t, statuses.AddStatus(ctx, "SF1", "SF", "Hello"))

	require.True(t, users.DeleteUser(ctx, "SF"))
	assert.Nil(t, statuses.SearchStatus(ctx, "SF1"))
}
