package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		MongoID:  "64b8f0a2c1d2e3f4a5b6c7d8",
		Username: "douglas",
		Email:    "douglas@example.com",
		Role:     domain.RoleAnalyst,
	}
}

func TestStore_LoginPersistsAndReloads(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(dir)
	require.NoError(t, store.Initialize())
	assert.False(t, store.Authenticated())

	require.NoError(t, store.Login("tok-123", testUser()))
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok-123", store.Token())

	// Simulated reload: a brand new store over the same directory.
	reloaded := NewStore(dir)
	require.NoError(t, reloaded.Initialize())
	require.True(t, reloaded.Authenticated())
	assert.Equal(t, "tok-123", reloaded.Token())
	assert.Equal(t, "douglas", reloaded.User().Username)
	assert.Equal(t, domain.RoleAnalyst, reloaded.User().Role)
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(dir)
	require.NoError(t, store.Login("tok-123", testUser()))
	require.NoError(t, store.Logout())

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	// After a reload there is still no session.
	reloaded := NewStore(dir)
	require.NoError(t, reloaded.Initialize())
	assert.False(t, reloaded.Authenticated())

	_, err := os.Stat(filepath.Join(dir, TokenFileName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, UserFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_InitializeDiscardsCorruptUser(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenFileName), []byte("tok-123"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, UserFileName), []byte("{not json"), 0o600))

	store := NewStore(dir)
	err := store.Initialize()
	require.Error(t, err)
	assert.False(t, store.Authenticated())

	// Both files were cleared, never just one.
	_, statErr := os.Stat(filepath.Join(dir, TokenFileName))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dir, UserFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_InitializeDiscardsHalfSession(t *testing.T) {
	dir := t.TempDir()
	// Token present, user missing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenFileName), []byte("tok-123"), 0o600))

	store := NewStore(dir)
	err := store.Initialize()
	require.Error(t, err)
	assert.False(t, store.Authenticated())

	_, statErr := os.Stat(filepath.Join(dir, TokenFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_InitializeDiscardsInvalidRole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenFileName), []byte("tok-123"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, UserFileName),
		[]byte(`{"_id":"x","username":"eve","email":"eve@example.com","role":"superuser"}`), 0o600))

	store := NewStore(dir)
	require.Error(t, store.Initialize())
	assert.False(t, store.Authenticated())
}

func TestStore_LoginRejectsIncompleteSession(t *testing.T) {
	store := NewStore(t.TempDir())

	assert.Error(t, store.Login("", testUser()))
	assert.Error(t, store.Login("tok-123", domain.User{Username: "no-id"}))
	assert.False(t, store.Authenticated())
}

func TestStore_SubscribersSeeChanges(t *testing.T) {
	store := NewStore(t.TempDir())

	var seen []*Session
	store.Subscribe(func(s *Session) {
		seen = append(seen, s)
	})

	require.NoError(t, store.Login("tok-123", testUser()))
	require.NoError(t, store.Logout())

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	assert.Equal(t, "tok-123", seen[0].Token)
	assert.Nil(t, seen[1])
}

func TestStore_UserReturnsCopy(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Login("tok-123", testUser()))

	u := store.User()
	u.Username = "mutated"

	assert.Equal(t, "douglas", store.User().Username)
}
