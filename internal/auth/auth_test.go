package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("stacker_42"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("bad name"))
	assert.Error(t, ValidateUsername("nope!"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("player@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("letters123"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("nonumbershere"))
	assert.Error(t, ValidatePassword("8675309867"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("letters123")
	require.NoError(t, err)
	assert.NotEqual(t, "letters123", hash)
	assert.True(t, CheckPassword("letters123", hash))
	assert.False(t, CheckPassword("wrongpass1", hash))
}

func TestSessionRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.json")
	sm := &SessionManager{sessionFile: file}

	assert.False(t, sm.IsLoggedIn())
	require.NoError(t, sm.SaveSession(7, "stacker", "stacker@example.com"))
	assert.True(t, sm.IsLoggedIn())

	// a second manager pointed at the same file picks the session up
	reloaded := &SessionManager{sessionFile: file}
	require.NoError(t, reloaded.LoadSession())
	require.True(t, reloaded.IsLoggedIn())
	assert.Equal(t, 7, reloaded.GetCurrentSession().UserID)
	assert.Equal(t, "stacker", reloaded.GetCurrentSession().Username)

	require.NoError(t, reloaded.ClearSession())
	assert.False(t, reloaded.IsLoggedIn())

	// the file is gone, so loading is a clean no-op
	third := &SessionManager{sessionFile: file}
	require.NoError(t, third.LoadSession())
	assert.False(t, third.IsLoggedIn())
}
