package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/session"
)

func TestKeychain_RoundTrip(t *testing.T) {
	kc := session.NewKeychain(t.TempDir())

	sess := &session.Session{
		Token: "token-123",
		User:  session.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}

	require.NoError(t, kc.Save(sess))

	got, err := kc.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess, got)
}

func TestKeychain_LoadMissing(t *testing.T) {
	kc := session.NewKeychain(t.TempDir())

	got, err := kc.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeychain_ClearRemovesBoth(t *testing.T) {
	kc := session.NewKeychain(t.TempDir())

	require.NoError(t, kc.Save(&session.Session{
		Token: "token-123",
		User:  session.User{Email: "ada@example.com"},
	}))

	require.NoError(t, kc.Clear())

	got, err := kc.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "token and user are cleared together")
}

func TestKeychain_ClearTwice(t *testing.T) {
	kc := session.NewKeychain(t.TempDir())

	require.NoError(t, kc.Clear())
	require.NoError(t, kc.Clear())
}
