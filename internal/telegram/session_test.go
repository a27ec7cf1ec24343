package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get(1)
	assert.False(t, ok, "no session before /start")

	session := store.Start(1)
	session.Fields.Position = "Developer"
	session.Pending = "location"

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Developer", got.Fields.Position)

	// /start over an existing session drops the accumulated parameters.
	store.Start(1)
	got, _ = store.Get(1)
	assert.Empty(t, got.Fields.Position)
	assert.Empty(t, got.Pending)
}

func TestClear(t *testing.T) {
	store := NewSessionStore()

	assert.False(t, store.Clear(7), "clear requires a started session")

	session := store.Start(7)
	session.Fields.Keywords = "python, git"

	require.True(t, store.Clear(7))
	got, ok := store.Get(7)
	require.True(t, ok)
	assert.Empty(t, got.Fields.Keywords)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewSessionStore()
	store.Start(1).Fields.Position = "Developer"
	store.Start(2).Fields.Position = "Tester"

	first, _ := store.Get(1)
	second, _ := store.Get(2)
	assert.Equal(t, "Developer", first.Fields.Position)
	assert.Equal(t, "Tester", second.Fields.Position)
}
