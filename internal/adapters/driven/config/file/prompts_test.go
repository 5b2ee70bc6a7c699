package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

func TestPromptStore_DefaultPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	prompt, err := store.Load(driven.PromptChatSystem)

	require.NoError(t, err)
	assert.Contains(t, prompt, "Arah Infotech")
	assert.Contains(t, prompt, "%s")
}

func TestPromptStore_SeedsFileOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(driven.PromptChatSystem)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, driven.PromptChatSystem+".txt"))
	assert.NoError(t, statErr)
}

func TestPromptStore_UserEditedFileWins(t *testing.T) {
	dir := t.TempDir()
	custom := "CUSTOM PROMPT\n%s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.PromptChatSystem+".txt"), []byte(custom), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer store.Close()

	prompt, err := store.Load(driven.PromptChatSystem)

	require.NoError(t, err)
	assert.Equal(t, "CUSTOM PROMPT\n%s", prompt)
}

func TestPromptStore_ReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, driven.PromptChatSystem+".txt")
	require.NoError(t, os.WriteFile(path, []byte("first %s"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer store.Close()

	prompt, err := store.Load(driven.PromptChatSystem)
	require.NoError(t, err)
	assert.Equal(t, "first %s", prompt)

	require.NoError(t, os.WriteFile(path, []byte("second %s"), 0600))
	store.Reload()

	prompt, err = store.Load(driven.PromptChatSystem)
	require.NoError(t, err)
	assert.Equal(t, "second %s", prompt)
}

func TestPromptStore_UnknownPromptFails(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load("no_such_prompt")

	assert.Error(t, err)
}
