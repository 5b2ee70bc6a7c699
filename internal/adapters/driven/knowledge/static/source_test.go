package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_DefaultCorpus(t *testing.T) {
	source := New("")

	corpus, err := source.Fetch(context.Background())

	require.NoError(t, err)
	assert.Contains(t, corpus, "Arah Infotech")
	assert.Contains(t, corpus, "Core Services")

	// Deterministic: repeated fetches are identical.
	again, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, corpus, again)
}

func TestSource_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.txt")
	require.NoError(t, os.WriteFile(path, []byte("custom knowledge"), 0600))

	corpus, err := New(path).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "custom knowledge", corpus)
}

func TestSource_MissingOverrideFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.txt")).Fetch(context.Background())

	assert.Error(t, err)
}

func TestSource_Name(t *testing.T) {
	assert.Equal(t, "static", New("").Name())
}
