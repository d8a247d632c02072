package content_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preload/pkg/content"
	"github.com/arthur-debert/preload/pkg/errors"
)

func TestFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"slots/intro.md":       {Data: []byte("# Intro\n")},
		"slots/notes.txt":      {Data: []byte("plain notes")},
		"slots/deep/outro.md":  {Data: []byte("# Outro")},
		"slots/ignore.json":    {Data: []byte("{}")},
		"slots/style.markdown": {Data: []byte("*style*")},
		"elsewhere/hidden.md":  {Data: []byte("not loaded")},
	}

	t.Run("default extensions", func(t *testing.T) {
		entries, err := content.FromFS(fsys, "slots").Load()
		require.NoError(t, err)

		assert.Equal(t, content.Entries{
			"intro": "# Intro\n",
			"notes": "plain notes",
			"outro": "# Outro",
			"style": "*style*",
		}, entries)
	})

	t.Run("custom extensions", func(t *testing.T) {
		entries, err := content.FromFS(fsys, "slots", content.WithExtensions(".md")).Load()
		require.NoError(t, err)

		assert.Len(t, entries, 2)
		assert.Contains(t, entries, "intro")
		assert.Contains(t, entries, "outro")
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "fs:slots", content.FromFS(fsys, "slots").Name())
	})
}

func TestFromFS_DuplicateKey(t *testing.T) {
	fsys := fstest.MapFS{
		"intro.md":  {Data: []byte("# Intro")},
		"intro.txt": {Data: []byte("Intro")},
	}

	_, err := content.FromFS(fsys, ".").Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrContentLoad))
	assert.Equal(t, "intro", errors.GetErrorDetails(err)["key"])
}

func TestFromFS_MissingDir(t *testing.T) {
	_, err := content.FromFS(fstest.MapFS{}, "nope").Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrContentLoad))
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks-content.md"), []byte("# Tasks\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("skip"), 0644))

	src := content.FromDir(dir)
	assert.Equal(t, "dir:"+dir, src.Name())

	reg := content.NewRegistry()
	require.NoError(t, content.Boot(reg, src))
	assert.Equal(t, []string{"tasks-content"}, reg.Keys())
}
