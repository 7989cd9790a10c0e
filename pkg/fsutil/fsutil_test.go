package fsutil_test

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/dev1-sg/ecrdocs/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "src", "alpine", "readme.md")

		require.NoError(t, fsutil.WriteFile([]byte("# alpine\n"), output))

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "# alpine\n", string(content))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "readme.md")
		require.NoError(t, os.WriteFile(output, []byte("old content that is longer"), 0o600))

		require.NoError(t, fsutil.WriteFile([]byte("new"), output))

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("empty output path", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, fsutil.WriteFile([]byte("x"), ""), fsutil.ErrEmptyOutputPath)
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		err := fsutil.WriteFile([]byte("x"), filepath.Join(blocker, "readme.md"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create directory")
	})
}

func TestIsDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	require.NoError(t, fsutil.IsDirectory(root))
	require.ErrorIs(t, fsutil.IsDirectory(file), fsutil.ErrNotDirectory)
	require.ErrorIs(t, fsutil.IsDirectory(filepath.Join(root, "missing")), os.ErrNotExist)
}

func TestListSubdirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"debian", "alpine"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o750))
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), nil, 0o600))
	require.NoError(t, os.Symlink(filepath.Join(root, "alpine"), filepath.Join(root, "busybox")))
	require.NoError(t, os.Symlink(filepath.Join(root, "readme.md"), filepath.Join(root, "notes")))

	names, err := fsutil.ListSubdirectories(root)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpine", "busybox", "debian"}, names)
}

func TestListSubdirectoriesMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := fsutil.ListSubdirectories(filepath.Join(t.TempDir(), "missing"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpandHomePath(t *testing.T) {
	t.Parallel()

	usr, err := user.Current()
	require.NoError(t, err)

	expanded, err := fsutil.ExpandHomePath("~/templates/readme.md.tmpl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "templates", "readme.md.tmpl"), expanded)

	expanded, err = fsutil.ExpandHomePath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", expanded)

	expanded, err = fsutil.ExpandHomePath("relative")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(expanded))
}
