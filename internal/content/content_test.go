package content

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsAbout(t *testing.T) {
	fsys, err := FS()
	require.NoError(t, err)

	data, err := fs.ReadFile(fsys, "about.md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# About")
}

func TestFS_ProjectsDirectory(t *testing.T) {
	fsys, err := FS()
	require.NoError(t, err)

	entries, err := fs.ReadDir(fsys, "projects")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
