package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "graph document", path: "out/3f2a9c01b7de.jsonld", expected: "jsonld"},
		{name: "yaml manifest", path: "manifests/home.yaml", expected: "yaml"},
		{name: "script tag snippet", path: "out/3f2a9c01b7de.html", expected: "html"},
		{name: "keeps case", path: "PAGE.HTM", expected: "HTM"},
		{name: "last dot wins", path: "site.manifest.json", expected: "json"},
		{name: "no extension", path: "Manifest", expected: ""},
		{name: "trailing dot", path: "page.", expected: ""},
		{name: "directory", path: "/srv/out/", expected: ""},
		{name: "empty", path: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileutil.GetFileExtension(tt.path))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		existing bool
	}{
		{name: "output dir only", parts: nil},
		{name: "nested components", parts: []string{"site", "graphs"}},
		{name: "already exists", parts: []string{"out"}, existing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			root := t.TempDir()
			target := filepath.Join(append([]string{root}, tt.parts...)...)
			if tt.existing {
				require.NoError(t, os.MkdirAll(target, 0755))
			}

			// Act
			err := fileutil.EnsureDir(root, tt.parts...)

			// Assert
			require.NoError(t, err)
			info, statErr := os.Stat(target)
			require.NoError(t, statErr)
			assert.True(t, info.IsDir())
		})
	}
}

func TestEnsureDir_PathIsFile(t *testing.T) {
	root := t.TempDir()
	occupied := filepath.Join(root, "out")
	require.NoError(t, os.WriteFile(occupied, []byte("x"), 0644))

	err := fileutil.EnsureDir(occupied, "graphs")
	require.Error(t, err)

	var fileErr *fileutil.FileError
	if assert.ErrorAs(t, err, &fileErr) {
		assert.False(t, fileErr.Retryable)
		assert.Equal(t, fileutil.ErrCausePathError, fileErr.Cause)
	}
}

func TestIsYAML(t *testing.T) {
	assert.True(t, fileutil.IsYAML("manifest.yaml"))
	assert.True(t, fileutil.IsYAML("dir/manifest.YML"))
	assert.False(t, fileutil.IsYAML("manifest.json"))
	assert.False(t, fileutil.IsYAML("yaml"))
}

func TestIsHTML(t *testing.T) {
	assert.True(t, fileutil.IsHTML("index.html"))
	assert.True(t, fileutil.IsHTML("pages/about.HTM"))
	assert.False(t, fileutil.IsHTML("graph.jsonld"))
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	data, err := fileutil.ReadFile(path)

	assert.Nil(t, data)
	var fileErr *fileutil.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, fileutil.ErrCauseReadFailure, fileErr.Cause)
	assert.Equal(t, path, fileErr.Path)
}

func TestWriteFileAtomic(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.jsonld")
	require.Nil(t, fileutil.WriteFileAtomic(path, []byte("first")))

	// Act
	err := fileutil.WriteFileAtomic(path, []byte("second"))

	// Assert
	require.Nil(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "second", string(data))

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "graph.jsonld")

	err := fileutil.WriteFileAtomic(path, []byte("x"))

	var fileErr *fileutil.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, fileutil.ErrCauseWriteFailure, fileErr.Cause)
}
