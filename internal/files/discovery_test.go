package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.CSV", "notes.txt", "c.csv.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	// Subdirectories are never descended into.
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "d.csv"), []byte("x"), 0644))

	found, err := NewDiscovery("").FindCSVFiles(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(found))
	for _, f := range found {
		names = append(names, f.Name)
		assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
	}
	assert.ElementsMatch(t, []string{"a.csv", "b.CSV"}, names)
}

func TestFindCSVFiles_MissingDirectory(t *testing.T) {
	_, err := NewDiscovery("").FindCSVFiles(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestFindCSVFiles_RelativeToBasePath(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "data", "m.csv"), []byte("x"), 0644))

	found, err := NewDiscovery(base).FindCSVFiles("data")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "m.csv", found[0].Name)
}
