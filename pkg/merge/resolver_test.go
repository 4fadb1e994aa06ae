package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestDiscover_GroupsByBaseName(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		"welcome.txt":  "hi",
		"welcome.html": "<p>hi</p>",
		"renewal.txt":  "renew",
		".hidden.txt":  "nope",
	})

	set, err := Discover(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"renewal", "welcome"}, set.Keys())

	vs, err := set.Variants("welcome")
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "txt", vs[0].Ext)
	assert.Equal(t, "html", vs[1].Ext)
}

func TestDiscover_PlainBeforeHTML(t *testing.T) {
	// Alphabetically .html sorts before .txt; the variant order must
	// still put the plain part first.
	dir := writeTemplates(t, map[string]string{
		"offer.html": "<p>x</p>",
		"offer.htm":  "<p>x</p>",
		"offer.txt":  "x",
		"offer.md":   "x",
	})

	set, err := Discover(dir)
	require.NoError(t, err)

	vs, err := set.Variants("offer")
	require.NoError(t, err)
	require.Len(t, vs, 4)
	assert.Equal(t, "md", vs[0].Ext)
	assert.Equal(t, "txt", vs[1].Ext)
	assert.True(t, vs[2].HTML())
	assert.True(t, vs[3].HTML())
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSet_Variants_NotFound(t *testing.T) {
	set := Set{}
	_, err := set.Variants("welcome")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
