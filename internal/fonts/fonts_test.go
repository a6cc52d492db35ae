package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/fonts"
)

func touch(t *testing.T, dir, rel string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, nil, 0644))
	return p
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Inter/Inter-Bold.ttf")
	touch(t, dir, "Mono.OTF")
	touch(t, dir, "readme.txt")

	list, err := fonts.ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Mono.OTF"}, list)

	list, err = fonts.ScanDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"Inter/Inter-Regular.ttf", "Inter", "Inter/Inter", "Inter/Inter-Regular"}, fonts.Candidates("Inter/Inter-Regular.ttf"))
	assert.Equal(t, []string{"Lato"}, fonts.Candidates("Lato"))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Inter/Inter-Bold.ttf")
	regular := touch(t, dir, "Inter/Inter-Regular.ttf")
	lato := touch(t, dir, "Lato_Light.ttf")

	got, err := fonts.Find("inter", dir)
	require.NoError(t, err)
	assert.Equal(t, regular, got)

	got, err = fonts.Find("Lato Light", dir)
	require.NoError(t, err)
	assert.Equal(t, lato, got)

	got, err = fonts.Find("Inter/Inter-Black.ttf", dir)
	require.NoError(t, err, "falls back to the family name")
	assert.Equal(t, regular, got)

	_, err = fonts.Find("Comic", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
