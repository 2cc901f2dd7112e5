package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ganttgrid/timegrid"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	p := LoadPrefs(path)
	p.SetZoomScale(timegrid.ScaleWeeks)
	p.SetRowOrder(2, []int64{9, 3, 7})

	q := LoadPrefs(path)
	s, ok := q.ZoomScale()
	require.True(t, ok)
	require.Equal(t, timegrid.ScaleWeeks, s)
	require.Equal(t, []int64{9, 3, 7}, q.RowOrder(2))
	require.Nil(t, q.RowOrder(1))
}

func TestPrefsMissingFile(t *testing.T) {
	p := LoadPrefs(filepath.Join(t.TempDir(), "nope.json"))
	_, ok := p.ZoomScale()
	require.False(t, ok)
}

func TestPrefsCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	p := LoadPrefs(path)
	_, ok := p.ZoomScale()
	require.False(t, ok)

	// The store still works after a bad read.
	p.SetZoomScale(timegrid.ScaleDays)
	s, ok := LoadPrefs(path).ZoomScale()
	require.True(t, ok)
	require.Equal(t, timegrid.ScaleDays, s)
}

func TestPrefsUnsupportedVersionIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"values":{"zoom.scale":"weeks"}}`), 0o600))

	_, ok := LoadPrefs(path).ZoomScale()
	require.False(t, ok)
}

func TestPrefsBadStoredZoomIgnored(t *testing.T) {
	p := LoadPrefs("")
	p.Set("zoom.scale", "fortnights")
	_, ok := p.ZoomScale()
	require.False(t, ok)
}
