package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ganttgrid/timegrid"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	scale, min, max, err := cfg.Scales()
	require.NoError(t, err)
	assert.Equal(t, timegrid.ScaleDays, scale)
	assert.Equal(t, timegrid.ScaleEveryHour, min)
	assert.Equal(t, timegrid.ScaleMonths, max)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
scale = "weeks"
cell_size = 6
items_per_page = 25
holidays_file = "holidays.csv"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "weeks", cfg.Scale)
	assert.Equal(t, 6, cfg.CellSize)
	assert.Equal(t, 25, cfg.ItemsPerPage)
	assert.Equal(t, "holidays.csv", cfg.HolidaysFile)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.RememberZoom)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`scale = "decades"`), 0o644))
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`cell_size = 0`), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
