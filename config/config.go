// Package config holds the widget's file-backed settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"ganttgrid/timegrid"
)

// Config is the TOML-backed widget configuration. Zoom limits are expressed
// as scale names; MaxScale is the coarsest scale the user may zoom out to and
// MinScale the finest they may zoom in to.
type Config struct {
	Scale        string `toml:"scale"`
	MinScale     string `toml:"min_scale"`
	MaxScale     string `toml:"max_scale"`
	CellSize     int    `toml:"cell_size"`
	ItemsPerPage int    `toml:"items_per_page"`
	HolidaysFile string `toml:"holidays_file"`
	PrefsFile    string `toml:"prefs_file"`
	ScrollToNow  bool   `toml:"scroll_to_now"`
	RememberZoom bool   `toml:"remember_zoom"`
	RememberRows bool   `toml:"remember_row_order"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Scale:        string(timegrid.ScaleDays),
		MinScale:     string(timegrid.ScaleEveryHour),
		MaxScale:     string(timegrid.ScaleMonths),
		CellSize:     4,
		ItemsPerPage: 10,
		PrefsFile:    "ganttgrid_prefs.json",
		ScrollToNow:  true,
		RememberZoom: true,
		RememberRows: true,
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error, the defaults simply apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, s := range []string{c.Scale, c.MinScale, c.MaxScale} {
		if _, err := timegrid.ParseScale(s); err != nil {
			return err
		}
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("items_per_page must be positive, got %d", c.ItemsPerPage)
	}
	return nil
}

// Scales resolves the configured scale names.
func (c Config) Scales() (scale, min, max timegrid.Scale, err error) {
	if scale, err = timegrid.ParseScale(c.Scale); err != nil {
		return
	}
	if min, err = timegrid.ParseScale(c.MinScale); err != nil {
		return
	}
	max, err = timegrid.ParseScale(c.MaxScale)
	return
}
