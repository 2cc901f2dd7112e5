// Package source loads, validates and pages the row data a chart renders.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ganttgrid/timegrid"
)

// Value is one dated bar on a row. From and To may each be absent; a bar with
// neither never renders.
type Value struct {
	From        *DateTime `json:"from,omitempty" yaml:"from,omitempty"`
	To          *DateTime `json:"to,omitempty" yaml:"to,omitempty"`
	Label       string    `json:"label" yaml:"label"`
	Desc        string    `json:"desc,omitempty" yaml:"desc,omitempty"`
	CustomClass string    `json:"customClass,omitempty" yaml:"customClass,omitempty"`
}

// Row is one chart line with its bars.
type Row struct {
	ID     int64   `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Desc   string  `json:"desc,omitempty" yaml:"desc,omitempty"`
	Values []Value `json:"values" yaml:"values"`
}

// Source is the wire shape of a data feed: one page of rows plus the paging
// bookkeeping around it.
type Source struct {
	Data         []Row `json:"data" yaml:"data"`
	CurrentPage  int   `json:"currentPage" yaml:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage" yaml:"itemsPerPage"`
	PageCount    int   `json:"pageCount" yaml:"pageCount"`
	TotalItems   int   `json:"totalItems,omitempty" yaml:"totalItems,omitempty"`
}

// Load reads a source feed from a JSON or YAML file, picked by extension.
func Load(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	var src Source
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &src)
	default:
		err = json.Unmarshal(raw, &src)
	}
	if err != nil {
		return nil, fmt.Errorf("parse source %s: %w", filepath.Base(path), err)
	}
	return &src, nil
}

// Interval converts a wire value into its chart form.
func (v Value) Interval() timegrid.Interval {
	iv := timegrid.Interval{
		Label:    v.Label,
		Desc:     v.Desc,
		StyleTag: v.CustomClass,
	}
	if v.From != nil {
		t := v.From.Time
		iv.From = &t
	}
	if v.To != nil {
		t := v.To.Time
		iv.To = &t
	}
	return iv
}

// SetInterval writes an edited interval back into the wire value.
func (v *Value) SetInterval(iv timegrid.Interval) {
	if iv.From == nil {
		v.From = nil
	} else {
		v.From = &DateTime{Time: *iv.From}
	}
	if iv.To == nil {
		v.To = nil
	} else {
		v.To = &DateTime{Time: *iv.To}
	}
}

// Intervals flattens every bar of every row, which is what the view window
// computation wants.
func Intervals(rows []Row) []timegrid.Interval {
	var out []timegrid.Interval
	for _, r := range rows {
		for _, v := range r.Values {
			out = append(out, v.Interval())
		}
	}
	return out
}

// truncateToHour drops minutes and below, matching the grid's coarsest
// sub-day column resolution.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
