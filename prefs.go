package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"ganttgrid/timegrid"
)

// --- Wire format ---

const prefsVersion = 1

type prefsDTO struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Prefs is a small file-backed key/value store for UI state that should
// survive restarts: the zoom level and the per-page row order. Writes go to
// disk immediately; losing one on a crash is acceptable.
type Prefs struct {
	path   string
	values map[string]string
}

// LoadPrefs reads the store at path. A missing or unreadable file starts an
// empty store, it never blocks startup.
func LoadPrefs(path string) *Prefs {
	p := &Prefs{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("prefs: read %s: %v", path, err)
		}
		return p
	}
	var dto prefsDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		log.Printf("prefs: parse %s: %v", path, err)
		return p
	}
	if dto.Version != prefsVersion {
		log.Printf("prefs: version %d not supported (want %d), starting fresh", dto.Version, prefsVersion)
		return p
	}
	if dto.Values != nil {
		p.values = dto.Values
	}
	return p
}

func (p *Prefs) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *Prefs) Set(key, value string) {
	p.values[key] = value
	p.save()
}

func (p *Prefs) save() {
	if p.path == "" {
		return
	}
	dto := prefsDTO{Version: prefsVersion, Values: p.values}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		log.Printf("prefs: marshal: %v", err)
		return
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		log.Printf("prefs: write %s: %v", p.path, err)
	}
}

// --- Typed accessors ---

const (
	prefZoomKey     = "zoom.scale"
	prefRowOrderFmt = "roworder.page%d"
)

func (p *Prefs) ZoomScale() (timegrid.Scale, bool) {
	v, ok := p.Get(prefZoomKey)
	if !ok {
		return "", false
	}
	s, err := timegrid.ParseScale(v)
	if err != nil {
		log.Printf("prefs: stored zoom %q invalid, ignoring", v)
		return "", false
	}
	return s, true
}

func (p *Prefs) SetZoomScale(s timegrid.Scale) {
	p.Set(prefZoomKey, string(s))
}

// RowOrder is the saved row id order for a page, oldest preference first.
func (p *Prefs) RowOrder(page int) []int64 {
	v, ok := p.Get(fmt.Sprintf(prefRowOrderFmt, page))
	if !ok || v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("prefs: bad row id %q in saved order for page %d", part, page)
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func (p *Prefs) SetRowOrder(page int, ids []int64) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	p.Set(fmt.Sprintf(prefRowOrderFmt, page), strings.Join(parts, ","))
}
