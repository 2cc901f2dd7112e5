// Package holiday reads non-working-day lists for the chart grid.
package holiday

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

var layouts = []string{"2006-01-02", "2006/01/02", time.RFC3339}

// ParseDates reads one holiday per line from CSV-style content: the first
// comma-separated field is the date, anything after it is free-form and
// ignored. Blank lines and lines starting with # are skipped.
func ParseDates(r io.Reader) ([]time.Time, error) {
	var out []time.Time
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		field, _, _ := strings.Cut(text, ",")
		field = strings.TrimSpace(field)
		t, err := parseDate(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile is ParseDates over a file path. A missing file yields an empty
// list, so an unset holidays setting just means no holidays.
func LoadFile(path string) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	dates, err := ParseDates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dates, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized holiday date %q", s)
}
