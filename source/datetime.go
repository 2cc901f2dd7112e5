package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DateTime accepts the date spellings found in the wild in chart feeds:
// RFC 3339, a handful of common date layouts, epoch milliseconds and the
// legacy "/Date(ms)/" wrapper.
type DateTime struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

var legacyMillis = regexp.MustCompile(`^/Date\((-?\d+)\)/$`)

func parseDateString(s string) (time.Time, error) {
	if m := legacyMillis.FindStringSubmatch(s); m != nil {
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := stdUnquote(b, &s); err != nil {
			return err
		}
		t, err := parseDateString(s)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("unrecognized date %s", b)
	}
	d.Time = time.UnixMilli(ms)
	return nil
}

func stdUnquote(b []byte, s *string) error {
	u, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("malformed date string %s", b)
	}
	*s = u
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.RFC3339))), nil
}

func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	// YAML resolves bare ISO dates to timestamps on its own.
	var t time.Time
	if err := node.Decode(&t); err == nil {
		d.Time = t
		return nil
	}
	var ms int64
	if err := node.Decode(&ms); err == nil {
		d.Time = time.UnixMilli(ms)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("unrecognized date node at line %d", node.Line)
	}
	t, err := parseDateString(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.Format(time.RFC3339), nil
}
