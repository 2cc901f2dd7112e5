package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "currentPage": 1,
  "itemsPerPage": 2,
  "pageCount": 1,
  "data": [
    {
      "id": 1,
      "name": "deploy",
      "values": [
        {"from": "2024-03-04", "to": "2024-03-08 16:30", "label": "rollout"}
      ]
    },
    {
      "id": 2,
      "name": "review",
      "values": [
        {"from": 1709510400000, "to": "/Date(1709856000000)/"}
      ]
    }
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	src, err := Load(writeTemp(t, "feed.json", sampleJSON))
	require.NoError(t, err)
	require.Len(t, src.Data, 2)

	assert.Equal(t, "deploy", src.Data[0].Name)
	v := src.Data[0].Values[0]
	require.NotNil(t, v.From)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), v.From.Time)
	require.NotNil(t, v.To)
	assert.Equal(t, 30, v.To.Minute(), "minutes survive until validation")

	// Epoch millis and the legacy wrapper both parse.
	v = src.Data[1].Values[0]
	require.NotNil(t, v.From)
	require.NotNil(t, v.To)
	assert.True(t, v.To.After(v.From.Time))
}

func TestLoadYAML(t *testing.T) {
	const feed = `
currentPage: 1
itemsPerPage: 10
pageCount: 1
data:
  - id: 7
    name: migration
    values:
      - from: "2024-05-01"
        to: "2024-05-10"
        label: schema
`
	src, err := Load(writeTemp(t, "feed.yaml", feed))
	require.NoError(t, err)
	require.Len(t, src.Data, 1)
	assert.Equal(t, int64(7), src.Data[0].ID)
	assert.Equal(t, time.May, src.Data[0].Values[0].From.Month())
}

func TestLoadRejectsBadDates(t *testing.T) {
	_, err := Load(writeTemp(t, "feed.json",
		`{"currentPage":1,"itemsPerPage":1,"pageCount":1,"data":[{"id":1,"name":"x","values":[{"from":"soon"}]}]}`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	src, err := Load(writeTemp(t, "feed.json", sampleJSON))
	require.NoError(t, err)

	res := Validate(src)
	require.True(t, res.OK(), "errors: %v", res.Errors)

	require.NotNil(t, res.MinDate)
	require.NotNil(t, res.MaxDate)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), *res.MinDate)
	assert.True(t, res.MaxDate.After(*res.MinDate))

	// Endpoints are truncated to whole hours in place.
	assert.Equal(t, 0, src.Data[0].Values[0].To.Minute())
}

func TestValidateCollectsErrors(t *testing.T) {
	src := &Source{
		CurrentPage:  3,
		ItemsPerPage: 0,
		PageCount:    2,
		Data: []Row{
			{ID: 0, Name: "", Values: []Value{}},
			{ID: 4, Name: "ok", Values: nil},
		},
	}
	res := Validate(src)
	require.False(t, res.OK())
	assert.Len(t, res.Errors, 5)

	res = Validate(nil)
	require.False(t, res.OK())
}

func TestIntervals(t *testing.T) {
	src, err := Load(writeTemp(t, "feed.json", sampleJSON))
	require.NoError(t, err)

	ivs := Intervals(src.Data)
	require.Len(t, ivs, 2)
	assert.Equal(t, "rollout", ivs[0].Label)
	require.NotNil(t, ivs[0].From)

	// Converted intervals are copies, not aliases into the feed.
	ivs[0].From = nil
	assert.NotNil(t, src.Data[0].Values[0].From)
}

func TestMemoryPager(t *testing.T) {
	rows := []Row{
		{ID: 1, Name: "a", Values: []Value{}},
		{ID: 2, Name: "b", Values: []Value{}},
		{ID: 3, Name: "c", Values: []Value{}},
	}
	p := NewMemoryPager(rows, 2)
	assert.Equal(t, 2, p.PageCount())

	page, err := p.GetPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 3, page.TotalItems)

	page, err = p.GetPage(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, int64(3), page.Rows[0].ID)

	_, err = p.GetPage(context.Background(), 3)
	require.Error(t, err)
	_, err = p.GetPage(context.Background(), 0)
	require.Error(t, err)
}

func TestBusyPagerRejectsOverlap(t *testing.T) {
	started := make(chan struct{}, 1)
	block := make(chan struct{})
	p := NewBusyPager(slowPager{started: started, block: block})

	done := make(chan error, 1)
	go func() {
		_, err := p.GetPage(context.Background(), 1)
		done <- err
	}()

	// Once the inner pager has been entered the background fetch holds the
	// flag, so a second request must bounce without touching the inner pager.
	<-started
	_, err := p.GetPage(context.Background(), 1)
	require.ErrorIs(t, err, ErrBusy)

	close(block)
	require.NoError(t, <-done)

	_, err = p.GetPage(context.Background(), 1)
	require.NoError(t, err, "flag released after the fetch returns")
}

type slowPager struct {
	started chan struct{}
	block   chan struct{}
}

func (s slowPager) GetPage(ctx context.Context, page int) (Page, error) {
	select {
	case s.started <- struct{}{}:
	default:
	}
	<-s.block
	return Page{Number: page}, nil
}
