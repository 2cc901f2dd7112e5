package source

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrBusy signals that a page fetch is already in flight. The widget runs a
// single fetch at a time and drops requests made while one is pending.
var ErrBusy = errors.New("page request already in flight")

// Page is one slice of the full dataset together with its paging position.
type Page struct {
	Rows         []Row
	Number       int
	PageCount    int
	ItemsPerPage int
	TotalItems   int
}

// Pager serves pages of rows. Implementations may be slow; callers run
// GetPage off the UI loop and feed the result back as a message.
type Pager interface {
	GetPage(ctx context.Context, page int) (Page, error)
}

// MemoryPager pages a fully loaded dataset.
type MemoryPager struct {
	rows    []Row
	perPage int
}

func NewMemoryPager(rows []Row, perPage int) *MemoryPager {
	if perPage < 1 {
		perPage = 1
	}
	return &MemoryPager{rows: rows, perPage: perPage}
}

// PageCount is at least one, even for an empty dataset.
func (p *MemoryPager) PageCount() int {
	n := (len(p.rows) + p.perPage - 1) / p.perPage
	if n < 1 {
		n = 1
	}
	return n
}

func (p *MemoryPager) GetPage(ctx context.Context, page int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if page < 1 || page > p.PageCount() {
		return Page{}, fmt.Errorf("page %d out of range 1..%d", page, p.PageCount())
	}
	lo := (page - 1) * p.perPage
	hi := lo + p.perPage
	if hi > len(p.rows) {
		hi = len(p.rows)
	}
	return Page{
		Rows:         p.rows[lo:hi],
		Number:       page,
		PageCount:    p.PageCount(),
		ItemsPerPage: p.perPage,
		TotalItems:   len(p.rows),
	}, nil
}

// BusyPager wraps another pager and rejects overlapping fetches with ErrBusy.
type BusyPager struct {
	inner Pager
	busy  atomic.Bool
}

func NewBusyPager(inner Pager) *BusyPager { return &BusyPager{inner: inner} }

func (b *BusyPager) GetPage(ctx context.Context, page int) (Page, error) {
	if !b.busy.CompareAndSwap(false, true) {
		return Page{}, ErrBusy
	}
	defer b.busy.Store(false)
	return b.inner.GetPage(ctx, page)
}
