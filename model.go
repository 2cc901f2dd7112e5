package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ganttgrid/clipboard"
	"ganttgrid/config"
	"ganttgrid/dialogs"
	"ganttgrid/source"
	"ganttgrid/timegrid"
)

// leftPanelWidth is the fixed width of the row-name column.
const leftPanelWidth = 24

type model struct {
	cfg        config.Config
	keys       Keymap
	sourcePath string
	pager      source.Pager
	prefs      *Prefs
	help       *dialogs.Help

	scale    timegrid.Scale
	minScale timegrid.Scale
	maxScale timegrid.Scale

	// now is swappable for tests.
	now func() time.Time

	data dataState
	ui   uiState
}

func newModel(cfg config.Config, sourcePath string, src *source.Source, holidays []time.Time, prefs *Prefs) (*model, error) {
	scale, min, max, err := cfg.Scales()
	if err != nil {
		return nil, err
	}

	m := &model{
		cfg:        cfg,
		keys:       Keys,
		sourcePath: sourcePath,
		prefs:      prefs,
		scale:      scale,
		minScale:   min,
		maxScale:   max,
		now:        time.Now,
	}
	m.data.holidays = holidays
	m.data.page = src.CurrentPage
	m.pager = newPagerFor(src, cfg)

	if cfg.RememberZoom {
		if saved, ok := prefs.ZoomScale(); ok {
			m.scale = saved
			log.Printf("restored zoom level: %s", saved)
		}
	}
	return m, nil
}

// newPagerFor pages the feed's rows, preferring the feed's own page size over
// the configured one.
func newPagerFor(src *source.Source, cfg config.Config) source.Pager {
	perPage := src.ItemsPerPage
	if perPage < 1 {
		perPage = cfg.ItemsPerPage
	}
	return source.NewBusyPager(source.NewMemoryPager(src.Data, perPage))
}

func (m *model) Init() tea.Cmd {
	log.Println("ganttgrid: initialised")
	m.ui.busyPage = true
	return tea.Batch(
		fetchPage(m.pager, m.data.page),
		watchSource(m.sourcePath),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.ready = true
		return m, nil

	case pageLoadedMsg:
		m.ui.busyPage = false
		m.applyPage(msg.page)
		return m, nil

	case pageFailedMsg:
		m.ui.busyPage = false
		if errors.Is(msg.err, source.ErrBusy) {
			return m, m.startNotice("a page request is already running", "warn", noticeDuration)
		}
		return m, m.startNotice(msg.err.Error(), "error", noticeDuration)

	case sourceChangedMsg:
		log.Printf("source file changed: %s", m.sourcePath)
		return m, tea.Batch(m.reloadSource(), watchSource(m.sourcePath))

	case watchFailedMsg:
		log.Printf("source watch stopped: %v", msg.err)
		return m, m.startNotice("file watching stopped", "warn", noticeDuration)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	}

	return m, nil
}

// applyPage installs a freshly fetched page and rebuilds the grid around it.
func (m *model) applyPage(page source.Page) {
	m.data.rows = append([]source.Row(nil), page.Rows...)
	m.data.page = page.Number
	m.data.pageCount = page.PageCount
	m.data.itemsPerPage = page.ItemsPerPage
	m.data.totalItems = page.TotalItems
	m.data.captureOriginals()

	if m.cfg.RememberRows {
		m.data.applyRowOrder(m.prefs.RowOrder(page.Number))
	}

	m.ui.cursor = 0
	m.ui.barCursor = 0
	m.rebuild()

	if m.cfg.ScrollToNow {
		if !m.scrollToNow() {
			m.ui.scrollPct = 0
		}
	} else {
		m.ui.scrollPct = 0
	}
}

// rebuild recomputes the window, grid and header bands from the current rows
// at the current scale. Every data or zoom change funnels through here.
func (m *model) rebuild() {
	ivs := source.Intervals(m.data.rows)
	m.data.window = timegrid.ComputeView(ivs, m.scale, m.cfg.CellSize, m.now())
	m.data.grid = m.data.window.Grid()
	m.data.bands = timegrid.GenerateBands(
		m.data.grid.Buckets, m.scale, m.cfg.CellSize, m.data.holidays, m.now())
	m.ui.scrollPct = timegrid.ClampPercent(m.ui.scrollPct)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ui.showHelp && m.help != nil {
		d, cmd := m.help.Update(msg)
		if h, ok := d.(*dialogs.Help); ok {
			m.help = h
		}
		if !m.help.IsVisible() {
			m.ui.showHelp = false
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.RowDown):
		if m.ui.cursor < len(m.data.rows)-1 {
			m.ui.cursor++
			m.ui.barCursor = 0
		}

	case key.Matches(msg, m.keys.RowUp):
		if m.ui.cursor > 0 {
			m.ui.cursor--
			m.ui.barCursor = 0
		}

	case key.Matches(msg, m.keys.MoveRowDown):
		return m, m.moveRow(1)

	case key.Matches(msg, m.keys.MoveRowUp):
		return m, m.moveRow(-1)

	case key.Matches(msg, m.keys.NextBar):
		if row := m.selectedRow(); row != nil && len(row.Values) > 0 {
			m.ui.barCursor = (m.ui.barCursor + 1) % len(row.Values)
		}

	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollByPx(timegrid.NavStep(timegrid.NavPrevDay, m.scale, m.cfg.CellSize))

	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollByPx(timegrid.NavStep(timegrid.NavNextDay, m.scale, m.cfg.CellSize))

	case key.Matches(msg, m.keys.JumpLeft):
		m.scrollByPx(timegrid.NavStep(timegrid.NavPrevWeek, m.scale, m.cfg.CellSize))

	case key.Matches(msg, m.keys.JumpRight):
		m.scrollByPx(timegrid.NavStep(timegrid.NavNextWeek, m.scale, m.cfg.CellSize))

	case key.Matches(msg, m.keys.Begin):
		m.ui.scrollPct = 0

	case key.Matches(msg, m.keys.End):
		m.ui.scrollPct = 100

	case key.Matches(msg, m.keys.Now):
		if !m.scrollToNow() {
			return m, m.startNotice("today is outside the chart", "info", noticeDuration)
		}

	case key.Matches(msg, m.keys.ZoomIn):
		return m, m.zoom(true)

	case key.Matches(msg, m.keys.ZoomOut):
		return m, m.zoom(false)

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.navigatePage(-1)

	case key.Matches(msg, m.keys.NextPage):
		return m, m.navigatePage(1)

	case key.Matches(msg, m.keys.GrowBar):
		return m, m.editBar(m.cfg.CellSize, false)

	case key.Matches(msg, m.keys.ShrinkBar):
		return m, m.editBar(-m.cfg.CellSize, false)

	case key.Matches(msg, m.keys.BarEarlier):
		return m, m.editBar(-m.cfg.CellSize, true)

	case key.Matches(msg, m.keys.BarLater):
		return m, m.editBar(m.cfg.CellSize, true)

	case key.Matches(msg, m.keys.CopyBar):
		return m, m.copySelection()

	case key.Matches(msg, m.keys.OpenHelp):
		m.help = dialogs.NewHelpDialog(m.keys.Legend())
		m.ui.showHelp = true
	}

	return m, nil
}

func (m *model) selectedRow() *source.Row {
	if m.ui.cursor < 0 || m.ui.cursor >= len(m.data.rows) {
		return nil
	}
	return &m.data.rows[m.ui.cursor]
}

func (m *model) selectedBar() (*source.Row, *source.Value) {
	row := m.selectedRow()
	if row == nil || m.ui.barCursor < 0 || m.ui.barCursor >= len(row.Values) {
		return row, nil
	}
	return row, &row.Values[m.ui.barCursor]
}

// moveRow swaps the selected row with its neighbour and persists the page's
// new order.
func (m *model) moveRow(delta int) tea.Cmd {
	i := m.ui.cursor
	j := i + delta
	if i < 0 || i >= len(m.data.rows) || j < 0 || j >= len(m.data.rows) {
		return nil
	}
	m.data.rows[i], m.data.rows[j] = m.data.rows[j], m.data.rows[i]
	m.ui.cursor = j
	if m.cfg.RememberRows {
		m.prefs.SetRowOrder(m.data.page, m.data.rowIDs())
	}
	return nil
}

func (m *model) zoom(in bool) tea.Cmd {
	next, ok := timegrid.ZoomTo(m.scale, in, m.minScale, m.maxScale)
	if !ok {
		log.Printf("zoom request past %s ignored", m.scale)
		return m.startNotice("at zoom limit", "info", noticeDuration)
	}
	m.scale = next
	m.rebuild()
	if m.cfg.RememberZoom {
		m.prefs.SetZoomScale(next)
	}
	return m.startNotice(fmt.Sprintf("scale: %s", next), "info", noticeDuration)
}

func (m *model) navigatePage(delta int) tea.Cmd {
	next := m.data.page + delta
	if next < 1 {
		next = 1
	}
	if m.data.pageCount > 0 && next > m.data.pageCount {
		next = m.data.pageCount
	}
	if next == m.data.page {
		log.Println("no more pages to navigate to")
		return m.startNotice("no more pages", "info", noticeDuration)
	}
	if m.ui.busyPage {
		return m.startNotice("a page request is already running", "warn", noticeDuration)
	}
	m.ui.busyPage = true
	return fetchPage(m.pager, next)
}

// editBar commits a one-cell keyboard gesture on the selected bar: a resize
// of its end, or a shift of the whole bar.
func (m *model) editBar(deltaPx int, move bool) tea.Cmd {
	row, val := m.selectedBar()
	if row == nil || val == nil {
		return m.startNotice("no bar selected", "info", noticeDuration)
	}
	iv := val.Interval()
	var out timegrid.Interval
	if move {
		out = timegrid.ReconcileMove(iv, deltaPx, m.scale, m.cfg.CellSize)
	} else {
		out = timegrid.ReconcileResize(iv, deltaPx, m.scale, m.cfg.CellSize)
		if iv.To == nil {
			return m.startNotice("bar has no end date to resize", "warn", noticeDuration)
		}
	}
	val.SetInterval(out)
	m.rebuild()

	if orig, ok := m.data.original(row.ID, m.ui.barCursor); ok && orig.To != nil && out.To != nil {
		return m.startNotice(
			fmt.Sprintf("%s: %s", barTitle(*row, m.ui.barCursor), timegrid.ScaledDelta(*orig.To, *out.To, m.scale)),
			"success", noticeDuration)
	}
	return nil
}

func (m *model) copySelection() tea.Cmd {
	summary := m.selectionSummary()
	if summary == "" {
		return m.startNotice("nothing selected", "info", noticeDuration)
	}
	if err := clipboard.Copy(summary); err != nil {
		log.Printf("clipboard copy failed: %v", err)
		return m.startNotice("copy failed", "error", noticeDuration)
	}
	return m.startNotice("copied bar details", "success", noticeDuration)
}

// selectionSummary describes the selected bar for the footer and clipboard:
// dates, working days and the drift from the pre-session value.
func (m *model) selectionSummary() string {
	row, val := m.selectedBar()
	if row == nil {
		return ""
	}
	if val == nil {
		return row.Name
	}
	iv := val.Interval()
	s := fmt.Sprintf("%s · %s", row.Name, barTitle(*row, m.ui.barCursor))
	if iv.From != nil && iv.To != nil {
		s += fmt.Sprintf(" %s → %s", iv.From.Format("2006-01-02"), iv.To.Format("2006-01-02"))
		if n, err := timegrid.CountWorkDays(*iv.From, *iv.To, m.data.holidays); err == nil {
			s += fmt.Sprintf(" · %d work days", n)
		}
	}
	if m.data.barModified(row.ID, m.ui.barCursor, iv) {
		if orig, ok := m.data.original(row.ID, m.ui.barCursor); ok && orig.To != nil && iv.To != nil {
			s += fmt.Sprintf(" · Δ %s", timegrid.ScaledDelta(*orig.To, *iv.To, m.scale))
		} else {
			s += " · modified"
		}
	}
	return s
}

func barTitle(row source.Row, bar int) string {
	if bar >= 0 && bar < len(row.Values) && row.Values[bar].Label != "" {
		return row.Values[bar].Label
	}
	return fmt.Sprintf("bar %d", bar+1)
}

// reloadSource re-reads the feed after a file change. An invalid feed keeps
// the current data on screen; it must never render.
func (m *model) reloadSource() tea.Cmd {
	src, err := source.Load(m.sourcePath)
	if err != nil {
		log.Printf("reload failed: %v", err)
		return m.startNotice("source reload failed", "error", noticeDuration)
	}
	res := source.Validate(src)
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("source invalid: %s", e)
		}
		return m.startNotice(
			fmt.Sprintf("source invalid (%d problems), keeping current data", len(res.Errors)),
			"error", noticeDuration)
	}

	m.pager = newPagerFor(src, m.cfg)
	page := m.data.page
	if page < 1 {
		page = 1
	}
	if src.PageCount > 0 && page > src.PageCount {
		page = src.PageCount
	}
	m.ui.busyPage = true
	return tea.Batch(
		fetchPage(m.pager, page),
		m.startNotice("source reloaded", "success", noticeDuration),
	)
}

// --- scrolling ---

func (m *model) rightPanelWidth() int {
	w := m.ui.width - leftPanelWidth - 8 // margins and border chrome
	if w < 1 {
		w = 1
	}
	return w
}

func (m *model) maxScroll() int {
	if m.data.grid == nil {
		return 0
	}
	return timegrid.MaxScrollRange(m.rightPanelWidth(), m.data.grid.Width())
}

func (m *model) scrollByPx(delta int) {
	m.ui.scrollPct = timegrid.ScrollBy(m.maxScroll(), m.ui.scrollPct, delta)
}

// scrollToNow aligns the current time's column with the viewport edge. False
// when today has no column or the grid fits without scrolling.
func (m *model) scrollToNow() bool {
	if m.data.grid == nil {
		return false
	}
	off, ok := m.data.grid.OffsetForTime(m.now())
	if !ok {
		return false
	}
	pct, ok := timegrid.PercentForOffset(off, m.maxScroll())
	if !ok {
		return false
	}
	m.ui.scrollPct = pct
	return true
}
