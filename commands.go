package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"ganttgrid/source"
)

type pageLoadedMsg struct{ page source.Page }

type pageFailedMsg struct{ err error }

// fetchPage runs the page request off the update loop and feeds the outcome
// back as a message.
func fetchPage(p source.Pager, page int) tea.Cmd {
	return func() tea.Msg {
		pg, err := p.GetPage(context.Background(), page)
		if err != nil {
			log.Printf("page %d fetch failed: %v", page, err)
			return pageFailedMsg{err: err}
		}
		return pageLoadedMsg{page: pg}
	}
}
