package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type sourceChangedMsg struct{}

type watchFailedMsg struct{ err error }

// watchSource blocks until the source file changes on disk, then delivers one
// sourceChangedMsg. The model re-issues the command after handling it, so
// edits keep being picked up. Watching the directory instead of the file
// survives the write-temp-then-rename dance editors do.
func watchSource(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return watchFailedMsg{err: err}
		}
		defer w.Close()

		if err := w.Add(filepath.Dir(path)); err != nil {
			return watchFailedMsg{err: err}
		}

		target := filepath.Clean(path)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return watchFailedMsg{err: fsnotify.ErrEventOverflow}
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return sourceChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return watchFailedMsg{err: fsnotify.ErrEventOverflow}
				}
				return watchFailedMsg{err: err}
			}
		}
	}
}
