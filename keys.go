package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	MoveRowDown  key.Binding
	MoveRowUp    key.Binding
	NextBar      key.Binding
	ScrollLeft   key.Binding
	ScrollRight  key.Binding
	JumpLeft     key.Binding
	JumpRight    key.Binding
	Begin        key.Binding
	End          key.Binding
	Now          key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	GrowBar      key.Binding
	ShrinkBar    key.Binding
	BarEarlier   key.Binding
	BarLater     key.Binding
	CopyBar      key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+q"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next row"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous row"),
	),
	MoveRowDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "move row down"),
	),
	MoveRowUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "move row up"),
	),
	NextBar: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next bar on row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
	JumpLeft: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H", "jump left"),
	),
	JumpRight: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L", "jump right"),
	),
	Begin: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to start"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to end"),
	),
	Now: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "go to today"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next page"),
	),
	GrowBar: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "grow bar one cell"),
	),
	ShrinkBar: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "shrink bar one cell"),
	),
	BarEarlier: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move bar earlier"),
	),
	BarLater: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "move bar later"),
	),
	CopyBar: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy bar details"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.MoveRowDown,
		k.MoveRowUp,
		k.NextBar,
		k.ScrollLeft,
		k.ScrollRight,
		k.Begin,
		k.End,
		k.Now,
		k.ZoomIn,
		k.ZoomOut,
		k.PrevPage,
		k.NextPage,
		k.GrowBar,
		k.ShrinkBar,
		k.BarEarlier,
		k.BarLater,
		k.CopyBar,
	}
}
