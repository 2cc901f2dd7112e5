package main

type uiState struct {
	width  int
	height int
	ready  bool

	cursor    int // selected row on the page
	barCursor int // selected bar within the row

	scrollPct float64
	busyPage  bool
	showHelp  bool

	noticeMsg  string
	noticeType string
	noticeSeq  int
}
