package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ganttgrid/config"
	"ganttgrid/holiday"
	"ganttgrid/logging"
	"ganttgrid/source"
)

var (
	logFile  = flag.String("debug", "", "Write Debug Logs to file")
	confPath = flag.String("config", "", "Path to config file (TOML)")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("ganttgrid: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: ganttgrid [--debug debug.log] [--config ganttgrid.toml] <feed.json|feed.yaml>")
		os.Exit(1)
	}
	sourcePath := args[0]

	cfg, err := config.Load(*confPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	src, err := source.Load(sourcePath)
	if err != nil {
		log.Fatalf("failed to load %q: %v", sourcePath, err)
	}
	if res := source.Validate(src); !res.OK() {
		fmt.Fprintf(os.Stderr, "%s is not a usable feed:\n", sourcePath)
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	holidays, err := holiday.LoadFile(cfg.HolidaysFile)
	if err != nil {
		log.Fatalf("failed to load holidays from %q: %v", cfg.HolidaysFile, err)
	}

	prefs := LoadPrefs(cfg.PrefsFile)

	m, err := newModel(cfg, sourcePath, src, holidays, prefs)
	if err != nil {
		log.Fatalf("failed to build model: %v", err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
