//go:build linux
// +build linux

package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Copy copies text to the Wayland clipboard using wl-copy, falling back to an
// OSC52 escape when no Wayland session is around (ssh, bare console).
// This intentionally does NOT support X11.
func Copy(text string) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" && os.Getenv("XDG_SESSION_TYPE") != "wayland" {
		return copyOSC52(text)
	}

	if _, err := exec.LookPath("wl-copy"); err != nil {
		return errors.New("wl-copy not found in PATH (install wl-clipboard)")
	}

	cmd := exec.Command("wl-copy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
