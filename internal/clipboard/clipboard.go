// Package clipboard copies picked words to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

type lookPathFunc func(string) (string, error)

// command picks the clipboard tool for goos, or nil when none is found.
func command(goos string, lookPath lookPathFunc) []string {
	switch goos {
	case "darwin":
		if _, err := lookPath("pbcopy"); err == nil {
			return []string{"pbcopy"}
		}
	case "windows":
		return []string{"cmd", "/c", "clip"}
	default:
		if _, err := lookPath("wl-copy"); err == nil {
			return []string{"wl-copy"}
		}
		if _, err := lookPath("xclip"); err == nil {
			return []string{"xclip", "-selection", "clipboard"}
		}
		if _, err := lookPath("xsel"); err == nil {
			return []string{"xsel", "--clipboard", "--input"}
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	args := command(runtime.GOOS, exec.LookPath)
	if args == nil {
		return ErrUnavailable
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}

// Available reports whether Write can succeed on this system.
func Available() bool {
	return command(runtime.GOOS, exec.LookPath) != nil
}
