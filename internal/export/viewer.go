package export

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer opens a report artifact in a desktop application
type Viewer interface {
	Open(path string) error
}

// OSViewer launches the platform's default opener for the file
type OSViewer struct{}

// Open hands the path to the desktop environment. The viewer process
// is started, not waited on.
func (OSViewer) Open(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	case "linux":
		return exec.Command("xdg-open", path).Start()
	default:
		return fmt.Errorf("no viewer available on %s", runtime.GOOS)
	}
}

// NopViewer ignores open requests, for headless environments
type NopViewer struct{}

// Open does nothing
func (NopViewer) Open(string) error { return nil }
