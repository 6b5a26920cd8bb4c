package report

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open launches the default browser on the generated report.
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", abs).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", abs).Start()
	case "linux":
		return exec.Command("xdg-open", abs).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
