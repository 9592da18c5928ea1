// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the default browser for url and returns without
// waiting for it.
func Open(url string) error {
	return launch(command(url), url)
}

func command(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

func launch(cmd *exec.Cmd, url string) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	// Reap the handler in the background so the started process never
	// lingers as a zombie; the run does not wait on the browser.
	go func() { _ = cmd.Wait() }()
	return nil
}
