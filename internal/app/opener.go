package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/shlex"
)

// BrowserOpener opens URLs with an external command. The URL is appended as
// the last argument.
type BrowserOpener struct {
	// Command is the preferred command line; $BROWSER and the platform
	// default are tried when it is empty.
	Command string

	// run starts the process; replaced in tests.
	run func(name string, args ...string) error
}

// NewBrowserOpener returns an opener that prefers command.
func NewBrowserOpener(command string) *BrowserOpener {
	return &BrowserOpener{Command: command, run: startDetached}
}

// Open launches the browser command for url without waiting for it to exit.
func (o *BrowserOpener) Open(url string) error {
	parts, err := o.commandLine()
	if err != nil {
		return err
	}
	run := o.run
	if run == nil {
		run = startDetached
	}
	return run(parts[0], append(parts[1:], url)...)
}

func (o *BrowserOpener) commandLine() ([]string, error) {
	browser := strings.TrimSpace(o.Command)
	if browser == "" {
		browser = strings.TrimSpace(os.Getenv(EnvBrowser))
	}
	if browser == "" {
		browser = platformOpener()
	}
	if browser == "" {
		return nil, fmt.Errorf("no browser found (set browser in config or $BROWSER)")
	}
	parts, err := shlex.Split(browser)
	if err != nil || len(parts) == 0 {
		return nil, fmt.Errorf("invalid browser command %q", browser)
	}
	return parts, nil
}

func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	}
	for _, c := range []string{"xdg-open", "sensible-browser"} {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
