package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"
)

// ErrNoBrowser is returned when every method in the cascade failed.
var ErrNoBrowser = errors.New("could not open a browser")

// Browser opens URLs by trying a list of commands in order.
type Browser struct {
	// Commands are argv prefixes; the URL is appended to each.
	Commands [][]string
	Run      func(ctx context.Context, name string, args ...string) error
	Log      *slog.Logger
}

// NewBrowser returns the cascade for the current platform.
func NewBrowser(log *slog.Logger) *Browser {
	if log == nil {
		log = slog.Default()
	}
	return &Browser{Commands: commandsFor(runtime.GOOS), Run: runCommand, Log: log}
}

func commandsFor(goos string) [][]string {
	switch goos {
	case "windows":
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler"},
			{"cmd", "/c", "start", ""},
			{"explorer"},
		}
	case "darwin":
		return [][]string{{"open"}}
	default:
		return [][]string{
			{"xdg-open"},
			{"sensible-browser"},
			{"x-www-browser"},
			{"gio", "open"},
		}
	}
}

// runCommand starts an opener and reaps it in the background. The opener is
// not bound to ctx: it has to finish handing off to the browser even when the
// caller is already shutting down.
func runCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Open tries each command until one starts.
func (b *Browser) Open(ctx context.Context, url string) error {
	var errs []error
	for _, argv := range b.Commands {
		args := append(append([]string{}, argv[1:]...), url)
		if err := b.Run(ctx, argv[0], args...); err != nil {
			b.Log.Debug("browser method failed", "cmd", argv[0], "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", argv[0], err))
			continue
		}
		b.Log.Info("browser opened", "cmd", argv[0], "url", url)
		return nil
	}
	return errors.Join(append([]error{ErrNoBrowser}, errs...)...)
}

// OpenAfter waits delay, then opens url. Failures are logged with a hint to
// open the URL by hand; the returned error is always nil so it can run in an
// errgroup next to the server.
func (b *Browser) OpenAfter(ctx context.Context, url string, delay time.Duration) error {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-t.C:
	}
	if err := b.Open(ctx, url); err != nil {
		b.Log.Warn("failed to open browser automatically, please open it manually", "url", url, "err", err)
	}
	return nil
}

// OpenBrowser opens url with the platform cascade.
func OpenBrowser(ctx context.Context, url string) error {
	return NewBrowser(nil).Open(ctx, url)
}

// OpenBrowserAfter is OpenAfter on the platform cascade.
func OpenBrowserAfter(ctx context.Context, url string, delay time.Duration) error {
	return NewBrowser(nil).OpenAfter(ctx, url, delay)
}
