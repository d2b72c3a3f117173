// Command asemic is the desktop entry point: it starts asemic-server without
// its own browser handling, waits for the port and opens the UI.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/asemic/pkg/config"
	"github.com/artem13815/asemic/pkg/launch"
	"github.com/artem13815/asemic/pkg/logging"
)

func main() {
	cfg := config.Load()
	var binary string

	root := &cobra.Command{
		Use:           "asemic",
		Short:         "Start the Asemic Artist server and open it in a browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, binary, os.Stdin, os.Stdout)
		},
	}
	f := root.Flags()
	f.StringVar(&binary, "server", "", "path to asemic-server (searched next to this binary by default)")
	f.StringVar(&cfg.Host, "host", cfg.Host, "host the server binds")
	f.IntVar(&cfg.Port, "port", cfg.Port, "port to wait for")
	f.DurationVar(&cfg.LaunchWait, "wait", cfg.LaunchWait, "how long to wait for the server")

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("launcher failed", "err", err)
		pause(os.Stdin, os.Stderr, "Press Enter to exit...")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, binary string, in io.Reader, out io.Writer) error {
	log := logging.New(cfg.LogLevel)

	if binary == "" {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		cwd, err := os.Getwd()
		if err != nil {
			log.Warn("working directory unknown, not searching it", "err", err)
			cwd = ""
		}
		binary, err = launch.LocateBinary(launch.DefaultCandidates(filepath.Dir(exe), cwd, cfg.ServerBinary))
		if err != nil {
			return err
		}
	}
	log.Info("starting server", "binary", binary)

	env := []string{
		launch.DisableBrowserEnv,
		"HOST=" + cfg.Host,
		"PORT=" + strconv.Itoa(cfg.Port),
	}
	if _, err := launch.StartDetached(ctx, binary, env); err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	url := "http://" + addr
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		openWhenReady(gctx, log, addr, url, cfg.LaunchWait, launch.OpenBrowser)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Asemic Artist is running at %s\n", url)
	pause(in, out, "Press Enter to exit this launcher (the server keeps running).")
	return nil
}

// openWhenReady waits for addr and then opens url. A server that is slow to
// come up still gets a browser, it may be ready by the time the page loads.
func openWhenReady(ctx context.Context, log *slog.Logger, addr, url string, wait time.Duration,
	open func(ctx context.Context, url string) error,
) {
	if !launch.WaitForPort(ctx, addr, wait, 0) {
		log.Warn("server did not come up in time, trying the browser anyway", "url", url, "waited", wait)
	}
	if err := open(ctx, url); err != nil {
		log.Warn("could not open a browser, open the UI manually", "url", url, "err", err)
	}
}

// pause prints msg and blocks until a line (or EOF) arrives on in.
func pause(in io.Reader, out io.Writer, msg string) {
	fmt.Fprintln(out, msg)
	_, _ = bufio.NewReader(in).ReadString('\n')
}
