// Package launch holds the process-level plumbing around the server: picking
// a port, waiting for it, opening a browser and starting the server binary.
package launch

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

// FindFreePort returns the first port in [start, start+attempts) that can be
// bound on host. Ports that fail to bind are skipped.
func FindFreePort(host string, start, attempts int) (int, bool) {
	ln, err := ListenFree(host, start, attempts)
	if err != nil {
		return 0, false
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port, true
}

// ListenFree is FindFreePort that keeps the listener open, so nothing can
// grab the port between the scan and the server start.
func ListenFree(host string, start, attempts int) (net.Listener, error) {
	for i := 0; i < attempts; i++ {
		port := start + i
		if port <= 0 || port > 65535 {
			break
		}
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			continue
		}
		return ln, nil
	}
	return nil, fmt.Errorf("no free port in %d..%d on %s", start, start+attempts-1, host)
}

// WaitForPort dials addr every interval until it accepts a connection, the
// timeout elapses or ctx is done. It reports whether the port came up.
func WaitForPort(ctx context.Context, addr string, timeout, interval time.Duration) bool {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	var d net.Dialer
	for {
		dctx, dcancel := context.WithTimeout(ctx, time.Second)
		conn, err := d.DialContext(dctx, "tcp", addr)
		dcancel()
		if err == nil {
			conn.Close()
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(interval):
		}
	}
}
