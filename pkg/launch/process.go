package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound means none of the candidate paths exists.
var ErrNotFound = errors.New("binary not found")

// DisableBrowserEnv tells a server started by the launcher not to open a
// browser itself.
const DisableBrowserEnv = "DISABLE_BROWSER=1"

// DefaultCandidates lists where the server binary may live relative to the
// launcher: next to it, one level up, in the working directory, then bare.
// An empty exeDir or cwd drops the entries built from it.
func DefaultCandidates(exeDir, cwd, name string) []string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}
	var out []string
	if exeDir != "" {
		out = append(out, filepath.Join(exeDir, name), filepath.Join(exeDir, "..", name))
	}
	if cwd != "" {
		out = append(out, filepath.Join(cwd, name))
	}
	return append(out, name)
}

// LocateBinary returns the first candidate that is an existing regular file.
func LocateBinary(candidates []string) (string, error) {
	for _, p := range candidates {
		st, err := os.Stat(p)
		if err == nil && st.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w; searched: %s", ErrNotFound, strings.Join(candidates, ", "))
}

// StartDetached runs path in the background with env appended to the current
// environment. The child is not tied to ctx and outlives the caller; its
// output goes to ours.
func StartDetached(ctx context.Context, path string, env []string, args ...string) (*exec.Cmd, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", path, err)
	}
	return cmd, nil
}
