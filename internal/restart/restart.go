// Package restart implements the recompile-then-re-exec cycle: finding
// a stale user config binary, rebuilding it, and re-executing the
// running process in place while carrying the window manager's state
// across in its argv.
package restart

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/tilewm/tilewm/internal/spawn"
	"github.com/tilewm/tilewm/internal/stack"
)

// Paths locates the on-disk artifacts recompile/restart touches, all
// under a single config directory.
type Paths struct {
	Dir      string // e.g. ~/.config/tilewm
	Source   string // user's config source, compiled into Binary
	Binary   string // the compiled tilewm binary actually exec'd
	ErrorLog string // stderr of the last failed build
}

// DefaultPaths resolves Paths under ~/.config/tilewm, mirroring
// xmonad's ~/.xmonad layout.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("couldn't locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "tilewm")
	return Paths{
		Dir:      dir,
		Source:   filepath.Join(dir, "tilewm.go"),
		Binary:   filepath.Join(dir, "tilewm-bin"),
		ErrorLog: filepath.Join(dir, "build.err"),
	}, nil
}

// Recompile rebuilds Binary from Source if Source is newer than Binary,
// or force is set. It reports whether a rebuild happened. If the build
// fails, it displays the compiler's stderr via a detached message
// dialog and also returns an error; it never exits the process, so the
// running instance carries on with its existing binary.
func Recompile(p Paths, force bool) (rebuilt bool, err error) {
	srcInfo, err := os.Stat(p.Source)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("couldn't stat %s: %w", p.Source, err)
	}

	if !force {
		if binInfo, err := os.Stat(p.Binary); err == nil && !srcInfo.ModTime().After(binInfo.ModTime()) {
			return false, nil
		}
	}

	errFile, err := os.Create(p.ErrorLog)
	if err != nil {
		return false, fmt.Errorf("couldn't create %s: %w", p.ErrorLog, err)
	}
	defer errFile.Close()

	cmd := exec.Command("go", "build", "-o", p.Binary, p.Source)
	cmd.Stderr = errFile
	cmd.Dir = p.Dir

	if err := cmd.Run(); err != nil {
		contents, _ := os.ReadFile(p.ErrorLog)
		slog.Error("user config failed to recompile", "error", err)
		if spawnErr := displayBuildError(string(contents)); spawnErr != nil {
			slog.Error("couldn't display build error dialog", "error", spawnErr)
		}
		return false, fmt.Errorf("recompile failed, see %s: %w", p.ErrorLog, err)
	}
	return true, nil
}

// displayBuildError spawns a detached message tool showing the failed
// build's output; dmenu/xmessage-style tools both read from stdin or
// accept a message argument, so this keeps it to argv to avoid needing
// a pipe that outlives this process.
func displayBuildError(message string) error {
	return spawn.Run(fmt.Sprintf("xmessage %q", message))
}

// Restart serializes ws (when resume is true) and re-execs programPath
// in place. The new process opens its own X connection; client windows
// stay mapped throughout because the X server, not this process, owns
// them.
func Restart(programPath string, resume bool, ws *stack.WindowSet) error {
	argv := []string{programPath}
	if resume {
		argv = append(argv, "--resume", stack.Encode(ws))
	}
	env := os.Environ()
	return syscall.Exec(programPath, argv, env)
}
