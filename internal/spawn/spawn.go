// Package spawn launches user commands detached from the window
// manager process, generalizing the exec.Command(...).Start() doWM
// uses for its launcher and volume keys into a true double fork: the
// spawned command ends up a grandchild of tilewm, reparented to init,
// rather than a direct child tilewm would otherwise have to reap for
// its entire lifetime.
package spawn

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/mattn/go-shellwords"
)

// Run parses command as a shell-style argument list and double-forks
// it detached from the window manager. The direct child is a shell
// that calls setsid (via SysProcAttr, applied at fork time, before the
// shell execs) to detach from the controlling terminal, then
// backgrounds the real command as its own child before exiting
// immediately; that backgrounded grandchild is reparented to init the
// moment the shell exits. Run waits only on the shell, which returns
// in well under a second regardless of how long the spawned command
// runs, so it never ties up a goroutine or leaves a zombie behind.
func Run(command string) error {
	args, err := shellwords.Parse(command)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	script := strings.Join(quoted, " ") + " &"

	intermediate := exec.Command("/bin/sh", "-c", script)
	intermediate.Stdout = os.Stdout
	intermediate.Stderr = os.Stderr
	intermediate.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := intermediate.Start(); err != nil {
		return err
	}
	return intermediate.Wait()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
