//go:build !windows

package launcher

import (
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

var ignoreChildOnce sync.Once

// IgnoreChildSignals makes the kernel reap finished players so they never
// linger as zombies. It is set up once for the lifetime of the process.
func IgnoreChildSignals() {
	ignoreChildOnce.Do(func() {
		signal.Ignore(unix.SIGCHLD)
	})
}

// Alive reports whether a process with pid still exists.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

// Terminate asks the process to exit. A process that is already gone yields
// ErrProcessGone.
func Terminate(pid int) error {
	if pid <= 0 {
		return ErrProcessGone
	}
	if err := unix.Kill(pid, unix.SIGTERM); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return ErrProcessGone
		}
		return err
	}
	return nil
}

// Start launches the player in its own session and returns its PID without
// waiting for it. Standard streams go to the null device.
func (l *Launcher) Start(req Request) (int, error) {
	argv, err := l.Argv(req)
	if err != nil {
		return 0, err
	}

	cmd := commandBuilder(argv[0], argv[1:]...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	// Never waited on: SIGCHLD is ignored so the kernel reaps the child.
	_ = cmd.Process.Release()
	return pid, nil
}
