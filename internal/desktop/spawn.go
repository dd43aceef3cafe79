package desktop

import (
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"

	"gofi/internal/config"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
)

var tokenPattern = regexp.MustCompile(`'([^']*)'|"([^"]*)"|(\S+)`)

// Tokenize splits a command line into program and arguments, honouring
// single and double quoting.
func Tokenize(cmd string) []string {
	var parts []string
	for _, cap := range tokenPattern.FindAllStringSubmatch(cmd, -1) {
		switch {
		case cap[1] != "":
			parts = append(parts, cap[1])
		case cap[2] != "":
			parts = append(parts, cap[2])
		default:
			parts = append(parts, cap[3])
		}
	}
	return parts
}

// commandArgs drops desktop-entry field codes (%f, %u, ...) and expands
// paths in the remaining arguments.
func commandArgs(parts []string) []string {
	var args []string
	for _, arg := range parts[1:] {
		if strings.HasPrefix(arg, "%") {
			continue
		}
		args = append(args, config.ExpandPath(arg))
	}
	return args
}

// SpawnDetached launches cmd in its own session so it survives this
// process. The child is not waited on.
func SpawnDetached(cmd, workingDir string) error {
	parts := Tokenize(cmd)
	if len(parts) == 0 {
		return menu.ErrMissingAction
	}
	args := commandArgs(parts)

	c := exec.Command(parts[0], args...)
	if workingDir != "" {
		c.Dir = workingDir
	}
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	events.Action.Spawn(parts[0], args)
	if err := c.Start(); err != nil {
		return &menu.RunFailedError{Detail: err.Error()}
	}
	c.Process.Release()
	return nil
}

// Exec replaces the current process image with cmd.
func Exec(cmd string) error {
	parts := Tokenize(cmd)
	if len(parts) == 0 {
		return menu.ErrMissingAction
	}
	path, err := exec.LookPath(parts[0])
	if err != nil {
		return &menu.RunFailedError{Detail: err.Error()}
	}
	argv := append([]string{path}, commandArgs(parts)...)
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return &menu.RunFailedError{Detail: err.Error()}
	}
	return nil
}

const forkEnvVar = "GOFI_PROCESS_IS_FORKED"

// ForkIfConfigured re-launches this binary detached from the controlling
// terminal and exits. The environment marker keeps the child from forking
// again.
func ForkIfConfigured(fork bool) {
	if !fork || os.Getenv(forkEnvVar) != "" {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		logging.Error(err)
		return
	}
	c := exec.Command(exe, os.Args[1:]...)
	c.Env = append(os.Environ(), forkEnvVar+"=1")
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := c.Start(); err != nil {
		logging.Error(err)
		return
	}
	events.App.Fork(c.Process.Pid)
	c.Process.Release()
	os.Exit(0)
}
