// Package runner abstracts child-process execution so commands that
// shell out (registry installs, download tools) can be faked in tests.
package runner

import (
	"os"
	"os/exec"
)

// Runner runs external commands and probes for their availability.
type Runner interface {
	// Run executes name with args in dir, with stdout and stderr
	// inherited from the current process so the user sees the tool's
	// native output. An empty dir means the current working directory.
	Run(dir, name string, args ...string) error

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner executes commands on the local host via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
