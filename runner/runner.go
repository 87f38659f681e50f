//go:generate mockgen -source=$GOFILE -destination=mock_runner/$GOFILE -package=mock_runner

// Package runner executes the external programs the installer depends on.
package runner

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/go-errors/errors"
)

// Command is a program invocation.
type Command struct {
	Path string
	Args []string

	// Env replaces the environment when not nil.
	Env []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runner runs commands to completion.
type Runner interface {
	// Run streams the command output to the console.
	Run(cmd Command) error
	// Output returns what the command wrote on stdout.
	Output(cmd Command) (string, error)
}

// Exec runs commands with os/exec.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec attached to the process stdout and stderr.
func New() *Exec {
	return &Exec{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (e *Exec) Run(cmd Command) error {
	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = cmd.Env
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	if err := c.Run(); err != nil {
		return errors.WrapPrefix(err, cmd.String(), 0)
	}
	return nil
}

// Output implements Runner. Stderr is captured and added to the error.
func (e *Exec) Output(cmd Command) (string, error) {
	var stdout, stderr bytes.Buffer

	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = cmd.Env
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", errors.WrapPrefix(err, cmd.String(), 0)
		}
		return "", errors.Errorf("%s: %w: %s", cmd, err, msg)
	}
	return stdout.String(), nil
}
