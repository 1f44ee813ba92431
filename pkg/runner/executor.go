/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("fabricx.runner")

// Executor abstracts external process invocation so that deterministic
// tests can substitute a scripted fake for the real container runtime.
type Executor interface {
	// Run executes the command to completion and returns its combined
	// stdout/stderr. A non-nil error implies a non-zero exit or a failure
	// to start; the returned output is still meaningful for diagnostics.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start launches the command and returns a Session whose Output reader
	// streams combined stdout/stderr while the process runs.
	Start(ctx context.Context, name string, args ...string) (*Session, error)
}

// Session is a handle on a streaming process started via Executor.Start.
type Session struct {
	Output io.ReadCloser

	wait func() error
	kill func()
}

// NewSession builds a Session around an output stream. Alternate Executor
// implementations use it to hand back scripted streams.
func NewSession(output io.ReadCloser, wait func() error, kill func()) *Session {
	if wait == nil {
		wait = func() error { return nil }
	}
	if kill == nil {
		kill = func() {}
	}
	return &Session{Output: output, wait: wait, kill: kill}
}

// Wait blocks until the process exits.
func (s *Session) Wait() error {
	return s.wait()
}

// Kill terminates the process; the Output reader unblocks with EOF.
func (s *Session) Kill() {
	s.kill()
}

// ExecExecutor is the production Executor backed by os/exec.
type ExecExecutor struct{}

func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Available reports whether the named binary can be resolved on PATH.
func (e *ExecExecutor) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *ExecExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger.Debugf("running [%s %s]", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out.Bytes(), ctxErr
	}
	if err != nil {
		return out.Bytes(), errors.Wrapf(err, "command [%s %s] failed", name, strings.Join(args, " "))
	}
	return out.Bytes(), nil
}

func (e *ExecExecutor) Start(ctx context.Context, name string, args ...string) (*Session, error) {
	logger.Debugf("starting [%s %s]", name, strings.Join(args, " "))

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, errors.Wrapf(err, "failed attaching to stdout of [%s]", name)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, errors.Wrapf(err, "failed starting [%s %s]", name, strings.Join(args, " "))
	}
	return NewSession(stdout, cmd.Wait, cancel), nil
}
