/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fake provides a scripted Executor for deterministic tests.
package fake

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/temmyjay001/fabricx-sub000/pkg/runner"
)

// Response scripts the outcome of any invocation whose full command line
// contains Match. Responses are consulted in order; the first hit wins.
type Response struct {
	Match  string
	Output []byte
	Err    error
}

// Executor is a scripted runner.Executor. Unmatched invocations yield
// DefaultOutput and DefaultErr.
type Executor struct {
	mu        sync.Mutex
	callLines []string

	Responses     []Response
	DefaultOutput []byte
	DefaultErr    error

	// StreamOutput feeds sessions returned by Start.
	StreamOutput io.ReadCloser

	// Missing marks binaries reported as absent from PATH.
	Missing map[string]bool
}

func (e *Executor) Available(name string) bool {
	return !e.Missing[name]
}

func (e *Executor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	e.mu.Lock()
	e.callLines = append(e.callLines, line)
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range e.Responses {
		if strings.Contains(line, r.Match) {
			return r.Output, r.Err
		}
	}
	return e.DefaultOutput, e.DefaultErr
}

func (e *Executor) Start(ctx context.Context, name string, args ...string) (*runner.Session, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	e.mu.Lock()
	e.callLines = append(e.callLines, line)
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	output := e.StreamOutput
	if output == nil {
		output = io.NopCloser(bytes.NewReader(nil))
	}
	return runner.NewSession(output, nil, func() { _ = output.Close() }), nil
}

// CallLines returns every recorded command line, in invocation order.
func (e *Executor) CallLines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.callLines...)
}

// CalledWith reports whether any recorded command line contains the
// fragment.
func (e *Executor) CalledWith(fragment string) bool {
	for _, line := range e.CallLines() {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}
