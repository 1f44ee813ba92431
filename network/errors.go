/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNetworkNotFound reports a lookup of an unknown network ID.
	ErrNetworkNotFound = errors.New("network not found")

	// ErrToolUnavailable reports that the container runtime cannot be
	// reached or is not installed.
	ErrToolUnavailable = errors.New("container runtime unavailable")

	// ErrPackageIDNotFound reports that the approve phase could not resolve
	// the installed package identifier produced by the install phase.
	ErrPackageIDNotFound = errors.New("package identifier not found")

	// ErrNotStarted reports an operation that requires a running container
	// group against a network that was never started.
	ErrNotStarted = errors.New("network not started")
)

// CommandError reports a non-zero exit from a shelled-out phase. It always
// carries the operation name and the tool's captured combined output.
type CommandError struct {
	Operation string
	Output    string
	Details   map[string]string
	cause     error
}

func newCommandError(operation string, output []byte, cause error, details map[string]string) *CommandError {
	return &CommandError{
		Operation: operation,
		Output:    strings.TrimSpace(string(output)),
		Details:   details,
		cause:     cause,
	}
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("operation [%s] failed", e.Operation)
	if len(e.Details) != 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg += fmt.Sprintf(", %s=%s", k, e.Details[k])
		}
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	if len(e.Output) != 0 {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *CommandError) Cause() error { return e.cause }

func (e *CommandError) Unwrap() error { return e.cause }

// CryptoError is the specialization of CommandError raised by the crypto
// and channel configuration generation phase. It is the primary diagnosable
// failure class during bootstrap since it wraps an opaque external binary.
type CryptoError struct {
	CommandError
}

func (e *CryptoError) Error() string {
	return "crypto generation failed: " + e.CommandError.Error()
}
