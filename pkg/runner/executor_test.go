/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"bufio"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesCombinedOutput(t *testing.T) {
	e := NewExecExecutor()
	output, err := e.Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Contains(t, string(output), "out")
	assert.Contains(t, string(output), "err")
}

func TestRunNonZeroExit(t *testing.T) {
	e := NewExecExecutor()
	output, err := e.Run(context.Background(), "sh", "-c", "echo diagnostics; exit 3")
	require.Error(t, err)
	assert.Contains(t, string(output), "diagnostics")
	assert.Contains(t, err.Error(), "command [sh -c")
}

func TestRunCancelledContext(t *testing.T) {
	e := NewExecExecutor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Run(ctx, "sh", "-c", "sleep 10")
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestAvailable(t *testing.T) {
	e := NewExecExecutor()
	assert.True(t, e.Available("sh"))
	assert.False(t, e.Available("no-such-binary-fabricx"))
}

func TestStartStreamsOutput(t *testing.T) {
	e := NewExecExecutor()
	session, err := e.Start(context.Background(), "sh", "-c", "echo first; echo second")
	require.NoError(t, err)

	scanner := bufio.NewScanner(session.Output)
	require.True(t, scanner.Scan())
	assert.Equal(t, "first", scanner.Text())
	require.True(t, scanner.Scan())
	assert.Equal(t, "second", scanner.Text())
	require.NoError(t, session.Wait())
}

func TestSessionKill(t *testing.T) {
	e := NewExecExecutor()
	session, err := e.Start(context.Background(), "sh", "-c", "sleep 30")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- session.Wait() }()
	session.Kill()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("killed session did not exit")
	}
}
