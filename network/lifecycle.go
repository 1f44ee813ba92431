/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

// ContainerStatus is one container's view in an aggregate status report.
type ContainerStatus struct {
	Name   string
	Status string
}

// Status aggregates the lifecycle view of one network's container group.
type Status struct {
	Started    bool
	Running    int
	Containers []ContainerStatus
}

// LogLine is one forwarded line of a followed container-group log stream.
type LogLine struct {
	Timestamp time.Time
	Container string
	Message   string
}

// Start brings the container group up against the synthesized manifest and
// waits until every expected service reports live, bounded by the
// configured start timeout. Starting an already started network is
// undefined; the registry enforces a single bootstrap per ID.
func (c *Controller) Start(ctx context.Context, net *topology.Network) error {
	state := &RuntimeState{
		ComposeFile: net.ComposeFilePath(),
		Project:     projectName(net),
	}

	_, err := c.runDocker(ctx, commands.ComposeUp{
		File:    state.ComposeFile,
		Project: state.Project,
	}, map[string]string{"network": net.ID, "project": state.Project})
	if err != nil {
		return err
	}
	c.setRuntime(net.ID, state)

	if err := c.waitReady(ctx, net, state); err != nil {
		return err
	}
	state.Running = true
	logger.Infof("network [%s] is up, project [%s]", net.ID, state.Project)
	return nil
}

// waitReady polls the runtime for live container identifiers on a fixed
// interval until every expected service is up or the deadline passes.
// Container health offers no push-based signal without extra tooling, so
// polling is acceptable here and only here.
func (c *Controller) waitReady(ctx context.Context, net *topology.Network, state *RuntimeState) error {
	expected := len(c.Synthesize(net).Services)
	deadline := time.Now().Add(c.opts.StartTimeout)

	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		output, err := c.runDocker(ctx, commands.Ps{Project: state.Project}, map[string]string{"network": net.ID})
		if err != nil {
			return err
		}
		live := countLines(string(output))
		if live >= expected {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.Wrapf(context.DeadlineExceeded,
				"network [%s] not ready, %d of %d containers live", net.ID, live, expected)
		}
		if err := sleepContext(ctx, readinessInterval); err != nil {
			return err
		}
	}
}

// Stop tears the container group down. With cleanup set it also removes the
// volumes and the network's filesystem subtree. The runtime state is
// removed only when the teardown succeeds. A cleanup request against a
// network that is not running (never started, or stopped earlier without
// cleanup) still removes the filesystem subtree so no state outlives the
// network ID.
func (c *Controller) Stop(ctx context.Context, net *topology.Network, cleanup bool) error {
	state := c.runtime(net.ID)
	if state == nil {
		if cleanup {
			c.RemoveArtifacts(net)
		}
		return errors.Wrapf(ErrNotStarted, "network [%s]", net.ID)
	}

	_, err := c.runDocker(ctx, commands.ComposeDown{
		File:    state.ComposeFile,
		Project: state.Project,
		Volumes: cleanup,
	}, map[string]string{"network": net.ID, "project": state.Project})
	if err != nil {
		return err
	}
	c.setRuntime(net.ID, nil)

	if cleanup {
		if c.docker != nil {
			// best effort removal of leftovers the compose teardown missed
			if err := c.docker.Cleanup(func(name string) bool {
				return strings.HasPrefix(name, state.Project) || strings.HasPrefix(name, net.ID)
			}); err != nil {
				logger.Warnf("leftover cleanup of network [%s]: %s", net.ID, err)
			}
		}
		c.RemoveArtifacts(net)
	}
	logger.Infof("network [%s] stopped, cleanup=%t", net.ID, cleanup)
	return nil
}

// NetworkStatus reports the aggregate container status of a network. A
// network that was never started yields a valid, non-error status distinct
// from zero running containers.
func (c *Controller) NetworkStatus(ctx context.Context, net *topology.Network) (*Status, error) {
	state := c.runtime(net.ID)
	if state == nil {
		return &Status{}, nil
	}

	output, err := c.runDocker(ctx, commands.PsNames{Project: state.Project}, map[string]string{"network": net.ID})
	if err != nil {
		return nil, err
	}

	status := &Status{Started: true}
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, containerStatus := line, ""
		if idx := strings.Index(line, "|"); idx >= 0 {
			name, containerStatus = line[:idx], line[idx+1:]
		}
		status.Containers = append(status.Containers, ContainerStatus{
			Name:   name,
			Status: containerStatus,
		})
		if strings.HasPrefix(containerStatus, "Up") {
			status.Running++
		}
	}
	return status, nil
}

// StreamLogs spawns a following log reader for the container group (or a
// single service) and forwards its lines over the returned channel until
// the stream ends, the reader fails, or ctx is cancelled. The channel is
// bounded; a slow consumer applies back pressure to the reader.
func (c *Controller) StreamLogs(ctx context.Context, net *topology.Network, service string) (<-chan LogLine, error) {
	state := c.runtime(net.ID)
	if state == nil {
		return nil, errors.Wrapf(ErrNotStarted, "network [%s]", net.ID)
	}

	cmd := commands.ComposeLogs{
		File:    state.ComposeFile,
		Project: state.Project,
		Follow:  true,
		Service: service,
	}
	session, err := c.executor.Start(ctx, c.opts.DockerBinary, cmd.Args()...)
	if err != nil {
		return nil, newCommandError(cmd.SessionName(), nil, err, map[string]string{"network": net.ID})
	}

	lines := make(chan LogLine, 128)
	go func() {
		defer close(lines)
		defer session.Kill()

		scanner := bufio.NewScanner(session.Output)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := parseLogLine(scanner.Text())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			logger.Warnf("log stream of network [%s] ended: %s", net.ID, err)
		}
	}()
	return lines, nil
}

// parseLogLine splits a compose log line of the form
// "service  | message" into its container and message parts.
func parseLogLine(raw string) LogLine {
	line := LogLine{Timestamp: time.Now(), Message: raw}
	if idx := strings.Index(raw, "|"); idx >= 0 {
		line.Container = strings.TrimSpace(raw[:idx])
		line.Message = strings.TrimPrefix(raw[idx+1:], " ")
	}
	return line
}

// ExecInContainer runs a command inside a running container of the network
// with the provided environment. A non-zero exit is an error carrying the
// captured combined output.
func (c *Controller) ExecInContainer(ctx context.Context, net *topology.Network, container string, env []string, command ...string) ([]byte, error) {
	return c.runDocker(ctx, commands.Exec{
		Container: container,
		Env:       env,
		Command:   command,
	}, map[string]string{"network": net.ID, "container": container})
}

// CopyToContainer copies a host file into a running container.
func (c *Controller) CopyToContainer(ctx context.Context, net *topology.Network, source, container, dest string) error {
	_, err := c.runDocker(ctx, commands.CopyTo{
		Source:    source,
		Container: container,
		Dest:      dest,
	}, map[string]string{"network": net.ID, "container": container})
	return err
}

// CopyFromContainer copies a file out of a running container onto the host.
func (c *Controller) CopyFromContainer(ctx context.Context, net *topology.Network, container, source, dest string) error {
	_, err := c.runDocker(ctx, commands.CopyFrom{
		Container: container,
		Source:    source,
		Dest:      dest,
	}, map[string]string{"network": net.ID, "container": container})
	return err
}

func countLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
