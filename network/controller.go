/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package network is the orchestration engine of FabricX. It plans a
// topology, generates cryptographic material and channel configuration
// through a single-shot toolchain container, synthesizes the container-group
// manifest, and drives the container runtime through the multi-phase
// channel and chaincode lifecycle.
package network

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/docker"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
	"github.com/temmyjay001/fabricx-sub000/pkg/runner"
)

var logger = flogging.MustGetLogger("fabricx.network")

const (
	DefaultDockerBinary = "docker"
	DefaultToolsImage   = "hyperledger/fabric-tools:2.5"
	DefaultPeerImage    = "hyperledger/fabric-peer:2.5"
	DefaultOrdererImage = "hyperledger/fabric-orderer:2.5"
	DefaultCAImage      = "hyperledger/fabric-ca:1.5"
	DefaultCouchDBImage = "couchdb:3.3"

	DefaultStartTimeout = 2 * time.Minute
	DefaultJoinWait     = 2 * time.Second

	readinessInterval = 2 * time.Second
)

// Options tunes the engine; zero values fall back to the defaults above.
type Options struct {
	DockerBinary string
	ToolsImage   string
	PeerImage    string
	OrdererImage string
	CAImage      string
	CouchDBImage string
	RootDir      string
	StartTimeout time.Duration
	JoinWait     time.Duration
}

func (o *Options) defaults() {
	if o.DockerBinary == "" {
		o.DockerBinary = DefaultDockerBinary
	}
	if o.ToolsImage == "" {
		o.ToolsImage = DefaultToolsImage
	}
	if o.PeerImage == "" {
		o.PeerImage = DefaultPeerImage
	}
	if o.OrdererImage == "" {
		o.OrdererImage = DefaultOrdererImage
	}
	if o.CAImage == "" {
		o.CAImage = DefaultCAImage
	}
	if o.CouchDBImage == "" {
		o.CouchDBImage = DefaultCouchDBImage
	}
	if o.RootDir == "" {
		o.RootDir = filepath.Join(os.TempDir(), "fabricx")
	}
	if o.StartTimeout == 0 {
		o.StartTimeout = DefaultStartTimeout
	}
	if o.JoinWait == 0 {
		o.JoinWait = DefaultJoinWait
	}
}

// RuntimeState is the per-network record of the container lifecycle
// manager. Absence means "not started", which is distinct from a network
// that does not exist at all.
type RuntimeState struct {
	ComposeFile string
	Project     string
	Running     bool
}

// Controller owns every external interaction of a FabricX process: the
// container runtime, the toolchain container, and the shared administrative
// cli container of each network.
type Controller struct {
	executor runner.Executor
	docker   *docker.Client
	opts     Options

	mutex    sync.Mutex
	runtimes map[string]*RuntimeState
}

// New builds a Controller around the given Executor. The Executor is
// injectable so deterministic tests can substitute a scripted fake; the
// docker API client is optional and only used for preflight checks and
// teardown of leftovers.
func New(executor runner.Executor, dockerClient *docker.Client, opts Options) *Controller {
	opts.defaults()
	return &Controller{
		executor: executor,
		docker:   dockerClient,
		opts:     opts,
		runtimes: map[string]*RuntimeState{},
	}
}

func (c *Controller) Options() Options {
	return c.opts
}

// Plan computes the topology and anchors it under the controller's root
// directory.
func (c *Controller) Plan(name, channelName string, orgCount int) *topology.Network {
	net := topology.Plan(name, channelName, orgCount)
	net.Root = filepath.Join(c.opts.RootDir, net.ID)
	return net
}

// runDocker invokes the container runtime with the synthesized arguments
// and wraps any non-zero exit into a CommandError carrying the captured
// combined output.
func (c *Controller) runDocker(ctx context.Context, cmd commands.Command, details map[string]string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	output, err := c.executor.Run(ctx, c.opts.DockerBinary, cmd.Args()...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, ctxErr
		}
		return output, newCommandError(cmd.SessionName(), output, err, details)
	}
	return output, nil
}

// runTool runs the wrapped command inside the single-shot toolchain
// container with the network root mounted at /network.
func (c *Controller) runTool(ctx context.Context, net *topology.Network, tool commands.Command) ([]byte, error) {
	return c.runDocker(ctx, commands.ToolRun{
		Image:   c.opts.ToolsImage,
		Mounts:  []string{net.Root + ":/network"},
		WorkDir: "/network",
		Tool:    tool,
	}, map[string]string{"network": net.ID})
}

func (c *Controller) runtime(id string) *RuntimeState {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.runtimes[id]
}

func (c *Controller) setRuntime(id string, state *RuntimeState) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if state == nil {
		delete(c.runtimes, id)
		return
	}
	c.runtimes[id] = state
}

// RemoveArtifacts deletes the network's filesystem subtree. It is invoked
// on bootstrap failure and on Stop with cleanup, and leaves no orphaned
// state for the network ID.
func (c *Controller) RemoveArtifacts(net *topology.Network) {
	if net.Root == "" {
		return
	}
	if err := os.RemoveAll(net.Root); err != nil {
		logger.Warnf("failed removing artifacts of network [%s]: %s", net.ID, err)
	}
}

func projectName(net *topology.Network) string {
	return "fabricx-" + net.ID
}

func cliContainer(net *topology.Network) string {
	return net.ID + "-cli"
}

func containerName(net *topology.Network, service string) string {
	return net.ID + "-" + service
}

// sleepContext waits for the given duration unless the context is cancelled
// first, in which case the context error is returned.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
