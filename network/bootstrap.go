/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"os"

	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

// Bootstrap drives the full creation sequence of a network: preflight,
// topology planning, crypto and channel configuration generation, manifest
// synthesis, container-group start, channel creation, peer joins, and
// anchor peer updates. Any phase failure (or cancellation) removes the
// partially created filesystem subtree and tears down whatever was already
// started, leaving no orphaned state for the network ID.
func (c *Controller) Bootstrap(ctx context.Context, name, channelName string, orgCount int, customConfig string) (net *topology.Network, err error) {
	if err := c.preflight(); err != nil {
		return nil, err
	}

	net = c.Plan(name, channelName, orgCount)
	logger.Infof("bootstrapping network [%s] (%d orgs, channel [%s])", net.ID, len(net.Organizations), net.Channel.Name)

	defer func() {
		if err == nil {
			return
		}
		logger.Errorf("bootstrap of network [%s] failed, cleaning up: %s", net.ID, err)
		if state := c.runtime(net.ID); state != nil {
			if stopErr := c.Stop(context.Background(), net, true); stopErr != nil {
				logger.Warnf("cleanup of network [%s] failed: %s", net.ID, stopErr)
				c.setRuntime(net.ID, nil)
			}
		}
		c.RemoveArtifacts(net)
	}()

	if err = c.GenerateArtifacts(ctx, net); err != nil {
		return nil, err
	}
	if customConfig != "" {
		if err = c.overlayCustomConfig(net, customConfig); err != nil {
			return nil, err
		}
	}
	if err = c.WriteComposeFile(net); err != nil {
		return nil, err
	}
	if err = c.Start(ctx, net); err != nil {
		return nil, err
	}
	if err = c.CreateChannel(ctx, net); err != nil {
		return nil, err
	}
	if err = c.JoinPeersToChannel(ctx, net); err != nil {
		return nil, err
	}
	if err = c.UpdateAnchorPeers(ctx, net); err != nil {
		return nil, err
	}
	return net, nil
}

// preflight verifies the container runtime is usable before any artifact is
// created: the binary must resolve and, when a docker API client is wired,
// the daemon must answer and the required images must be present.
func (c *Controller) preflight() error {
	type pather interface {
		Available(name string) bool
	}
	if e, ok := c.executor.(pather); ok && !e.Available(c.opts.DockerBinary) {
		return errors.Wrapf(ErrToolUnavailable, "[%s] not found on PATH", c.opts.DockerBinary)
	}
	if c.docker == nil {
		return nil
	}
	if err := c.docker.Ping(); err != nil {
		return errors.Wrapf(ErrToolUnavailable, "%s", err)
	}
	images := []string{
		c.opts.ToolsImage,
		c.opts.PeerImage,
		c.opts.OrdererImage,
		c.opts.CAImage,
		c.opts.CouchDBImage,
	}
	if err := c.docker.CheckImagesExist(images...); err != nil {
		return errors.Wrapf(ErrToolUnavailable, "%s", err)
	}
	return nil
}

// overlayCustomConfig copies a caller-supplied configuration tree over the
// generated artifacts, letting callers override the rendered defaults.
func (c *Controller) overlayCustomConfig(net *topology.Network, customConfig string) error {
	info, err := os.Stat(customConfig)
	if err != nil {
		return errors.Wrapf(err, "invalid custom config path [%s]", customConfig)
	}
	if !info.IsDir() {
		return errors.Errorf("custom config [%s] is not a directory", customConfig)
	}
	if err := cp.Copy(customConfig, net.ArtifactsPath()); err != nil {
		return errors.Wrapf(err, "failed importing custom config from [%s]", customConfig)
	}
	return nil
}
