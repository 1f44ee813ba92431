/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"fmt"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

const (
	cliCryptoPath    = "/etc/hyperledger/crypto-config"
	cliArtifactsPath = "/etc/hyperledger/artifacts"
)

// adminEnv is the environment identity of a peer's organization admin, used
// when issuing commands through the shared administrative cli container.
func adminEnv(net *topology.Network, org *topology.Organization, peer *topology.Peer) []string {
	return []string{
		fmt.Sprintf("CORE_PEER_LOCALMSPID=%s", org.MSPID),
		fmt.Sprintf("CORE_PEER_ADDRESS=%s", net.PeerAddress(org, peer)),
		fmt.Sprintf("CORE_PEER_MSPCONFIGPATH=%s/%s", cliCryptoPath, net.OrgAdminMSPDir(org)),
		"CORE_PEER_TLS_ENABLED=false",
	}
}

func channelBlockPath(net *topology.Network) string {
	return fmt.Sprintf("%s/%s.block", cliArtifactsPath, net.Channel.Name)
}

// CreateChannel issues the channel creation transaction from the first
// organization's admin identity against the orderer. The resulting channel
// block lands on the shared configuration volume where every later join can
// read it. Failure aborts network readiness.
func (c *Controller) CreateChannel(ctx context.Context, net *topology.Network) error {
	org := net.Organizations[0]
	peer := org.Peers[0]

	logger.Infof("creating channel [%s] on network [%s]", net.Channel.Name, net.ID)
	_, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
		commands.ChannelCreate{
			ChannelID:   net.Channel.Name,
			Orderer:     net.OrdererAddress(net.Orderer()),
			File:        fmt.Sprintf("%s/%s.tx", cliArtifactsPath, net.Channel.Name),
			OutputBlock: channelBlockPath(net),
		}.Args()...)
	return err
}

// JoinPeersToChannel joins every peer, in order, using that peer's own
// admin identity, waiting briefly after each join so gossip state can
// propagate. A single failed join aborts the whole readiness sequence;
// there is no partial-network operation.
func (c *Controller) JoinPeersToChannel(ctx context.Context, net *topology.Network) error {
	for _, org := range net.Organizations {
		for _, peer := range org.Peers {
			logger.Infof("joining peer [%s] to channel [%s]", net.PeerHost(org, peer), net.Channel.Name)
			_, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
				commands.ChannelJoin{
					BlockPath: channelBlockPath(net),
				}.Args()...)
			if err != nil {
				return err
			}
			if err := sleepContext(ctx, c.opts.JoinWait); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateAnchorPeers generates and applies one anchor peer update per
// organization. Anchor configuration only affects cross-organization gossip
// discovery, not basic liveness, so failures are logged and skipped.
func (c *Controller) UpdateAnchorPeers(ctx context.Context, net *topology.Network) error {
	for _, org := range net.Organizations {
		if err := ctx.Err(); err != nil {
			return err
		}
		anchorTx := fmt.Sprintf("/network/artifacts/%sanchors.tx", org.MSPID)
		if _, err := c.runTool(ctx, net, commands.OutputAnchorPeersUpdate{
			ChannelID:               net.Channel.Name,
			Profile:                 net.Channel.Profile,
			ConfigPath:              "/network",
			AsOrg:                   org.Name,
			OutputAnchorPeersUpdate: anchorTx,
		}); err != nil {
			logger.Warnf("skipping anchor peer update for [%s]: %s", org.Name, err)
			continue
		}

		peer := org.Peers[0]
		_, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
			commands.ChannelUpdate{
				ChannelID: net.Channel.Name,
				Orderer:   net.OrdererAddress(net.Orderer()),
				File:      fmt.Sprintf("%s/%sanchors.tx", cliArtifactsPath, org.MSPID),
			}.Args()...)
		if err != nil {
			logger.Warnf("skipping anchor peer update for [%s]: %s", org.Name, err)
		}
	}
	return nil
}
