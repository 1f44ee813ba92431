/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temmyjay001/fabricx-sub000/pkg/runner/fake"
)

func TestAdminEnv(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 2)
	org := net.Organizations[1]
	env := adminEnv(net, org, org.Peers[0])

	assert.Contains(t, env, "CORE_PEER_LOCALMSPID=Org2MSP")
	assert.Contains(t, env, "CORE_PEER_ADDRESS=peer0.org2.example.com:8051")
	assert.Contains(t, env,
		"CORE_PEER_MSPCONFIGPATH=/etc/hyperledger/crypto-config/peerOrganizations/org2.example.com/users/Admin@org2.example.com/msp")
	assert.Contains(t, env, "CORE_PEER_TLS_ENABLED=false")
}

func TestCreateChannel(t *testing.T) {
	executor := &fake.Executor{}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	require.NoError(t, c.CreateChannel(context.Background(), net))

	assert.True(t, executor.CalledWith("peer channel create"))
	assert.True(t, executor.CalledWith("--channelID mychannel"))
	assert.True(t, executor.CalledWith("--orderer orderer.example.com:7050"))
	assert.True(t, executor.CalledWith("--file /etc/hyperledger/artifacts/mychannel.tx"))
	assert.True(t, executor.CalledWith("--outputBlock /etc/hyperledger/artifacts/mychannel.block"))
	// issued through the shared administrative container
	assert.True(t, executor.CalledWith("exec -e CORE_PEER_LOCALMSPID=Org1MSP"))
}

func TestJoinPeersToChannel(t *testing.T) {
	executor := &fake.Executor{}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 3)

	require.NoError(t, c.JoinPeersToChannel(context.Background(), net))

	joins := 0
	for _, line := range executor.CallLines() {
		if strings.Contains(line, "peer channel join") {
			joins++
		}
	}
	assert.Equal(t, 3, joins)
	// each peer joins under its own identity
	assert.True(t, executor.CalledWith("CORE_PEER_LOCALMSPID=Org1MSP"))
	assert.True(t, executor.CalledWith("CORE_PEER_LOCALMSPID=Org2MSP"))
	assert.True(t, executor.CalledWith("CORE_PEER_LOCALMSPID=Org3MSP"))
}

func TestJoinPeersToChannelFailFast(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "peer channel join", Err: errors.New("exit status 1")},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 3)

	err := c.JoinPeersToChannel(context.Background(), net)
	require.Error(t, err)

	joins := 0
	for _, line := range executor.CallLines() {
		if strings.Contains(line, "peer channel join") {
			joins++
		}
	}
	assert.Equal(t, 1, joins)
}

func TestUpdateAnchorPeersSkipsFailures(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "-asOrg Org1", Err: errors.New("exit status 1")},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	// anchor updates are best effort, a failing organization is skipped
	require.NoError(t, c.UpdateAnchorPeers(context.Background(), net))

	assert.True(t, executor.CalledWith("-asOrg Org2"))
	assert.True(t, executor.CalledWith("--file /etc/hyperledger/artifacts/Org2MSPanchors.tx"))
	assert.False(t, executor.CalledWith("--file /etc/hyperledger/artifacts/Org1MSPanchors.tx"))
}

func TestUpdateAnchorPeersCancelled(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.UpdateAnchorPeers(ctx, net)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
