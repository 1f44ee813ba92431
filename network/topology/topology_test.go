/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package topology

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDefaults(t *testing.T) {
	net := Plan("", "", 0)
	require.NotEmpty(t, net.ID)
	assert.Len(t, net.ID, 8)
	assert.Equal(t, DefaultNetworkName, net.Name)
	assert.Equal(t, DefaultChannelName, net.Channel.Name)
	assert.Equal(t, ChannelProfile, net.Channel.Profile)
	require.Len(t, net.Organizations, DefaultOrgCount)
	require.Len(t, net.Orderers, 1)

	org := net.Organizations[0]
	assert.Equal(t, "Org1", org.Name)
	assert.Equal(t, "Org1MSP", org.MSPID)
	assert.Equal(t, "org1.example.com", org.Domain)
	require.Len(t, org.Peers, 1)
	assert.True(t, org.Peers[0].CouchDB)
}

func TestPlanPortAssignment(t *testing.T) {
	net := Plan("ports", "mychannel", 5)
	require.Len(t, net.Organizations, 5)

	seen := map[int]string{}
	claim := func(port int, owner string) {
		if prev, ok := seen[port]; ok {
			t.Fatalf("port %d assigned to both %s and %s", port, prev, owner)
		}
		seen[port] = owner
	}
	for i, org := range net.Organizations {
		assert.Equal(t, BaseCAPort+i*OrgPortStride, org.CAPort)
		claim(org.CAPort, "ca."+org.Domain)
		for _, peer := range org.Peers {
			assert.Equal(t, BasePeerPort+i*OrgPortStride, peer.Port)
			claim(peer.Port, peer.Name)
			claim(peer.CouchDBPort, "couchdb."+org.Domain)
		}
	}
	claim(net.Orderer().Port, "orderer")
}

func TestPeerHostAddresses(t *testing.T) {
	net := Plan("endpoints", "mychannel", 2)

	var endpoints []string
	for _, peer := range net.Peers() {
		endpoints = append(endpoints, net.PeerHostAddress(peer))
	}
	assert.Equal(t, []string{"localhost:7051", "localhost:8051"}, endpoints)

	org := net.Organizations[0]
	assert.Equal(t, "peer0.org1.example.com", net.PeerHost(org, org.Peers[0]))
	assert.Equal(t, "peer0.org1.example.com:7051", net.PeerAddress(org, org.Peers[0]))
	assert.Equal(t, "orderer.example.com:7050", net.OrdererAddress(net.Orderer()))
}

func TestOrganizationLookup(t *testing.T) {
	net := Plan("lookup", "mychannel", 2)

	require.NotNil(t, net.Organization("Org2"))
	require.NotNil(t, net.Organization("org2"))
	require.NotNil(t, net.Organization("Org2MSP"))
	assert.Nil(t, net.Organization("Org3"))
	assert.Nil(t, net.Organization(""))
}

func TestPathLayout(t *testing.T) {
	net := Plan("paths", "mychannel", 1)
	net.Root = filepath.Join("/tmp", "fabricx", net.ID)

	assert.Equal(t, filepath.Join(net.Root, "crypto-config.yaml"), net.CryptoConfigPath())
	assert.Equal(t, filepath.Join(net.Root, "crypto-config"), net.CryptoPath())
	assert.Equal(t, filepath.Join(net.Root, "configtx.yaml"), net.ConfigTxPath())
	assert.Equal(t, filepath.Join(net.Root, "artifacts"), net.ArtifactsPath())
	assert.Equal(t, filepath.Join(net.Root, "artifacts", "docker-compose.yaml"), net.ComposeFilePath())
	assert.Equal(t, filepath.Join(net.Root, "artifacts", "genesis.block"), net.OutputBlockPath())
	assert.Equal(t, filepath.Join(net.Root, "artifacts", "mychannel.tx"), net.CreateChannelTxPath())

	org := net.Organizations[0]
	assert.Equal(t, filepath.Join(net.Root, "artifacts", "Org1MSPanchors.tx"), net.AnchorUpdatePath(org))
	assert.Equal(t,
		"peerOrganizations/org1.example.com/users/Admin@org1.example.com/msp",
		net.OrgAdminMSPDir(org))
}
