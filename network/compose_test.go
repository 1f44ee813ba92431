/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/temmyjay001/fabricx-sub000/pkg/runner/fake"
)

func TestSynthesize(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 2)

	manifest := c.Synthesize(net)
	assert.Equal(t, "3.7", manifest.Version)
	assert.Contains(t, manifest.Networks, "fabricx")

	// orderer + (ca + couchdb + peer) per org + cli
	require.Len(t, manifest.Services, 1+3*2+1)

	orderer := manifest.Services["orderer.example.com"]
	require.NotNil(t, orderer)
	assert.Equal(t, net.ID+"-orderer.example.com", orderer.ContainerName)
	assert.Contains(t, orderer.Ports, "7050:7050")
	assert.Contains(t, orderer.Environment, "ORDERER_GENERAL_LISTENPORT=7050")

	for _, name := range []string{
		"ca.org1.example.com", "ca.org2.example.com",
		"couchdb.org1.example.com", "couchdb.org2.example.com",
		"peer0.org1.example.com", "peer0.org2.example.com",
	} {
		require.NotNil(t, manifest.Services[name], "missing service %s", name)
	}

	peer2 := manifest.Services["peer0.org2.example.com"]
	assert.Contains(t, peer2.Ports, "8051:8051")
	assert.Contains(t, peer2.Environment, "CORE_PEER_LISTENADDRESS=0.0.0.0:8051")
	assert.Contains(t, peer2.Environment, "CORE_PEER_LOCALMSPID=Org2MSP")
	assert.Contains(t, peer2.Environment,
		"CORE_LEDGER_STATE_COUCHDBCONFIG_COUCHDBADDRESS=couchdb.org2.example.com:5984")
	assert.Contains(t, peer2.Environment,
		"CORE_VM_DOCKER_HOSTCONFIG_NETWORKMODE=fabricx-"+net.ID+"_fabricx")
	assert.Contains(t, peer2.DependsOn, "couchdb.org2.example.com")

	// host ports of the second org's state database are shifted by the stride
	couch2 := manifest.Services["couchdb.org2.example.com"]
	assert.Contains(t, couch2.Ports, "6984:5984")

	cli := manifest.Services["cli"]
	require.NotNil(t, cli)
	assert.Equal(t, net.ID+"-cli", cli.ContainerName)
	assert.True(t, cli.Tty)
	assert.Contains(t, cli.DependsOn, "peer0.org1.example.com")
	assert.Contains(t, cli.DependsOn, "peer0.org2.example.com")
	assert.Contains(t, cli.DependsOn, "orderer.example.com")
	assert.Contains(t, cli.Volumes, net.CryptoPath()+":/etc/hyperledger/crypto-config")
	assert.Contains(t, cli.Volumes, net.ArtifactsPath()+":/etc/hyperledger/artifacts")
}

func TestWriteComposeFile(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 2)
	require.NoError(t, os.MkdirAll(net.ArtifactsPath(), 0o755))

	require.NoError(t, c.WriteComposeFile(net))

	raw, err := os.ReadFile(net.ComposeFilePath())
	require.NoError(t, err)

	var manifest Manifest
	require.NoError(t, yaml.Unmarshal(raw, &manifest))
	assert.Equal(t, "3.7", manifest.Version)
	assert.Len(t, manifest.Services, len(c.Synthesize(net).Services))
}
