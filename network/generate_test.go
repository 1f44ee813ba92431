/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temmyjay001/fabricx-sub000/pkg/runner/fake"
)

func TestGenerateArtifacts(t *testing.T) {
	executor := &fake.Executor{}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	require.NoError(t, c.GenerateArtifacts(context.Background(), net))

	cryptoSpec, err := os.ReadFile(net.CryptoConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(cryptoSpec), "org1.example.com")
	assert.Contains(t, string(cryptoSpec), "org2.example.com")
	assert.Contains(t, string(cryptoSpec), "EnableNodeOUs: true")

	configTx, err := os.ReadFile(net.ConfigTxPath())
	require.NoError(t, err)
	assert.Contains(t, string(configTx), "GenesisProfile")
	assert.Contains(t, string(configTx), "ChannelProfile")
	assert.Contains(t, string(configTx), "Org1MSP")
	// MSP paths must stay relative so the toolchain container resolves them
	assert.NotContains(t, string(configTx), net.Root)

	info, err := os.Stat(net.ArtifactsPath())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.True(t, executor.CalledWith("cryptogen generate"))
	assert.True(t, executor.CalledWith("-profile GenesisProfile"))
	assert.True(t, executor.CalledWith("-outputCreateChannelTx /network/artifacts/mychannel.tx"))
	// the toolchain container mounts the network root
	assert.True(t, executor.CalledWith("-v "+net.Root+":/network"))
}

func TestGenerateArtifactsCryptoFailure(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "cryptogen", Output: []byte("template error"), Err: errors.New("exit status 1")},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	err := c.GenerateArtifacts(context.Background(), net)
	require.Error(t, err)

	var cryptoErr *CryptoError
	require.True(t, errors.As(err, &cryptoErr))
	assert.Equal(t, "cryptogen-generate", cryptoErr.Operation)
	assert.Contains(t, cryptoErr.Output, "template error")
}

func TestGenerateArtifactsCancelled(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.GenerateArtifacts(ctx, net)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	var cryptoErr *CryptoError
	assert.False(t, errors.As(err, &cryptoErr))
}
