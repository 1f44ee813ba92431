/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.List())

	net := topology.Plan("testnet", "mychannel", 2)
	registry.Add(net)

	found, err := registry.Get(net.ID)
	require.NoError(t, err)
	assert.Equal(t, net, found)
	assert.Len(t, registry.List(), 1)

	registry.Remove(net.ID)
	_, err = registry.Get(net.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, network.ErrNetworkNotFound))
}

func TestRegistryUnknownID(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, network.ErrNetworkNotFound))
	assert.Contains(t, err.Error(), "missing")
}
