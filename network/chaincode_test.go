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

const queryInstalledOutput = `Installed chaincodes on peer:
Package ID: basic_1.0:3a8c52d8a7f1, Label: basic_1.0
Package ID: other_2.0:ffab349, Label: other_2.0
`

func TestEndorsementPolicy(t *testing.T) {
	c := newTestController(t, &fake.Executor{})
	net := plannedNetwork(t, c, 3)

	t.Run("all organizations by default", func(t *testing.T) {
		assert.Equal(t,
			"OR('Org1MSP.member','Org2MSP.member','Org3MSP.member')",
			endorsementPolicy(net, nil))
	})
	t.Run("named subset", func(t *testing.T) {
		assert.Equal(t,
			"OR('Org2MSP.member')",
			endorsementPolicy(net, []string{"Org2"}))
	})
	t.Run("matches msp id case insensitively", func(t *testing.T) {
		assert.Equal(t,
			"OR('Org1MSP.member','Org3MSP.member')",
			endorsementPolicy(net, []string{"org1msp", "ORG3"}))
	})
	t.Run("unknown names fall back to all", func(t *testing.T) {
		assert.Equal(t,
			"OR('Org1MSP.member','Org2MSP.member','Org3MSP.member')",
			endorsementPolicy(net, []string{"nosuchorg"}))
	})
}

func TestResolvePackageID(t *testing.T) {
	assert.Equal(t, "basic_1.0:3a8c52d8a7f1", resolvePackageID(queryInstalledOutput, "basic_1.0"))
	assert.Equal(t, "other_2.0:ffab349", resolvePackageID(queryInstalledOutput, "other_2.0"))
	assert.Equal(t, "", resolvePackageID(queryInstalledOutput, "missing_1.0"))
	assert.Equal(t, "", resolvePackageID("", "basic_1.0"))
}

func TestDeployRequestDefaults(t *testing.T) {
	req := &DeployRequest{Name: "basic", Path: "./cc"}
	req.defaults()
	assert.Equal(t, DefaultChaincodeVersion, req.Version)
	assert.Equal(t, DefaultChaincodeLanguage, req.Language)
	assert.Equal(t, "basic_1.0", req.label())
}

func TestDeployChaincode(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "queryinstalled", Output: []byte(queryInstalledOutput)},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	id, err := c.DeployChaincode(context.Background(), net, &DeployRequest{
		Name: "basic",
		Path: t.TempDir(),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "basic-"))

	assert.True(t, executor.CalledWith("lifecycle chaincode package"))
	assert.True(t, executor.CalledWith("lifecycle chaincode install"))
	assert.True(t, executor.CalledWith("approveformyorg"))
	assert.True(t, executor.CalledWith("--package-id basic_1.0:3a8c52d8a7f1"))
	assert.True(t, executor.CalledWith("--signature-policy OR('Org1MSP.member','Org2MSP.member')"))
	assert.True(t, executor.CalledWith("lifecycle chaincode commit"))

	// one approval per organization from its own admin identity
	approvals := 0
	for _, line := range executor.CallLines() {
		if strings.Contains(line, "approveformyorg") {
			approvals++
		}
	}
	assert.Equal(t, 2, approvals)

	// the archive lands in the shared cli container before the installs
	assert.True(t, executor.CalledWith("cp "+net.ArtifactsPath()+"/basic_1.0.tar.gz"))
}

func TestDeployChaincodeUnknownLabel(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "queryinstalled", Output: []byte("Installed chaincodes on peer:\n")},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	_, err := c.DeployChaincode(context.Background(), net, &DeployRequest{
		Name: "basic",
		Path: t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPackageIDNotFound))
}

func TestDeployChaincodeInstallFailureAborts(t *testing.T) {
	executor := &fake.Executor{
		Responses: []fake.Response{
			{Match: "lifecycle chaincode install", Err: errors.New("exit status 1")},
		},
	}
	c := newTestController(t, executor)
	net := plannedNetwork(t, c, 2)

	_, err := c.DeployChaincode(context.Background(), net, &DeployRequest{
		Name: "basic",
		Path: t.TempDir(),
	})
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "docker-exec", cmdErr.Operation)
	assert.False(t, executor.CalledWith("approveformyorg"))
	assert.False(t, executor.CalledWith("lifecycle chaincode commit"))
}
