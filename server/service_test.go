/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/pkg/runner/fake"
	"github.com/temmyjay001/fabricx-sub000/server/protos"
)

func newTestService(t *testing.T, executor *fake.Executor) (*NetworkService, *Registry) {
	t.Helper()
	controller := network.New(executor, nil, network.Options{
		RootDir:      t.TempDir(),
		StartTimeout: 50 * time.Millisecond,
		JoinWait:     time.Millisecond,
	})
	registry := NewRegistry()
	return NewNetworkService(controller, registry, nil), registry
}

// liveContainers scripts a container listing with n live entries.
func liveContainers(n int) fake.Response {
	return fake.Response{
		Match:  "ps -q",
		Output: []byte(strings.Repeat("0123456789ab\n", n)),
	}
}

func TestInitNetwork(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	service, registry := newTestService(t, executor)

	resp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{
		Name:     "testnet",
		OrgCount: 2,
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	assert.NotEmpty(t, resp.NetworkId)
	assert.Equal(t, []string{"localhost:7051", "localhost:8051"}, resp.Endpoints)

	_, err = registry.Get(resp.NetworkId)
	require.NoError(t, err)
}

func TestInitNetworkSoftFailure(t *testing.T) {
	executor := &fake.Executor{Missing: map[string]bool{"docker": true}}
	service, registry := newTestService(t, executor)

	resp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err, "tooling failures are soft failures, not transport errors")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "container runtime unavailable")
	assert.Empty(t, registry.List())
}

func TestInitNetworkCancelledContext(t *testing.T) {
	service, _ := newTestService(t, &fake.Executor{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.InitNetwork(ctx, &protos.InitNetworkRequest{Name: "testnet"})
	require.Error(t, err)
	assert.Equal(t, codes.Canceled, status.Code(err))
}

func TestStopNetworkUnknownID(t *testing.T) {
	service, _ := newTestService(t, &fake.Executor{})

	resp, err := service.StopNetwork(context.Background(), &protos.StopNetworkRequest{NetworkId: "nope"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "network not found")
}

func TestStopNetworkWithCleanupForgets(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	service, registry := newTestService(t, executor)

	initResp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err)
	require.True(t, initResp.Success, initResp.Message)

	stopResp, err := service.StopNetwork(context.Background(), &protos.StopNetworkRequest{
		NetworkId: initResp.NetworkId,
		Cleanup:   true,
	})
	require.NoError(t, err)
	assert.True(t, stopResp.Success, stopResp.Message)

	_, err = registry.Get(initResp.NetworkId)
	require.Error(t, err)
	assert.True(t, executor.CalledWith("down --volumes"))
}

func TestStopThenCleanupRemovesArtifacts(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	service, registry := newTestService(t, executor)

	initResp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err)
	require.True(t, initResp.Success, initResp.Message)

	net, err := registry.Get(initResp.NetworkId)
	require.NoError(t, err)
	_, err = os.Stat(net.Root)
	require.NoError(t, err)

	stopResp, err := service.StopNetwork(context.Background(), &protos.StopNetworkRequest{
		NetworkId: initResp.NetworkId,
	})
	require.NoError(t, err)
	require.True(t, stopResp.Success, stopResp.Message)
	_, err = registry.Get(initResp.NetworkId)
	require.NoError(t, err, "a plain stop keeps the network registered")

	// cleaning up the already stopped network must still remove its subtree
	stopResp, err = service.StopNetwork(context.Background(), &protos.StopNetworkRequest{
		NetworkId: initResp.NetworkId,
		Cleanup:   true,
	})
	require.NoError(t, err)
	require.True(t, stopResp.Success, stopResp.Message)

	_, err = registry.Get(initResp.NetworkId)
	require.Error(t, err)
	_, err = os.Stat(net.Root)
	assert.True(t, os.IsNotExist(err))
}

func TestGetNetworkStatusUnknownID(t *testing.T) {
	service, _ := newTestService(t, &fake.Executor{})

	resp, err := service.GetNetworkStatus(context.Background(), &protos.NetworkStatusRequest{NetworkId: "nope"})
	require.NoError(t, err)
	assert.False(t, resp.Running)
	assert.Contains(t, resp.Status, "network not found")
}

func TestGetNetworkStatus(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	service, _ := newTestService(t, executor)

	initResp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err)
	require.True(t, initResp.Success, initResp.Message)

	id := initResp.NetworkId
	executor.Responses = append([]fake.Response{{
		Match: "{{.Names}}|{{.Status}}",
		Output: []byte(id + "-peer0.org1.example.com|Up 2 minutes\n" +
			id + "-peer0.org2.example.com|Up 2 minutes\n" +
			id + "-orderer.example.com|Up 2 minutes\n"),
	}}, executor.Responses...)

	resp, err := service.GetNetworkStatus(context.Background(), &protos.NetworkStatusRequest{NetworkId: id})
	require.NoError(t, err)
	assert.True(t, resp.Running)
	assert.Equal(t, "running", resp.Status)

	require.Len(t, resp.Peers, 2)
	assert.Equal(t, "peer0.org1.example.com", resp.Peers[0].Name)
	assert.Equal(t, "Org1", resp.Peers[0].Organization)
	assert.Equal(t, "Up 2 minutes", resp.Peers[0].Status)
	assert.Equal(t, "localhost:7051", resp.Peers[0].Endpoint)

	require.Len(t, resp.Orderers, 1)
	assert.Equal(t, "orderer.example.com", resp.Orderers[0].Name)
	assert.Equal(t, "localhost:7050", resp.Orderers[0].Endpoint)
}

func TestDeployChaincodeUnknownNetwork(t *testing.T) {
	service, _ := newTestService(t, &fake.Executor{})

	resp, err := service.DeployChaincode(context.Background(), &protos.DeployChaincodeRequest{
		NetworkId: "nope",
		Name:      "basic",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "network not found")
}

func TestInvokeAndQuery(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{
		liveContainers(8),
		{Match: "chaincode invoke", Output: []byte("... txid [abc123] committed")},
		{Match: "chaincode query", Output: []byte("{\"k\":\"v\"}\n")},
	}}
	service, _ := newTestService(t, executor)

	initResp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err)
	require.True(t, initResp.Success, initResp.Message)

	invokeResp, err := service.InvokeTransaction(context.Background(), &protos.InvokeTransactionRequest{
		NetworkId: initResp.NetworkId,
		Chaincode: "basic",
		Function:  "put",
		Args:      []string{"k", "v"},
	})
	require.NoError(t, err)
	assert.True(t, invokeResp.Success, invokeResp.Message)
	assert.Equal(t, "abc123", invokeResp.TransactionId)

	queryResp, err := service.QueryLedger(context.Background(), &protos.QueryLedgerRequest{
		NetworkId: initResp.NetworkId,
		Chaincode: "basic",
		Function:  "get",
		Args:      []string{"k"},
	})
	require.NoError(t, err)
	assert.True(t, queryResp.Success, queryResp.Message)
	assert.Equal(t, `{"k":"v"}`, string(queryResp.Payload))
}

func TestShutdownStopsEverything(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	stopped := make(chan struct{})
	controller := network.New(executor, nil, network.Options{
		RootDir:      t.TempDir(),
		StartTimeout: 50 * time.Millisecond,
		JoinWait:     time.Millisecond,
	})
	registry := NewRegistry()
	service := NewNetworkService(controller, registry, func() { close(stopped) })

	initResp, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "testnet"})
	require.NoError(t, err)
	require.True(t, initResp.Success, initResp.Message)

	resp, err := service.Shutdown(context.Background(), &protos.ShutdownRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, registry.List())

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not request a process stop")
	}
}

func TestShutdownContinuesPastStopFailures(t *testing.T) {
	executor := &fake.Executor{Responses: []fake.Response{liveContainers(8)}}
	service, registry := newTestService(t, executor)

	first, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "alpha"})
	require.NoError(t, err)
	require.True(t, first.Success, first.Message)
	second, err := service.InitNetwork(context.Background(), &protos.InitNetworkRequest{Name: "beta"})
	require.NoError(t, err)
	require.True(t, second.Success, second.Message)

	// the first network's teardown fails; shutdown must still forget it
	executor.Responses = append([]fake.Response{{
		Match: "fabricx-" + first.NetworkId + " down",
		Err:   errors.New("exit status 1"),
	}}, executor.Responses...)

	resp, err := service.Shutdown(context.Background(), &protos.ShutdownRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, registry.List())
	assert.True(t, executor.CalledWith("fabricx-"+second.NetworkId+" down"))
}
