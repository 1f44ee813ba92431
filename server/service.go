/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"strconv"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
	"github.com/temmyjay001/fabricx-sub000/server/protos"
)

var logger = flogging.MustGetLogger("fabricx.server")

// NetworkService exposes the network controller over gRPC. Failures of the
// underlying tooling are reported as soft failures (success=false plus a
// message) rather than transport errors; only context cancellation and
// deadline expiry surface as gRPC status errors.
type NetworkService struct {
	controller *network.Controller
	registry   *Registry

	// requestStop asks the hosting process to begin a graceful shutdown.
	requestStop func()
}

func NewNetworkService(controller *network.Controller, registry *Registry, requestStop func()) *NetworkService {
	if requestStop == nil {
		requestStop = func() {}
	}
	return &NetworkService{
		controller:  controller,
		registry:    registry,
		requestStop: requestStop,
	}
}

func (s *NetworkService) InitNetwork(ctx context.Context, req *protos.InitNetworkRequest) (*protos.InitNetworkResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	logger.Infof("init network [%s], orgs [%d], channel [%s]", req.Name, req.OrgCount, req.ChannelName)

	net, err := s.controller.Bootstrap(ctx, req.Name, req.ChannelName, int(req.OrgCount), req.CustomConfig)
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.InitNetworkResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}
	s.registry.Add(net)

	var endpoints []string
	for _, peer := range net.Peers() {
		endpoints = append(endpoints, net.PeerHostAddress(peer))
	}
	return &protos.InitNetworkResponse{
		Success:   true,
		Message:   "network is up",
		NetworkId: net.ID,
		Endpoints: endpoints,
	}, nil
}

func (s *NetworkService) DeployChaincode(ctx context.Context, req *protos.DeployChaincodeRequest) (*protos.DeployChaincodeResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return &protos.DeployChaincodeResponse{Success: false, Message: err.Error()}, nil
	}
	logger.Infof("deploy chaincode [%s] from [%s] on network [%s]", req.Name, req.Path, net.ID)

	chaincodeID, err := s.controller.DeployChaincode(ctx, net, &network.DeployRequest{
		Name:            req.Name,
		Path:            req.Path,
		Version:         req.Version,
		Language:        req.Language,
		EndorsementOrgs: req.EndorsementOrgs,
	})
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.DeployChaincodeResponse{Success: false, Message: err.Error()}, nil
	}
	return &protos.DeployChaincodeResponse{
		Success:     true,
		Message:     "chaincode committed",
		ChaincodeId: chaincodeID,
	}, nil
}

func (s *NetworkService) InvokeTransaction(ctx context.Context, req *protos.InvokeTransactionRequest) (*protos.InvokeTransactionResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return &protos.InvokeTransactionResponse{Success: false, Message: err.Error()}, nil
	}

	txID, payload, err := s.controller.Invoke(ctx, net, req.Chaincode, req.Function, req.Args)
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.InvokeTransactionResponse{Success: false, Message: err.Error()}, nil
	}
	return &protos.InvokeTransactionResponse{
		Success:       true,
		Message:       "transaction submitted",
		TransactionId: txID,
		Payload:       payload,
	}, nil
}

func (s *NetworkService) QueryLedger(ctx context.Context, req *protos.QueryLedgerRequest) (*protos.QueryLedgerResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return &protos.QueryLedgerResponse{Success: false, Message: err.Error()}, nil
	}

	payload, err := s.controller.Query(ctx, net, req.Chaincode, req.Function, req.Args)
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.QueryLedgerResponse{Success: false, Message: err.Error()}, nil
	}
	return &protos.QueryLedgerResponse{
		Success: true,
		Message: "query evaluated",
		Payload: payload,
	}, nil
}

func (s *NetworkService) GetNetworkStatus(ctx context.Context, req *protos.NetworkStatusRequest) (*protos.NetworkStatusResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return &protos.NetworkStatusResponse{Running: false, Status: err.Error()}, nil
	}

	st, err := s.controller.NetworkStatus(ctx, net)
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.NetworkStatusResponse{Running: false, Status: err.Error()}, nil
	}
	return buildStatusResponse(net, st), nil
}

func (s *NetworkService) StreamLogs(req *protos.StreamLogsRequest, srv protos.NetworkService_StreamLogsServer) error {
	ctx := srv.Context()
	if err := contextError(ctx); err != nil {
		return err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return status.Error(codes.NotFound, err.Error())
	}

	lines, err := s.controller.StreamLogs(ctx, net, req.Container)
	if err != nil {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return ctxErr
		}
		return status.Error(codes.Internal, err.Error())
	}
	for {
		select {
		case <-ctx.Done():
			return contextError(ctx)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := srv.Send(&protos.LogEntry{
				Timestamp: line.Timestamp.Unix(),
				Container: line.Container,
				Message:   line.Message,
			}); err != nil {
				return err
			}
		}
	}
}

func (s *NetworkService) StopNetwork(ctx context.Context, req *protos.StopNetworkRequest) (*protos.StopNetworkResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	net, err := s.registry.Get(req.NetworkId)
	if err != nil {
		return &protos.StopNetworkResponse{Success: false, Message: err.Error()}, nil
	}
	logger.Infof("stop network [%s], cleanup [%v]", net.ID, req.Cleanup)

	if err := s.controller.Stop(ctx, net, req.Cleanup); err != nil && !errors.Is(err, network.ErrNotStarted) {
		if ctxErr := contextError(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return &protos.StopNetworkResponse{Success: false, Message: err.Error()}, nil
	}
	if req.Cleanup {
		s.registry.Remove(net.ID)
	}
	return &protos.StopNetworkResponse{Success: true, Message: "network stopped"}, nil
}

// Shutdown stops every registered network best effort, then asks the
// hosting process to exit.
func (s *NetworkService) Shutdown(ctx context.Context, req *protos.ShutdownRequest) (*protos.ShutdownResponse, error) {
	if err := contextError(ctx); err != nil {
		return nil, err
	}
	logger.Infof("shutdown requested, stopping [%d] networks", len(s.registry.List()))

	for _, net := range s.registry.List() {
		if err := s.controller.Stop(ctx, net, true); err != nil && !errors.Is(err, network.ErrNotStarted) {
			logger.Warnf("failed stopping network [%s] during shutdown: %s", net.ID, err)
		}
		s.registry.Remove(net.ID)
	}
	go s.requestStop()
	return &protos.ShutdownResponse{Success: true, Message: "shutting down"}, nil
}

func buildStatusResponse(net *topology.Network, st *network.Status) *protos.NetworkStatusResponse {
	byName := map[string]string{}
	for _, c := range st.Containers {
		byName[c.Name] = c.Status
	}
	lookup := func(service string) string {
		if state, ok := byName[net.ID+"-"+service]; ok {
			return state
		}
		return "not running"
	}

	resp := &protos.NetworkStatusResponse{Running: st.Started && st.Running > 0}
	if resp.Running {
		resp.Status = "running"
	} else {
		resp.Status = "stopped"
	}
	for _, org := range net.Organizations {
		for _, peer := range org.Peers {
			host := net.PeerHost(org, peer)
			resp.Peers = append(resp.Peers, &protos.PeerStatus{
				Name:         host,
				Organization: org.Name,
				Status:       lookup(host),
				Endpoint:     net.PeerHostAddress(peer),
			})
		}
	}
	for _, orderer := range net.Orderers {
		resp.Orderers = append(resp.Orderers, &protos.OrdererStatus{
			Name:     net.OrdererHost(orderer),
			Status:   lookup(net.OrdererHost(orderer)),
			Endpoint: "localhost:" + strconv.Itoa(orderer.Port),
		})
	}
	return resp
}

// contextError translates a cancelled or expired request context into the
// matching gRPC status error, nil otherwise.
func contextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	return nil
}
