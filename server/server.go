/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package server hosts the network controller behind a gRPC endpoint.
package server

import (
	"context"
	"net"
	"os"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	network "github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/server/protos"
)

// GRPCServer serves the NetworkService on a listening address. It
// implements ifrit.Runner so the process supervisor drives its lifecycle.
type GRPCServer struct {
	address string
	server  *grpc.Server
	service *NetworkService
	stop    chan struct{}
}

// New wires a network controller and a fresh registry into a ready-to-run
// gRPC server listening on address.
func New(address string, controller *network.Controller) *GRPCServer {
	s := &GRPCServer{
		address: address,
		stop:    make(chan struct{}),
	}
	s.service = NewNetworkService(controller, NewRegistry(), s.RequestStop)
	s.server = grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unaryLoggingInterceptor())),
		grpc.StreamInterceptor(grpc_middleware.ChainStreamServer(streamLoggingInterceptor())),
	)
	protos.RegisterNetworkServiceServer(s.server, s.service)
	return s
}

// Service returns the façade backing this server, mostly for tests.
func (s *GRPCServer) Service() *NetworkService {
	return s.service
}

// RequestStop asks the serving loop to drain and exit. Safe to call more
// than once.
func (s *GRPCServer) RequestStop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

// Run listens on the configured address, signals readiness, and serves
// until a signal arrives or a stop is requested.
func (s *GRPCServer) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Wrapf(err, "failed listening on [%s]", s.address)
	}
	logger.Infof("network service listening on [%s]", listener.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()
	close(ready)

	select {
	case sig := <-signals:
		logger.Infof("received signal [%s], stopping", sig)
	case <-s.stop:
		logger.Infof("stop requested over the wire")
	case err := <-errCh:
		return err
	}
	s.server.GracefulStop()
	return nil
}

func unaryLoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warnf("unary call [%s] failed in [%s]: %s", info.FullMethod, time.Since(start), err)
		} else {
			logger.Debugf("unary call [%s] completed in [%s]", info.FullMethod, time.Since(start))
		}
		return resp, err
	}
}

func streamLoggingInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		if err != nil {
			logger.Warnf("stream [%s] closed with error after [%s]: %s", info.FullMethod, time.Since(start), err)
		} else {
			logger.Debugf("stream [%s] closed after [%s]", info.FullMethod, time.Since(start))
		}
		return err
	}
}
