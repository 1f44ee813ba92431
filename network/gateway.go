/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

// UnknownTransactionID is returned when no transaction identifier can be
// recognized in the tool output; the transaction may still have committed.
const UnknownTransactionID = "unknown"

// Invoke submits a transaction from the first organization's identity,
// addressed to every peer's endorsement endpoint and the orderer, waits for
// the ordering event, and extracts the transaction identifier from the
// command output.
func (c *Controller) Invoke(ctx context.Context, net *topology.Network, chaincode, function string, args []string) (string, []byte, error) {
	return c.invoke(ctx, net, chaincode, function, args, nil)
}

// InvokeWithTransient behaves like Invoke but also passes the given
// key to bytes map as transient data alongside the proposal.
func (c *Controller) InvokeWithTransient(ctx context.Context, net *topology.Network, chaincode, function string, args []string, transient map[string][]byte) (string, []byte, error) {
	return c.invoke(ctx, net, chaincode, function, args, transient)
}

func (c *Controller) invoke(ctx context.Context, net *topology.Network, chaincode, function string, args []string, transient map[string][]byte) (string, []byte, error) {
	ctor, err := chaincodeCtor(function, args)
	if err != nil {
		return "", nil, err
	}
	cmd := commands.ChaincodeInvoke{
		ChannelID:     net.Channel.Name,
		Orderer:       net.OrdererAddress(net.Orderer()),
		Name:          chaincode,
		Ctor:          ctor,
		PeerAddresses: c.allPeerAddresses(net),
		WaitForEvent:  true,
	}
	if len(transient) != 0 {
		raw, err := json.Marshal(transient)
		if err != nil {
			return "", nil, errors.Wrapf(err, "failed marshalling transient data")
		}
		cmd.Transient = string(raw)
	}

	org := net.Organizations[0]
	output, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, org.Peers[0]), cmd.Args()...)
	if err != nil {
		return "", output, err
	}
	return extractTransactionID(string(output)), output, nil
}

// Query issues a read-only call to a single peer and returns the response
// bytes unmodified, except for the trailing newline the peer CLI appends.
func (c *Controller) Query(ctx context.Context, net *topology.Network, chaincode, function string, args []string) ([]byte, error) {
	ctor, err := chaincodeCtor(function, args)
	if err != nil {
		return nil, err
	}
	org := net.Organizations[0]
	peer := org.Peers[0]
	output, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
		commands.ChaincodeQuery{
			ChannelID:     net.Channel.Name,
			Name:          chaincode,
			Ctor:          ctor,
			PeerAddresses: []string{net.PeerAddress(org, peer)},
		}.Args()...)
	if err != nil {
		return output, err
	}
	return bytes.TrimSuffix(output, []byte("\n")), nil
}

// chaincodeCtor builds the JSON constructor payload the peer CLI expects.
func chaincodeCtor(function string, args []string) (string, error) {
	if args == nil {
		args = []string{}
	}
	raw, err := json.Marshal(struct {
		Function string   `json:"function"`
		Args     []string `json:"Args"`
	}{Function: function, Args: args})
	if err != nil {
		return "", errors.Wrapf(err, "failed marshalling arguments of [%s]", function)
	}
	return string(raw), nil
}

// extractTransactionID pulls the transaction identifier out of the invoke
// command's textual output. Two marker variants exist across toolchain
// versions: "txid [abc]" and "txid: abc". When neither is present the
// sentinel UnknownTransactionID is returned; the transaction may still have
// gone through.
func extractTransactionID(output string) string {
	if idx := strings.Index(output, "txid ["); idx >= 0 {
		rest := output[idx+len("txid ["):]
		if end := strings.Index(rest, "]"); end >= 0 {
			if id := strings.TrimSpace(rest[:end]); id != "" {
				return id
			}
		}
	}
	if idx := strings.Index(output, "txid: "); idx >= 0 {
		rest := output[idx+len("txid: "):]
		end := strings.IndexFunc(rest, func(r rune) bool {
			return r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == '"' || r == ','
		})
		if end < 0 {
			end = len(rest)
		}
		if id := strings.TrimSpace(rest[:end]); id != "" {
			return id
		}
	}
	return UnknownTransactionID
}
