/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

// Registry tracks the networks this server instance has bootstrapped,
// keyed by network identifier.
type Registry struct {
	lock     sync.RWMutex
	networks map[string]*topology.Network
}

func NewRegistry() *Registry {
	return &Registry{networks: map[string]*topology.Network{}}
}

func (r *Registry) Add(net *topology.Network) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.networks[net.ID] = net
}

func (r *Registry) Get(id string) (*topology.Network, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	net, ok := r.networks[id]
	if !ok {
		return nil, errors.Wrapf(network.ErrNetworkNotFound, "network [%s]", id)
	}
	return net, nil
}

func (r *Registry) Remove(id string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.networks, id)
}

func (r *Registry) List() []*topology.Network {
	r.lock.RLock()
	defer r.lock.RUnlock()
	nets := make([]*topology.Network, 0, len(r.networks))
	for _, net := range r.networks {
		nets = append(nets, net)
	}
	return nets
}
