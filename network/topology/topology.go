/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package topology

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base host ports; every organization is offset by OrgPortStride so
	// that peer, CA, and state database ports never collide across
	// organizations for a bounded organization count.
	OrgPortStride = 1000

	BasePeerPort    = 7051
	BaseCAPort      = 7054
	BaseCouchDBPort = 5984
	OrdererPort     = 7050

	DefaultNetworkName = "fabricx"
	DefaultChannelName = "mychannel"
	DefaultOrgCount    = 2

	ChannelProfile = "ChannelProfile"
	GenesisProfile = "GenesisProfile"
)

// Organization models an administrative participant in the network. It is
// immutable after planning.
type Organization struct {
	Name   string  `yaml:"name,omitempty"`
	MSPID  string  `yaml:"msp_id,omitempty"`
	Domain string  `yaml:"domain,omitempty"`
	CAPort int     `yaml:"ca_port,omitempty"`
	Peers  []*Peer `yaml:"peers,omitempty"`
}

// Peer defines a peer instance and its owning organization.
type Peer struct {
	Name         string `yaml:"name,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	Port         int    `yaml:"port,omitempty"`
	CouchDB      bool   `yaml:"couchdb,omitempty"`
	CouchDBPort  int    `yaml:"couchdb_port,omitempty"`
}

// Orderer defines the single ordering node of this design.
type Orderer struct {
	Name   string `yaml:"name,omitempty"`
	Domain string `yaml:"domain,omitempty"`
	Port   int    `yaml:"port,omitempty"`
}

// Channel associates a channel name with a configtxgen profile name.
type Channel struct {
	Name    string `yaml:"name,omitempty"`
	Profile string `yaml:"profile,omitempty"`
}

// Network is the planned topology of one FabricX network instance plus the
// filesystem layout derived from its root directory. It is owned exclusively
// by the registry after bootstrap.
type Network struct {
	ID            string          `yaml:"id,omitempty"`
	Name          string          `yaml:"name,omitempty"`
	Root          string          `yaml:"root,omitempty"`
	Organizations []*Organization `yaml:"organizations,omitempty"`
	Orderers      []*Orderer      `yaml:"orderers,omitempty"`
	Channel       *Channel        `yaml:"channel,omitempty"`
}

// Plan computes the topology for the requested organization count. The
// result is deterministic given the count; the only randomness is the
// network ID itself.
func Plan(name, channelName string, orgCount int) *Network {
	if len(name) == 0 {
		name = DefaultNetworkName
	}
	if len(channelName) == 0 {
		channelName = DefaultChannelName
	}
	if orgCount <= 0 {
		orgCount = DefaultOrgCount
	}

	network := &Network{
		ID:   uuid.New().String()[:8],
		Name: name,
		Orderers: []*Orderer{{
			Name:   "orderer",
			Domain: "example.com",
			Port:   OrdererPort,
		}},
		Channel: &Channel{
			Name:    channelName,
			Profile: ChannelProfile,
		},
	}

	for i := 0; i < orgCount; i++ {
		org := &Organization{
			Name:   fmt.Sprintf("Org%d", i+1),
			MSPID:  fmt.Sprintf("Org%dMSP", i+1),
			Domain: fmt.Sprintf("org%d.example.com", i+1),
			CAPort: BaseCAPort + i*OrgPortStride,
		}
		org.Peers = append(org.Peers, &Peer{
			Name:         "peer0",
			Organization: org.Name,
			Port:         BasePeerPort + i*OrgPortStride,
			CouchDB:      true,
			CouchDBPort:  BaseCouchDBPort + i*OrgPortStride,
		})
		network.Organizations = append(network.Organizations, org)
	}
	return network
}

// Organization returns the named organization, matching case-insensitively
// on name and MSP identifier, or nil.
func (n *Network) Organization(name string) *Organization {
	for _, org := range n.Organizations {
		if strings.EqualFold(org.Name, name) || strings.EqualFold(org.MSPID, name) {
			return org
		}
	}
	return nil
}

// Peers returns every peer of every organization, in organization order.
func (n *Network) Peers() []*Peer {
	var peers []*Peer
	for _, org := range n.Organizations {
		peers = append(peers, org.Peers...)
	}
	return peers
}

func (n *Network) Orderer() *Orderer {
	return n.Orderers[0]
}

// PeerHost is the in-network host name of a peer, which doubles as its
// container service name.
func (n *Network) PeerHost(org *Organization, p *Peer) string {
	return fmt.Sprintf("%s.%s", p.Name, org.Domain)
}

// PeerAddress is the in-network endorsement endpoint of a peer.
func (n *Network) PeerAddress(org *Organization, p *Peer) string {
	return fmt.Sprintf("%s:%d", n.PeerHost(org, p), p.Port)
}

// PeerHostAddress is the host-published endpoint of a peer.
func (n *Network) PeerHostAddress(p *Peer) string {
	return fmt.Sprintf("localhost:%d", p.Port)
}

// OrdererHost is the in-network host name of the orderer.
func (n *Network) OrdererHost(o *Orderer) string {
	return fmt.Sprintf("%s.%s", o.Name, o.Domain)
}

// OrdererAddress is the in-network endpoint of the orderer.
func (n *Network) OrdererAddress(o *Orderer) string {
	return fmt.Sprintf("%s:%d", n.OrdererHost(o), o.Port)
}

// Filesystem layout. Everything lives under Root and is removed as a unit
// on cleanup; nothing here survives a process restart.

func (n *Network) CryptoConfigPath() string {
	return filepath.Join(n.Root, "crypto-config.yaml")
}

func (n *Network) CryptoPath() string {
	return filepath.Join(n.Root, "crypto-config")
}

func (n *Network) ConfigTxPath() string {
	return filepath.Join(n.Root, "configtx.yaml")
}

func (n *Network) ArtifactsPath() string {
	return filepath.Join(n.Root, "artifacts")
}

func (n *Network) ComposeFilePath() string {
	return filepath.Join(n.ArtifactsPath(), "docker-compose.yaml")
}

func (n *Network) OutputBlockPath() string {
	return filepath.Join(n.ArtifactsPath(), "genesis.block")
}

func (n *Network) CreateChannelTxPath() string {
	return filepath.Join(n.ArtifactsPath(), n.Channel.Name+".tx")
}

func (n *Network) AnchorUpdatePath(org *Organization) string {
	return filepath.Join(n.ArtifactsPath(), org.MSPID+"anchors.tx")
}

// OrgAdminMSPDir is the cryptogen-materialized admin MSP of an organization,
// relative to the crypto subtree.
func (n *Network) OrgAdminMSPDir(org *Organization) string {
	return filepath.Join(
		"peerOrganizations", org.Domain,
		"users", fmt.Sprintf("Admin@%s", org.Domain), "msp",
	)
}

// PeerMSPDir is the local MSP of a peer, relative to the crypto subtree.
func (n *Network) PeerMSPDir(org *Organization, p *Peer) string {
	return filepath.Join(
		"peerOrganizations", org.Domain,
		"peers", n.PeerHost(org, p), "msp",
	)
}

// OrdererMSPDir is the local MSP of the orderer, relative to the crypto
// subtree.
func (n *Network) OrdererMSPDir(o *Orderer) string {
	return filepath.Join(
		"ordererOrganizations", o.Domain,
		"orderers", n.OrdererHost(o), "msp",
	)
}
