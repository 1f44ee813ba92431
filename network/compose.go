/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

const composeNetwork = "fabricx"

// Manifest is the container-group description handed to the container
// runtime. One service per orderer, one CA per organization, one state
// database and one peer service per peer, plus a shared administrative cli
// service carrying every organization's admin identity.
type Manifest struct {
	Version  string                 `yaml:"version"`
	Networks map[string]interface{} `yaml:"networks"`
	Volumes  map[string]interface{} `yaml:"volumes,omitempty"`
	Services map[string]*Service    `yaml:"services"`
}

type Service struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	Command       string   `yaml:"command,omitempty"`
	Environment   []string `yaml:"environment,omitempty"`
	WorkingDir    string   `yaml:"working_dir,omitempty"`
	Ports         []string `yaml:"ports,omitempty"`
	Volumes       []string `yaml:"volumes,omitempty"`
	DependsOn     []string `yaml:"depends_on,omitempty"`
	Networks      []string `yaml:"networks"`
	Tty           bool     `yaml:"tty,omitempty"`
}

// Synthesize is a pure function from a planned Network to its Manifest.
func (c *Controller) Synthesize(net *topology.Network) *Manifest {
	manifest := &Manifest{
		Version:  "3.7",
		Networks: map[string]interface{}{composeNetwork: nil},
		Volumes:  map[string]interface{}{},
		Services: map[string]*Service{},
	}

	orderer := net.Orderer()
	ordererHost := net.OrdererHost(orderer)
	ordererVolume := fmt.Sprintf("%s-data", ordererHost)
	manifest.Volumes[ordererVolume] = nil
	manifest.Services[ordererHost] = &Service{
		Image:         c.opts.OrdererImage,
		ContainerName: containerName(net, ordererHost),
		Command:       "orderer",
		Environment: []string{
			"FABRIC_LOGGING_SPEC=INFO",
			"ORDERER_GENERAL_LISTENADDRESS=0.0.0.0",
			fmt.Sprintf("ORDERER_GENERAL_LISTENPORT=%d", orderer.Port),
			"ORDERER_GENERAL_BOOTSTRAPMETHOD=file",
			"ORDERER_GENERAL_BOOTSTRAPFILE=/var/hyperledger/orderer/genesis.block",
			"ORDERER_GENERAL_LOCALMSPID=OrdererMSP",
			"ORDERER_GENERAL_LOCALMSPDIR=/var/hyperledger/orderer/msp",
			"ORDERER_GENERAL_TLS_ENABLED=false",
		},
		Ports: []string{fmt.Sprintf("%d:%d", orderer.Port, orderer.Port)},
		Volumes: []string{
			fmt.Sprintf("%s:/var/hyperledger/orderer/genesis.block", net.OutputBlockPath()),
			fmt.Sprintf("%s/%s:/var/hyperledger/orderer/msp", net.CryptoPath(), net.OrdererMSPDir(orderer)),
			fmt.Sprintf("%s:/var/hyperledger/production/orderer", ordererVolume),
		},
		Networks: []string{composeNetwork},
	}

	for _, org := range net.Organizations {
		caHost := "ca." + org.Domain
		manifest.Services[caHost] = &Service{
			Image:         c.opts.CAImage,
			ContainerName: containerName(net, caHost),
			Command:       fmt.Sprintf("sh -c 'fabric-ca-server start -b admin:adminpw --port %d'", org.CAPort),
			Environment: []string{
				"FABRIC_CA_HOME=/etc/hyperledger/fabric-ca-server",
				fmt.Sprintf("FABRIC_CA_SERVER_CA_NAME=%s", caHost),
				"FABRIC_CA_SERVER_TLS_ENABLED=false",
			},
			Ports:    []string{fmt.Sprintf("%d:%d", org.CAPort, org.CAPort)},
			Networks: []string{composeNetwork},
		}

		for _, peer := range org.Peers {
			peerHost := net.PeerHost(org, peer)
			var dependsOn []string

			if peer.CouchDB {
				couchHost := "couchdb." + org.Domain
				manifest.Services[couchHost] = &Service{
					Image:         c.opts.CouchDBImage,
					ContainerName: containerName(net, couchHost),
					Environment: []string{
						"COUCHDB_USER=admin",
						"COUCHDB_PASSWORD=adminpw",
					},
					Ports:    []string{fmt.Sprintf("%d:5984", peer.CouchDBPort)},
					Networks: []string{composeNetwork},
				}
				dependsOn = append(dependsOn, couchHost)
			}

			peerVolume := fmt.Sprintf("%s-data", peerHost)
			manifest.Volumes[peerVolume] = nil
			service := &Service{
				Image:         c.opts.PeerImage,
				ContainerName: containerName(net, peerHost),
				Command:       "peer node start",
				Environment: []string{
					"FABRIC_LOGGING_SPEC=INFO",
					fmt.Sprintf("CORE_PEER_ID=%s", peerHost),
					fmt.Sprintf("CORE_PEER_ADDRESS=%s:%d", peerHost, peer.Port),
					fmt.Sprintf("CORE_PEER_LISTENADDRESS=0.0.0.0:%d", peer.Port),
					fmt.Sprintf("CORE_PEER_GOSSIP_EXTERNALENDPOINT=%s:%d", peerHost, peer.Port),
					fmt.Sprintf("CORE_PEER_LOCALMSPID=%s", org.MSPID),
					"CORE_PEER_MSPCONFIGPATH=/etc/hyperledger/fabric/msp",
					"CORE_PEER_TLS_ENABLED=false",
					"CORE_VM_ENDPOINT=unix:///host/var/run/docker.sock",
					fmt.Sprintf("CORE_VM_DOCKER_HOSTCONFIG_NETWORKMODE=%s_%s", projectName(net), composeNetwork),
				},
				WorkingDir: "/opt/gopath/src/github.com/hyperledger/fabric/peer",
				Ports:      []string{fmt.Sprintf("%d:%d", peer.Port, peer.Port)},
				Volumes: []string{
					"/var/run/docker.sock:/host/var/run/docker.sock",
					fmt.Sprintf("%s/%s:/etc/hyperledger/fabric/msp", net.CryptoPath(), net.PeerMSPDir(org, peer)),
					fmt.Sprintf("%s:/var/hyperledger/production", peerVolume),
				},
				DependsOn: dependsOn,
				Networks:  []string{composeNetwork},
			}
			if peer.CouchDB {
				service.Environment = append(service.Environment,
					"CORE_LEDGER_STATE_STATEDATABASE=CouchDB",
					fmt.Sprintf("CORE_LEDGER_STATE_COUCHDBCONFIG_COUCHDBADDRESS=couchdb.%s:5984", org.Domain),
					"CORE_LEDGER_STATE_COUCHDBCONFIG_USERNAME=admin",
					"CORE_LEDGER_STATE_COUCHDBCONFIG_PASSWORD=adminpw",
				)
			}
			manifest.Services[peerHost] = service
		}
	}

	var peerHosts []string
	for _, org := range net.Organizations {
		for _, peer := range org.Peers {
			peerHosts = append(peerHosts, net.PeerHost(org, peer))
		}
	}
	manifest.Services["cli"] = &Service{
		Image:         c.opts.ToolsImage,
		ContainerName: cliContainer(net),
		Command:       "/bin/bash",
		Tty:           true,
		Environment: []string{
			"GOPATH=/opt/gopath",
			"FABRIC_LOGGING_SPEC=INFO",
			"CORE_PEER_TLS_ENABLED=false",
		},
		WorkingDir: "/etc/hyperledger",
		Volumes: []string{
			fmt.Sprintf("%s:/etc/hyperledger/crypto-config", net.CryptoPath()),
			fmt.Sprintf("%s:/etc/hyperledger/artifacts", net.ArtifactsPath()),
		},
		DependsOn: append(peerHosts, net.OrdererHost(orderer)),
		Networks:  []string{composeNetwork},
	}

	return manifest
}

// WriteComposeFile synthesizes the manifest and writes it next to the other
// generated artifacts. The only failure mode is a filesystem write error.
func (c *Controller) WriteComposeFile(net *topology.Network) error {
	manifest := c.Synthesize(net)
	raw, err := yaml.Marshal(manifest)
	if err != nil {
		return errors.Wrapf(err, "failed marshalling manifest for network [%s]", net.ID)
	}
	if err := os.WriteFile(net.ComposeFilePath(), raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed writing manifest for network [%s]", net.ID)
	}
	return nil
}
