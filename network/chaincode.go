/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

const (
	DefaultChaincodeVersion  = "1.0"
	DefaultChaincodeLanguage = "golang"

	chaincodeSequence = "1"
)

// DeployRequest describes one chaincode deployment. EndorsementOrgs, when
// set, restricts the synthesized endorsement policy to the named
// organizations; an empty list means every organization in the network.
type DeployRequest struct {
	Name            string
	Path            string
	Version         string
	Language        string
	EndorsementOrgs []string
}

func (r *DeployRequest) defaults() {
	if r.Version == "" {
		r.Version = DefaultChaincodeVersion
	}
	if r.Language == "" {
		r.Language = DefaultChaincodeLanguage
	}
}

func (r *DeployRequest) label() string {
	return fmt.Sprintf("%s_%s", r.Name, r.Version)
}

// DeployChaincode drives the strictly ordered deployment pipeline:
// package, install on every peer, approve for every organization, commit,
// and a best-effort constructor invocation. Any phase failure before commit
// aborts the deployment; already installed packages are not retracted (no
// rollback). The returned identifier is bookkeeping for the caller; the
// chaincode is always addressed by name and channel.
func (c *Controller) DeployChaincode(ctx context.Context, net *topology.Network, req *DeployRequest) (string, error) {
	req.defaults()

	if err := c.packageChaincode(ctx, net, req); err != nil {
		return "", err
	}
	if err := c.installChaincode(ctx, net, req); err != nil {
		return "", err
	}
	policy := endorsementPolicy(net, req.EndorsementOrgs)
	if err := c.approveChaincode(ctx, net, req, policy); err != nil {
		return "", err
	}
	if err := c.commitChaincode(ctx, net, req, policy); err != nil {
		return "", err
	}
	c.initChaincode(ctx, net, req)

	return fmt.Sprintf("%s-%s", req.Name, uuid.New().String()[:8]), nil
}

// packageChaincode runs the packaging tool inside the toolchain container
// with the chaincode source mounted next to the network root, producing an
// archive labeled <name>_<version> under the artifacts subtree.
func (c *Controller) packageChaincode(ctx context.Context, net *topology.Network, req *DeployRequest) error {
	source, err := filepath.Abs(req.Path)
	if err != nil {
		return errors.Wrapf(err, "invalid chaincode path [%s]", req.Path)
	}
	logger.Infof("packaging chaincode [%s] from [%s]", req.label(), source)
	_, err = c.runDocker(ctx, commands.ToolRun{
		Image:   c.opts.ToolsImage,
		Mounts:  []string{net.Root + ":/network", source + ":/opt/chaincode"},
		WorkDir: "/network",
		Tool: commands.ChaincodePackage{
			Path:       "/opt/chaincode",
			Lang:       req.Language,
			Label:      req.label(),
			OutputFile: fmt.Sprintf("/network/artifacts/%s.tar.gz", req.label()),
		},
	}, map[string]string{"network": net.ID, "chaincode": req.Name})
	return err
}

// installChaincode copies the archive into the shared administrative
// container and installs it once per peer using that peer's environment
// identity. The loop is sequential; simplicity beats throughput at this
// scale. Any failure aborts the deployment, leaving earlier installs in
// place.
func (c *Controller) installChaincode(ctx context.Context, net *topology.Network, req *DeployRequest) error {
	archive := filepath.Join(net.ArtifactsPath(), req.label()+".tar.gz")
	target := fmt.Sprintf("/opt/%s.tar.gz", req.label())
	if err := c.CopyToContainer(ctx, net, archive, cliContainer(net), target); err != nil {
		return err
	}

	for _, org := range net.Organizations {
		for _, peer := range org.Peers {
			logger.Infof("installing chaincode [%s] on [%s]", req.label(), net.PeerHost(org, peer))
			_, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
				commands.ChaincodeInstall{PackageFile: target}.Args()...)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// approveChaincode resolves the opaque package identifier produced by the
// install phase and issues one approval per organization carrying the
// synthesized endorsement policy.
func (c *Controller) approveChaincode(ctx context.Context, net *topology.Network, req *DeployRequest, policy string) error {
	for _, org := range net.Organizations {
		peer := org.Peers[0]
		output, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
			commands.ChaincodeQueryInstalled{}.Args()...)
		if err != nil {
			return err
		}
		packageID := resolvePackageID(string(output), req.label())
		if packageID == "" {
			return errors.Wrapf(ErrPackageIDNotFound, "label [%s] not installed for [%s]", req.label(), org.Name)
		}

		logger.Infof("approving chaincode [%s] for [%s], package [%s]", req.label(), org.Name, packageID)
		_, err = c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, peer),
			commands.ChaincodeApproveForMyOrg{
				ChannelID:       net.Channel.Name,
				Orderer:         net.OrdererAddress(net.Orderer()),
				Name:            req.Name,
				Version:         req.Version,
				PackageID:       packageID,
				Sequence:        chaincodeSequence,
				SignaturePolicy: policy,
			}.Args()...)
		if err != nil {
			return err
		}
	}
	return nil
}

// commitChaincode issues one commit from the first organization's identity,
// addressed to every peer's endorsement endpoint.
func (c *Controller) commitChaincode(ctx context.Context, net *topology.Network, req *DeployRequest, policy string) error {
	org := net.Organizations[0]
	logger.Infof("committing chaincode [%s] on channel [%s]", req.label(), net.Channel.Name)
	_, err := c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, org.Peers[0]),
		commands.ChaincodeCommit{
			ChannelID:       net.Channel.Name,
			Orderer:         net.OrdererAddress(net.Orderer()),
			Name:            req.Name,
			Version:         req.Version,
			Sequence:        chaincodeSequence,
			SignaturePolicy: policy,
			PeerAddresses:   c.allPeerAddresses(net),
		}.Args()...)
	return err
}

// initChaincode attempts a constructor invocation. Many chaincodes have no
// constructor, so a failure is logged but never propagated.
func (c *Controller) initChaincode(ctx context.Context, net *topology.Network, req *DeployRequest) {
	org := net.Organizations[0]
	ctor, err := chaincodeCtor("init", nil)
	if err != nil {
		logger.Warnf("skipping init of chaincode [%s]: %s", req.Name, err)
		return
	}
	_, err = c.ExecInContainer(ctx, net, cliContainer(net), adminEnv(net, org, org.Peers[0]),
		commands.ChaincodeInvoke{
			ChannelID:     net.Channel.Name,
			Orderer:       net.OrdererAddress(net.Orderer()),
			Name:          req.Name,
			Ctor:          ctor,
			PeerAddresses: c.allPeerAddresses(net),
			WaitForEvent:  true,
			IsInit:        true,
		}.Args()...)
	if err != nil {
		logger.Infof("chaincode [%s] has no constructor or init failed: %s", req.Name, err)
	}
}

func (c *Controller) allPeerAddresses(net *topology.Network) []string {
	var addresses []string
	for _, org := range net.Organizations {
		for _, peer := range org.Peers {
			addresses = append(addresses, net.PeerAddress(org, peer))
		}
	}
	return addresses
}

// endorsementPolicy synthesizes an OR-of-members signature policy. When the
// caller names organizations, the policy covers exactly the named subset;
// when none of the names match (or none were given), it covers every
// organization in the network.
func endorsementPolicy(net *topology.Network, orgNames []string) string {
	var members []string
	for _, name := range orgNames {
		if org := net.Organization(name); org != nil {
			members = append(members, fmt.Sprintf("'%s.member'", org.MSPID))
		}
	}
	if len(members) == 0 {
		for _, org := range net.Organizations {
			members = append(members, fmt.Sprintf("'%s.member'", org.MSPID))
		}
	}
	return fmt.Sprintf("OR(%s)", strings.Join(members, ","))
}

// resolvePackageID textually matches the expected label in the output of a
// queryinstalled listing of the form
//
//	Package ID: basic_1.0:3a8c52d..., Label: basic_1.0
//
// and returns the opaque identifier, or "" when the label is absent.
func resolvePackageID(output, label string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Package ID:") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "Package ID:"))
		idx := strings.Index(rest, ", Label:")
		if idx < 0 {
			continue
		}
		if strings.TrimSpace(rest[idx+len(", Label:"):]) == label {
			return strings.TrimSpace(rest[:idx])
		}
	}
	return ""
}
