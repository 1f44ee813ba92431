/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"context"
	"os"
	"text/template"

	"github.com/pkg/errors"

	"github.com/temmyjay001/fabricx-sub000/network/commands"
	"github.com/temmyjay001/fabricx-sub000/network/topology"
)

// GenerateArtifacts renders the crypto-material and channel configuration
// descriptors and invokes the toolchain container twice: once to
// materialize the cryptographic key material, once to render the genesis
// block and the channel creation transaction. Both invocations observe ctx;
// on failure or cancellation the caller is expected to remove the partial
// subtree via RemoveArtifacts.
func (c *Controller) GenerateArtifacts(ctx context.Context, net *topology.Network) error {
	if err := c.generateConfigTree(net); err != nil {
		return err
	}

	logger.Infof("generating crypto material for network [%s]", net.ID)
	_, err := c.runTool(ctx, net, commands.Generate{
		Config: "/network/crypto-config.yaml",
		Output: "/network/crypto-config",
	})
	if err != nil {
		return asCryptoError(err)
	}

	logger.Infof("generating genesis block and channel transaction for network [%s]", net.ID)
	_, err = c.runTool(ctx, net, commands.OutputBlock{
		ChannelID:   "system-channel",
		Profile:     topology.GenesisProfile,
		ConfigPath:  "/network",
		OutputBlock: "/network/artifacts/genesis.block",
	})
	if err != nil {
		return asCryptoError(err)
	}

	_, err = c.runTool(ctx, net, commands.CreateChannelTx{
		ChannelID:             net.Channel.Name,
		Profile:               net.Channel.Profile,
		ConfigPath:            "/network",
		OutputCreateChannelTx: "/network/artifacts/" + net.Channel.Name + ".tx",
	})
	if err != nil {
		return asCryptoError(err)
	}
	return nil
}

// asCryptoError specializes a CommandError of the generation phase; context
// cancellation passes through untouched.
func asCryptoError(err error) error {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return &CryptoError{CommandError: *cmdErr}
	}
	return err
}

// generateConfigTree writes crypto-config.yaml and configtx.yaml under the
// network root, plus the artifacts directory the toolchain renders into.
func (c *Controller) generateConfigTree(net *topology.Network) error {
	if err := os.MkdirAll(net.ArtifactsPath(), 0o755); err != nil {
		return errors.Wrapf(err, "failed creating artifacts dir for network [%s]", net.ID)
	}
	if err := renderTemplate("crypto", topology.DefaultCryptoTemplate, net, net.CryptoConfigPath()); err != nil {
		return err
	}
	return renderTemplate("configtx", topology.DefaultConfigTxTemplate, net, net.ConfigTxPath())
}

func renderTemplate(name, text string, net *topology.Network, path string) error {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return errors.Wrapf(err, "failed parsing %s template", name)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed creating [%s]", path)
	}
	defer f.Close()
	if err := t.Execute(f, net); err != nil {
		return errors.Wrapf(err, "failed rendering %s template", name)
	}
	return nil
}
