/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

type ChannelCreate struct {
	ChannelID   string
	Orderer     string
	File        string
	OutputBlock string
}

func (c ChannelCreate) SessionName() string {
	return "peer-channel-create"
}

func (c ChannelCreate) Args() []string {
	return []string{
		"peer", "channel", "create",
		"--channelID", c.ChannelID,
		"--orderer", c.Orderer,
		"--file", c.File,
		"--outputBlock", c.OutputBlock,
		"--timeout", "15s",
	}
}

type ChannelJoin struct {
	BlockPath string
}

func (c ChannelJoin) SessionName() string {
	return "peer-channel-join"
}

func (c ChannelJoin) Args() []string {
	return []string{
		"peer", "channel", "join",
		"-b", c.BlockPath,
	}
}

type ChannelUpdate struct {
	ChannelID string
	Orderer   string
	File      string
}

func (c ChannelUpdate) SessionName() string {
	return "peer-channel-update"
}

func (c ChannelUpdate) Args() []string {
	return []string{
		"peer", "channel", "update",
		"--channelID", c.ChannelID,
		"--orderer", c.Orderer,
		"--file", c.File,
	}
}

type ChaincodePackage struct {
	Path       string
	Lang       string
	Label      string
	OutputFile string
}

func (c ChaincodePackage) SessionName() string {
	return "peer-lifecycle-chaincode-package"
}

func (c ChaincodePackage) Args() []string {
	return []string{
		"peer", "lifecycle", "chaincode", "package",
		"--path", c.Path,
		"--lang", c.Lang,
		"--label", c.Label,
		c.OutputFile,
	}
}

type ChaincodeInstall struct {
	PackageFile string
}

func (c ChaincodeInstall) SessionName() string {
	return "peer-lifecycle-chaincode-install"
}

func (c ChaincodeInstall) Args() []string {
	return []string{
		"peer", "lifecycle", "chaincode", "install",
		c.PackageFile,
	}
}

type ChaincodeQueryInstalled struct{}

func (c ChaincodeQueryInstalled) SessionName() string {
	return "peer-lifecycle-chaincode-queryinstalled"
}

func (c ChaincodeQueryInstalled) Args() []string {
	return []string{
		"peer", "lifecycle", "chaincode", "queryinstalled",
	}
}

type ChaincodeApproveForMyOrg struct {
	ChannelID       string
	Orderer         string
	Name            string
	Version         string
	PackageID       string
	Sequence        string
	SignaturePolicy string
	InitRequired    bool
}

func (c ChaincodeApproveForMyOrg) SessionName() string {
	return "peer-lifecycle-chaincode-approveformyorg"
}

func (c ChaincodeApproveForMyOrg) Args() []string {
	args := []string{
		"peer", "lifecycle", "chaincode", "approveformyorg",
		"--channelID", c.ChannelID,
		"--orderer", c.Orderer,
		"--name", c.Name,
		"--version", c.Version,
		"--package-id", c.PackageID,
		"--sequence", c.Sequence,
		"--signature-policy", c.SignaturePolicy,
	}
	if c.InitRequired {
		args = append(args, "--init-required")
	}
	return args
}

type ChaincodeCommit struct {
	ChannelID       string
	Orderer         string
	Name            string
	Version         string
	Sequence        string
	SignaturePolicy string
	InitRequired    bool
	PeerAddresses   []string
}

func (c ChaincodeCommit) SessionName() string {
	return "peer-lifecycle-chaincode-commit"
}

func (c ChaincodeCommit) Args() []string {
	args := []string{
		"peer", "lifecycle", "chaincode", "commit",
		"--channelID", c.ChannelID,
		"--orderer", c.Orderer,
		"--name", c.Name,
		"--version", c.Version,
		"--sequence", c.Sequence,
		"--signature-policy", c.SignaturePolicy,
	}
	if c.InitRequired {
		args = append(args, "--init-required")
	}
	for _, p := range c.PeerAddresses {
		args = append(args, "--peerAddresses", p)
	}
	return args
}

type ChaincodeInvoke struct {
	ChannelID     string
	Orderer       string
	Name          string
	Ctor          string
	Transient     string
	PeerAddresses []string
	WaitForEvent  bool
	IsInit        bool
}

func (c ChaincodeInvoke) SessionName() string {
	return "peer-chaincode-invoke"
}

func (c ChaincodeInvoke) Args() []string {
	args := []string{
		"peer", "chaincode", "invoke",
		"--channelID", c.ChannelID,
		"--orderer", c.Orderer,
		"--name", c.Name,
		"--ctor", c.Ctor,
	}
	if c.Transient != "" {
		args = append(args, "--transient", c.Transient)
	}
	for _, p := range c.PeerAddresses {
		args = append(args, "--peerAddresses", p)
	}
	if c.WaitForEvent {
		args = append(args, "--waitForEvent")
	}
	if c.IsInit {
		args = append(args, "--isInit")
	}
	return args
}

type ChaincodeQuery struct {
	ChannelID     string
	Name          string
	Ctor          string
	PeerAddresses []string
}

func (c ChaincodeQuery) SessionName() string {
	return "peer-chaincode-query"
}

func (c ChaincodeQuery) Args() []string {
	args := []string{
		"peer", "chaincode", "query",
		"--channelID", c.ChannelID,
		"--name", c.Name,
		"--ctor", c.Ctor,
	}
	for _, p := range c.PeerAddresses {
		args = append(args, "--peerAddresses", p)
	}
	return args
}
