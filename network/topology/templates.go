/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package topology

// DefaultCryptoTemplate is the cryptogen specification rendered for a
// planned Network.
const DefaultCryptoTemplate = `---
{{ with $w := . -}}
OrdererOrgs:{{ range .Orderers }}
- Name: Orderer
  Domain: {{ .Domain }}
  EnableNodeOUs: true
  Specs:
  - Hostname: {{ .Name }}
    SANS:
    - {{ $w.OrdererHost . }}
    - 0.0.0.0
    - localhost
    - 127.0.0.1
{{- end }}

PeerOrgs:{{ range .Organizations }}
- Name: {{ .Name }}
  Domain: {{ .Domain }}
  EnableNodeOUs: true
  Users:
    Count: 1
  Specs:{{ range .Peers }}
  - Hostname: {{ .Name }}
    SANS:
    - {{ .Name }}.{{ $w.Domain . }}
    - 0.0.0.0
    - localhost
    - 127.0.0.1
  {{- end }}
{{- end }}
{{- end }}
`

// DefaultConfigTxTemplate is the configtxgen specification rendered for a
// planned Network. It declares one profile for the genesis block and one
// for the channel creation transaction.
const DefaultConfigTxTemplate = `---
{{ with $w := . -}}
Organizations:
- &OrdererOrg
  Name: OrdererOrg
  ID: OrdererMSP
  MSPDir: crypto-config/ordererOrganizations/{{ $w.Orderer.Domain }}/msp
  Policies:
    Readers:
      Type: Signature
      Rule: "OR('OrdererMSP.member')"
    Writers:
      Type: Signature
      Rule: "OR('OrdererMSP.member')"
    Admins:
      Type: Signature
      Rule: "OR('OrdererMSP.admin')"
{{ range .Organizations }}
- &{{ .Name }}
  Name: {{ .Name }}
  ID: {{ .MSPID }}
  MSPDir: crypto-config/peerOrganizations/{{ .Domain }}/msp
  Policies:
    Readers:
      Type: Signature
      Rule: "OR('{{ .MSPID }}.admin', '{{ .MSPID }}.peer', '{{ .MSPID }}.client')"
    Writers:
      Type: Signature
      Rule: "OR('{{ .MSPID }}.admin', '{{ .MSPID }}.client')"
    Admins:
      Type: Signature
      Rule: "OR('{{ .MSPID }}.admin')"
    Endorsement:
      Type: Signature
      Rule: "OR('{{ .MSPID }}.peer')"
  AnchorPeers:{{ range .Peers }}
  - Host: {{ .Name }}.{{ $w.Domain . }}
    Port: {{ .Port }}
  {{- end }}
{{- end }}

Capabilities:
  Channel: &ChannelCapabilities
    V2_0: true
  Orderer: &OrdererCapabilities
    V2_0: true
  Application: &ApplicationCapabilities
    V2_0: true

Application: &ApplicationDefaults
  Organizations:
  Policies:
    Readers:
      Type: ImplicitMeta
      Rule: "ANY Readers"
    Writers:
      Type: ImplicitMeta
      Rule: "ANY Writers"
    Admins:
      Type: ImplicitMeta
      Rule: "MAJORITY Admins"
    LifecycleEndorsement:
      Type: ImplicitMeta
      Rule: "ANY Endorsement"
    Endorsement:
      Type: ImplicitMeta
      Rule: "ANY Endorsement"
  Capabilities:
    <<: *ApplicationCapabilities

Orderer: &OrdererDefaults
  OrdererType: solo
  Addresses:
  - {{ $w.OrdererAddress $w.Orderer }}
  BatchTimeout: 2s
  BatchSize:
    MaxMessageCount: 10
    AbsoluteMaxBytes: 99 MB
    PreferredMaxBytes: 512 KB
  Organizations:
  Policies:
    Readers:
      Type: ImplicitMeta
      Rule: "ANY Readers"
    Writers:
      Type: ImplicitMeta
      Rule: "ANY Writers"
    Admins:
      Type: ImplicitMeta
      Rule: "MAJORITY Admins"
    BlockValidation:
      Type: ImplicitMeta
      Rule: "ANY Writers"

Channel: &ChannelDefaults
  Policies:
    Readers:
      Type: ImplicitMeta
      Rule: "ANY Readers"
    Writers:
      Type: ImplicitMeta
      Rule: "ANY Writers"
    Admins:
      Type: ImplicitMeta
      Rule: "MAJORITY Admins"
  Capabilities:
    <<: *ChannelCapabilities

Profiles:
  GenesisProfile:
    <<: *ChannelDefaults
    Orderer:
      <<: *OrdererDefaults
      Organizations:
      - *OrdererOrg
      Capabilities:
        <<: *OrdererCapabilities
    Consortiums:
      SampleConsortium:
        Organizations:{{ range .Organizations }}
        - *{{ .Name }}
        {{- end }}
  ChannelProfile:
    Consortium: SampleConsortium
    <<: *ChannelDefaults
    Application:
      <<: *ApplicationDefaults
      Organizations:{{ range .Organizations }}
      - *{{ .Name }}
      {{- end }}
      Capabilities:
        <<: *ApplicationCapabilities
{{- end }}
`

// Domain resolves the owning organization's domain for a peer; used by the
// templates above.
func (n *Network) Domain(p *Peer) string {
	org := n.Organization(p.Organization)
	if org == nil {
		return ""
	}
	return org.Domain
}
