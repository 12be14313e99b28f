// Package api builds the structured values the CLI and other callers
// render: program information, transaction decodes, sighash results and
// generated keypairs. Every type here serializes to JSON and YAML.
package api

import (
	"github.com/suffix-labs/hal-simplicity/pkg/address"
	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/program"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

// ProgramInfo describes a resolved Simplicity program. The redeem
// fields are present only when the program was resolved with witness
// data.
type ProgramInfo struct {
	Jets                       string          `json:"jets" yaml:"jets"`
	CommitBase64               string          `json:"commit_base64" yaml:"commit_base64"`
	CommitDecode               string          `json:"commit_decode" yaml:"commit_decode"`
	TypeArrow                  string          `json:"type_arrow" yaml:"type_arrow"`
	Cmr                        simplicity.Cmr  `json:"cmr" yaml:"cmr"`
	LiquidAddressUnconf        string          `json:"liquid_address_unconf" yaml:"liquid_address_unconf"`
	LiquidTestnetAddressUnconf string          `json:"liquid_testnet_address_unconf" yaml:"liquid_testnet_address_unconf"`
	IsRedeem                   bool            `json:"is_redeem" yaml:"is_redeem"`
	RedeemBase64               string          `json:"redeem_base64,omitempty" yaml:"redeem_base64,omitempty"`
	WitnessHex                 *string         `json:"witness_hex,omitempty" yaml:"witness_hex,omitempty"`
	Amr                        *simplicity.Amr `json:"amr,omitempty" yaml:"amr,omitempty"`
	Ihr                        *simplicity.Ihr `json:"ihr,omitempty" yaml:"ihr,omitempty"`
}

// ProgramInfoFor assembles the info record for a resolved program.
func ProgramInfoFor(p *program.Program) *ProgramInfo {
	cmr := p.Cmr()
	info := &ProgramInfo{
		Jets:                       "core",
		CommitBase64:               p.Commit().String(),
		CommitDecode:               p.Commit().DisplayExpr(simplicity.DefaultExprBudget),
		TypeArrow:                  p.Commit().Arrow(),
		Cmr:                        cmr,
		LiquidAddressUnconf:        address.Derive(cmr, elements.Liquid),
		LiquidTestnetAddressUnconf: address.Derive(cmr, elements.LiquidTestnet),
		IsRedeem:                   p.IsRedeem(),
	}
	if rp := p.Redeem(); rp != nil {
		amr := rp.Amr()
		ihr := rp.Ihr()
		wit := rp.WitnessHex()
		info.RedeemBase64 = rp.String()
		info.WitnessHex = &wit
		info.Amr = &amr
		info.Ihr = &ihr
	}
	return info
}
