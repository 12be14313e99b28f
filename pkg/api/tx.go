package api

import (
	"encoding/hex"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
)

// Known asset labels, display-order asset ID to name.
var assetLabels = map[string]string{
	"6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d": "liquid_bitcoin",
	"144c654344aa716d6f3abcc1ca90e5641e4e2a7f633bc09fe3baf64585819a49": "liquid_testnet_bitcoin",
}

// TxInfo is the decoded view of an Elements transaction.
type TxInfo struct {
	Txid     string       `json:"txid" yaml:"txid"`
	Wtxid    string       `json:"wtxid" yaml:"wtxid"`
	Hash     string       `json:"hash" yaml:"hash"`
	Size     int          `json:"size" yaml:"size"`
	Weight   int          `json:"weight" yaml:"weight"`
	Vsize    int          `json:"vsize" yaml:"vsize"`
	Version  uint32       `json:"version" yaml:"version"`
	Locktime uint32       `json:"locktime" yaml:"locktime"`
	Inputs   []InputInfo  `json:"inputs" yaml:"inputs"`
	Outputs  []OutputInfo `json:"outputs" yaml:"outputs"`
}

// ScriptSigInfo renders an input script.
type ScriptSigInfo struct {
	Hex string `json:"hex" yaml:"hex"`
	Asm string `json:"asm" yaml:"asm"`
}

// ScriptPubKeyInfo renders an output script with its classification and,
// when the script pays to a standard template, its address.
type ScriptPubKeyInfo struct {
	Hex     string  `json:"hex" yaml:"hex"`
	Asm     string  `json:"asm" yaml:"asm"`
	Type    string  `json:"type" yaml:"type"`
	Address *string `json:"address,omitempty" yaml:"address,omitempty"`
}

// AssetInfo renders a confidential asset field.
type AssetInfo struct {
	Type       string `json:"type" yaml:"type"`
	Asset      string `json:"asset,omitempty" yaml:"asset,omitempty"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
	Commitment string `json:"commitment,omitempty" yaml:"commitment,omitempty"`
}

// ValueInfo renders a confidential value field.
type ValueInfo struct {
	Type       string  `json:"type" yaml:"type"`
	Value      *uint64 `json:"value,omitempty" yaml:"value,omitempty"`
	Commitment string  `json:"commitment,omitempty" yaml:"commitment,omitempty"`
}

// NonceInfo renders a confidential nonce field.
type NonceInfo struct {
	Type       string `json:"type" yaml:"type"`
	Commitment string `json:"commitment,omitempty" yaml:"commitment,omitempty"`
}

// IssuanceInfo renders the asset issuance attached to an input.
type IssuanceInfo struct {
	Nonce         string    `json:"nonce" yaml:"nonce"`
	Entropy       string    `json:"entropy" yaml:"entropy"`
	Amount        ValueInfo `json:"amount" yaml:"amount"`
	InflationKeys ValueInfo `json:"inflation_keys" yaml:"inflation_keys"`
}

// InputWitnessInfo renders the witness section of an input.
type InputWitnessInfo struct {
	AmountRangeproof        *string  `json:"amount_rangeproof" yaml:"amount_rangeproof"`
	InflationKeysRangeproof *string  `json:"inflation_keys_rangeproof" yaml:"inflation_keys_rangeproof"`
	ScriptWitness           []string `json:"script_witness,omitempty" yaml:"script_witness,omitempty"`
	PeginWitness            []string `json:"pegin_witness,omitempty" yaml:"pegin_witness,omitempty"`
}

// OutputWitnessInfo renders the witness section of an output.
type OutputWitnessInfo struct {
	SurjectionProof *string `json:"surjection_proof" yaml:"surjection_proof"`
	Rangeproof      *string `json:"rangeproof" yaml:"rangeproof"`
}

// InputInfo is the decoded view of one input.
type InputInfo struct {
	Prevout     string           `json:"prevout" yaml:"prevout"`
	Txid        string           `json:"txid" yaml:"txid"`
	Vout        uint32           `json:"vout" yaml:"vout"`
	ScriptSig   ScriptSigInfo    `json:"script_sig" yaml:"script_sig"`
	Sequence    uint32           `json:"sequence" yaml:"sequence"`
	IsPegin     bool             `json:"is_pegin" yaml:"is_pegin"`
	HasIssuance bool             `json:"has_issuance" yaml:"has_issuance"`
	Issuance    *IssuanceInfo    `json:"issuance,omitempty" yaml:"issuance,omitempty"`
	Witness     InputWitnessInfo `json:"witness" yaml:"witness"`
}

// OutputInfo is the decoded view of one output.
type OutputInfo struct {
	ScriptPubKey ScriptPubKeyInfo  `json:"script_pub_key" yaml:"script_pub_key"`
	Asset        AssetInfo         `json:"asset" yaml:"asset"`
	Value        ValueInfo         `json:"value" yaml:"value"`
	Nonce        NonceInfo         `json:"nonce" yaml:"nonce"`
	Witness      OutputWitnessInfo `json:"witness" yaml:"witness"`
	IsFee        bool              `json:"is_fee" yaml:"is_fee"`
}

// TxInfoFor assembles the decoded view of a transaction, rendering
// addresses under the given network parameters.
func TxInfoFor(tx *elements.Transaction, params elements.AddressParams) *TxInfo {
	info := &TxInfo{
		Txid:     tx.TxID().String(),
		Wtxid:    tx.WTxID().String(),
		Hash:     tx.WTxID().String(),
		Size:     tx.Size(),
		Weight:   tx.Weight(),
		Vsize:    tx.VSize(),
		Version:  tx.Version,
		Locktime: tx.LockTime,
	}

	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		rec := InputInfo{
			Prevout: in.PreviousOutput.String(),
			Txid:    in.PreviousOutput.Txid.String(),
			Vout:    in.PreviousOutput.Vout,
			ScriptSig: ScriptSigInfo{
				Hex: in.ScriptSig.Hex(),
				Asm: in.ScriptSig.Asm(),
			},
			Sequence:    in.Sequence,
			IsPegin:     in.IsPegin,
			HasIssuance: in.Issuance != nil,
			Witness: InputWitnessInfo{
				AmountRangeproof:        optionalHex(in.Witness.AmountRangeproof),
				InflationKeysRangeproof: optionalHex(in.Witness.InflationKeysRangeproof),
				ScriptWitness:           hexVector(in.Witness.ScriptWitness),
				PeginWitness:            hexVector(in.Witness.PeginWitness),
			},
		}
		if iss := in.Issuance; iss != nil {
			rec.Issuance = &IssuanceInfo{
				Nonce:         hex.EncodeToString(iss.Nonce[:]),
				Entropy:       hex.EncodeToString(iss.Entropy[:]),
				Amount:        valueInfo(iss.Amount),
				InflationKeys: valueInfo(iss.InflationKeys),
			}
		}
		info.Inputs = append(info.Inputs, rec)
	}

	for i := range tx.Outputs {
		out := &tx.Outputs[i]
		spk := ScriptPubKeyInfo{
			Hex:  out.ScriptPubKey.Hex(),
			Asm:  out.ScriptPubKey.Asm(),
			Type: out.ScriptPubKey.Type(),
		}
		if addr, ok := params.AddressFromScript(out.ScriptPubKey); ok {
			spk.Address = &addr
		}
		info.Outputs = append(info.Outputs, OutputInfo{
			ScriptPubKey: spk,
			Asset:        assetInfo(out.Asset),
			Value:        valueInfo(out.Value),
			Nonce:        nonceInfo(out.Nonce),
			Witness: OutputWitnessInfo{
				SurjectionProof: optionalHex(out.Witness.SurjectionProof),
				Rangeproof:      optionalHex(out.Witness.Rangeproof),
			},
			IsFee: out.ScriptPubKey.IsFee(),
		})
	}

	return info
}

func assetInfo(a elements.Asset) AssetInfo {
	info := AssetInfo{Type: a.Kind()}
	if a.Explicit != nil {
		info.Asset = a.Explicit.String()
		info.Label = assetLabels[info.Asset]
	} else if a.Commitment != nil {
		info.Commitment = hex.EncodeToString(a.Commitment)
	}
	return info
}

func valueInfo(v elements.Value) ValueInfo {
	info := ValueInfo{Type: v.Kind()}
	if v.Explicit != nil {
		info.Value = v.Explicit
	} else if v.Commitment != nil {
		info.Commitment = hex.EncodeToString(v.Commitment)
	}
	return info
}

func nonceInfo(n elements.Nonce) NonceInfo {
	info := NonceInfo{Type: n.Kind()}
	if n.Commitment != nil {
		info.Commitment = hex.EncodeToString(n.Commitment)
	}
	return info
}

func optionalHex(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := hex.EncodeToString(b)
	return &s
}

func hexVector(v [][]byte) []string {
	if len(v) == 0 {
		return nil
	}
	out := make([]string, len(v))
	for i, item := range v {
		out[i] = hex.EncodeToString(item)
	}
	return out
}
