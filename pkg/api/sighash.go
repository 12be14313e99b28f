package api

import (
	"encoding/hex"
	"fmt"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/sighash"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
	"github.com/suffix-labs/hal-simplicity/pkg/utxo"
)

// SighashRequest carries the raw textual inputs of a sighash
// computation. Optional fields are empty strings.
type SighashRequest struct {
	TxHex        string
	InputIndex   uint32
	Cmr          string
	ControlBlock string
	GenesisHash  string
	SecretKey    string
	PublicKey    string
	Signature    string
	InputUtxos   []string
}

// SighashInfo is the result of a sighash computation. Signature is set
// when a secret key was supplied; ValidSignature when both a public key
// and a signature were.
type SighashInfo struct {
	Sighash        string  `json:"sighash" yaml:"sighash"`
	Signature      *string `json:"signature" yaml:"signature"`
	ValidSignature *bool   `json:"valid_signature" yaml:"valid_signature"`
}

// Sighash parses the request, assembles the signing environment and
// resolves the digest plus any signing or verification work.
func Sighash(req SighashRequest) (*SighashInfo, error) {
	tx, err := elements.ParseTxHex(req.TxHex)
	if err != nil {
		return nil, fmt.Errorf("decoding transaction: %w", err)
	}

	cmr, err := simplicity.ParseCmr(req.Cmr)
	if err != nil {
		return nil, fmt.Errorf("parsing cmr: %w", err)
	}

	cbBytes, err := hex.DecodeString(req.ControlBlock)
	if err != nil {
		return nil, fmt.Errorf("parsing control block hex: %w", err)
	}
	controlBlock, err := elements.ParseControlBlock(cbBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding control block: %w", err)
	}

	spent := make([]*utxo.SpentOutput, 0, len(req.InputUtxos))
	for i, desc := range req.InputUtxos {
		out, err := utxo.Parse(desc)
		if err != nil {
			return nil, fmt.Errorf("input UTXO %d: %w", i, err)
		}
		spent = append(spent, out)
	}

	genesis := sighash.DefaultGenesisHash
	if req.GenesisHash != "" {
		if genesis, err = sighash.ParseGenesisHash(req.GenesisHash); err != nil {
			return nil, err
		}
	}

	env, err := sighash.NewEnvironment(tx, req.InputIndex, spent, cmr, controlBlock, genesis)
	if err != nil {
		return nil, fmt.Errorf("building signing environment: %w", err)
	}

	var keys sighash.KeyMaterial
	if req.SecretKey != "" {
		if keys.SecretKey, err = sighash.ParseSecretKey(req.SecretKey); err != nil {
			return nil, err
		}
	}
	if req.PublicKey != "" {
		if keys.PublicKey, err = sighash.ParsePublicKey(req.PublicKey); err != nil {
			return nil, err
		}
	}
	if req.Signature != "" {
		if keys.Signature, err = sighash.ParseSignature(req.Signature); err != nil {
			return nil, err
		}
	}

	res, err := env.Resolve(keys)
	if err != nil {
		return nil, err
	}

	info := &SighashInfo{
		Sighash:        hex.EncodeToString(res.Sighash[:]),
		ValidSignature: res.ValidSignature,
	}
	if res.Signature != nil {
		sig := res.Signature.String()
		info.Signature = &sig
	}
	return info, nil
}
