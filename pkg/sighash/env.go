// Package sighash assembles the signing environment for a
// Taproot-Simplicity input on an Elements chain and computes the digest
// its signature commits to.
//
// The digest is built the way the Simplicity transaction environment
// does it: a tree of SHA-256 layer digests over the transaction, the
// spent outputs, and the taproot path, combined under the chain's
// genesis hash. It corresponds to the sig-all-hash jet of the Elements
// jet family; every field the environment carries feeds the digest, so
// changing any of them changes the result.
package sighash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
	"github.com/suffix-labs/hal-simplicity/pkg/utxo"
)

// DefaultGenesisHash is the genesis block hash assumed when the caller
// does not name a chain. It identifies the regtest network the
// Simplicity web IDE produces transactions for and must be reproduced
// byte for byte.
var DefaultGenesisHash = [32]byte{
	0xc1, 0xb1, 0x6a, 0xe2, 0x4f, 0x24, 0x23, 0xae, 0xa2, 0xea, 0x34, 0x55, 0x22, 0x92,
	0x79, 0x3b, 0x5b, 0x5e, 0x82, 0x99, 0x9a, 0x1e, 0xed, 0x81, 0xd5, 0x6a, 0xee, 0x52,
	0x8e, 0xda, 0x71, 0xa7,
}

// ParseGenesisHash parses a hex block hash in display order.
func ParseGenesisHash(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("parsing genesis hash: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("genesis hash must be 32 bytes, got %d", len(raw))
	}
	for i := range out {
		out[i] = raw[31-i]
	}
	return out, nil
}

// Environment is everything the signature digest of one input depends
// on. It is ephemeral: build it, take the digest, discard it.
type Environment struct {
	Tx           *elements.Transaction
	InputIndex   uint32
	SpentOutputs []*utxo.SpentOutput
	Cmr          simplicity.Cmr
	ControlBlock *elements.ControlBlock
	GenesisHash  [32]byte

	// AnnotatedIhr is a reserved slot for the redemption identity of
	// the program being spent. Upstream tooling does not populate it
	// yet; it is carried so the call shape stays stable, and it is
	// always absent.
	AnnotatedIhr *simplicity.Ihr
}

// NewEnvironment assembles a signing environment. The spent outputs
// must match the transaction's inputs one to one; that is a structural
// precondition of the digest, not a recoverable condition.
func NewEnvironment(
	tx *elements.Transaction,
	inputIndex uint32,
	spentOutputs []*utxo.SpentOutput,
	cmr simplicity.Cmr,
	controlBlock *elements.ControlBlock,
	genesisHash [32]byte,
) (*Environment, error) {
	if len(spentOutputs) != len(tx.Inputs) {
		return nil, fmt.Errorf(
			"got %d spent outputs for a transaction with %d inputs", len(spentOutputs), len(tx.Inputs))
	}
	if int(inputIndex) >= len(tx.Inputs) {
		return nil, fmt.Errorf(
			"input index %d out of range for %d inputs", inputIndex, len(tx.Inputs))
	}
	return &Environment{
		Tx:           tx,
		InputIndex:   inputIndex,
		SpentOutputs: spentOutputs,
		Cmr:          cmr,
		ControlBlock: controlBlock,
		GenesisHash:  genesisHash,
	}, nil
}

// SighashAll computes the digest a signature for this input commits to.
func (env *Environment) SighashAll() [32]byte {
	txHash := env.txHash()
	tapEnvHash := env.tapEnvHash()

	h := sha256.New()
	h.Write(env.GenesisHash[:])
	h.Write(env.GenesisHash[:])
	h.Write(txHash[:])
	h.Write(tapEnvHash[:])
	binary.Write(h, binary.BigEndian, env.InputIndex)
	return sum32(h.Sum(nil))
}

// txHash combines the per-section layer digests of the transaction and
// its spent outputs.
func (env *Environment) txHash() [32]byte {
	inputsHash := env.inputsHash()
	outputsHash := env.outputsHash()
	issuancesHash := env.issuancesHash()
	utxosHash := env.inputUtxosHash()

	h := sha256.New()
	binary.Write(h, binary.BigEndian, env.Tx.Version)
	binary.Write(h, binary.BigEndian, env.Tx.LockTime)
	h.Write(inputsHash[:])
	h.Write(outputsHash[:])
	h.Write(issuancesHash[:])
	h.Write(utxosHash[:])
	return sum32(h.Sum(nil))
}

// inputsHash combines the outpoint, sequence and annex layers.
func (env *Environment) inputsHash() [32]byte {
	outpoints := sha256.New()
	sequences := sha256.New()
	annexes := sha256.New()
	for i := range env.Tx.Inputs {
		in := &env.Tx.Inputs[i]
		if in.IsPegin {
			outpoints.Write([]byte{0x01})
		} else {
			outpoints.Write([]byte{0x00})
		}
		outpoints.Write(in.PreviousOutput.Txid[:])
		binary.Write(outpoints, binary.BigEndian, in.PreviousOutput.Vout)
		binary.Write(sequences, binary.BigEndian, in.Sequence)
		// Annexes are not carried on Elements Simplicity inputs; each
		// contributes an explicit absence marker.
		annexes.Write([]byte{0x00})
	}

	h := sha256.New()
	h.Write(outpoints.Sum(nil))
	h.Write(sequences.Sum(nil))
	h.Write(annexes.Sum(nil))
	return sum32(h.Sum(nil))
}

// outputsHash combines the asset/amount, nonce, script and rangeproof
// layers over the transaction outputs.
func (env *Environment) outputsHash() [32]byte {
	assetAmounts := sha256.New()
	nonces := sha256.New()
	scripts := sha256.New()
	rangeProofs := sha256.New()
	for i := range env.Tx.Outputs {
		out := &env.Tx.Outputs[i]
		out.Asset.Serialize(assetAmounts)
		out.Value.Serialize(assetAmounts)
		out.Nonce.Serialize(nonces)
		scriptHash := sha256.Sum256(out.ScriptPubKey)
		scripts.Write(scriptHash[:])
		proofHash := sha256.Sum256(out.Witness.Rangeproof)
		rangeProofs.Write(proofHash[:])
	}

	h := sha256.New()
	h.Write(assetAmounts.Sum(nil))
	h.Write(nonces.Sum(nil))
	h.Write(scripts.Sum(nil))
	h.Write(rangeProofs.Sum(nil))
	return sum32(h.Sum(nil))
}

// issuancesHash covers the issuance fields of every input. Inputs with
// no issuance contribute explicit absence markers so positions stay
// fixed.
func (env *Environment) issuancesHash() [32]byte {
	amounts := sha256.New()
	tokenAmounts := sha256.New()
	blinding := sha256.New()
	for i := range env.Tx.Inputs {
		iss := env.Tx.Inputs[i].Issuance
		if iss == nil {
			amounts.Write([]byte{0x00})
			tokenAmounts.Write([]byte{0x00})
			blinding.Write([]byte{0x00})
			continue
		}
		iss.Amount.Serialize(amounts)
		iss.InflationKeys.Serialize(tokenAmounts)
		blinding.Write([]byte{0x01})
		blinding.Write(iss.Nonce[:])
		blinding.Write(iss.Entropy[:])
	}

	h := sha256.New()
	h.Write(amounts.Sum(nil))
	h.Write(tokenAmounts.Sum(nil))
	h.Write(blinding.Sum(nil))
	return sum32(h.Sum(nil))
}

// inputUtxosHash covers the outputs being spent, in input order.
func (env *Environment) inputUtxosHash() [32]byte {
	assetAmounts := sha256.New()
	scripts := sha256.New()
	for _, spent := range env.SpentOutputs {
		spent.Asset.Serialize(assetAmounts)
		spent.Value.Serialize(assetAmounts)
		scriptHash := sha256.Sum256(spent.Script)
		scripts.Write(scriptHash[:])
	}

	h := sha256.New()
	h.Write(assetAmounts.Sum(nil))
	h.Write(scripts.Sum(nil))
	return sum32(h.Sum(nil))
}

// tapEnvHash commits to the leaf being spent and its path to the
// output: the Simplicity tapleaf over the CMR, the control block's
// Merkle path, and the internal key.
func (env *Environment) tapEnvHash() [32]byte {
	leaf := elements.TapLeafHash(simplicity.TapleafVersion, env.Cmr[:])

	path := sha256.New()
	for _, elem := range env.ControlBlock.Path {
		path.Write(elem[:])
	}

	h := sha256.New()
	h.Write(leaf[:])
	h.Write(path.Sum(nil))
	h.Write([]byte{env.ControlBlock.LeafVersion | env.ControlBlock.OutputParity})
	h.Write(schnorr.SerializePubKey(env.ControlBlock.InternalKey))
	return sum32(h.Sum(nil))
}

func sum32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}
