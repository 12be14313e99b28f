// Package address derives the unconfidential Taproot address that locks
// funds to a Simplicity program.
//
// The output commits to a single-leaf script tree whose leaf payload is
// the program's 32-byte CMR under the Simplicity leaf version, tweaked
// onto a fixed unspendable internal key so that only the script path can
// spend.
package address

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

// unspendableKeyHex is the x-only internal key with no known discrete
// log used by all Simplicity tooling for script-path-only outputs. It
// must match other implementations byte for byte.
const unspendableKeyHex = "f5919fa64ce45f8306849072b26c1bfdd2937e6b81774796ff372bd1eb5362d2"

var unspendableKey = mustParseXOnly(unspendableKeyHex)

func mustParseXOnly(s string) *btcec.PublicKey {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid unspendable internal key hex: %v", err))
	}
	key, err := schnorr.ParsePubKey(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid unspendable internal key: %v", err))
	}
	return key
}

// UnspendableInternalKey returns the fixed internal key.
func UnspendableInternalKey() *btcec.PublicKey { return unspendableKey }

// Derive builds the single-leaf Taproot output for a program's CMR and
// encodes it under the given network parameters. It is deterministic and
// cannot fail for any 32-byte CMR.
func Derive(cmr simplicity.Cmr, params elements.AddressParams) string {
	leaf := elements.TapLeafHash(simplicity.TapleafVersion, cmr[:])
	outputKey, err := elements.TaprootOutputKey(unspendableKey, leaf[:])
	if err != nil {
		// The tweak would have to collide with the curve order, which
		// does not happen for SHA-256 outputs in practice.
		panic(fmt.Sprintf("deriving taproot output key: %v", err))
	}
	var xonly [32]byte
	copy(xonly[:], schnorr.SerializePubKey(outputKey))
	addr, err := params.P2TRAddress(xonly)
	if err != nil {
		panic(fmt.Sprintf("encoding taproot address: %v", err))
	}
	return addr
}
