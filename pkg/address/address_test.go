package address

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/assert"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

func TestUnspendableInternalKey(t *testing.T) {
	key := UnspendableInternalKey()
	assert.Equal(t, unspendableKeyHex, hex.EncodeToString(schnorr.SerializePubKey(key)))
}

func TestDeriveDeterministic(t *testing.T) {
	var cmr simplicity.Cmr
	cmr[0] = 0xab

	first := Derive(cmr, elements.Liquid)
	second := Derive(cmr, elements.Liquid)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "ex1p"), "address %q", first)
}

func TestDeriveDiffersAcrossNetworks(t *testing.T) {
	var cmr simplicity.Cmr
	cmr[0] = 0xab

	mainnet := Derive(cmr, elements.Liquid)
	testnet := Derive(cmr, elements.LiquidTestnet)
	assert.NotEqual(t, mainnet, testnet)
	assert.True(t, strings.HasPrefix(testnet, "tex1p"), "address %q", testnet)
}

func TestDeriveDiffersAcrossPrograms(t *testing.T) {
	var a, b simplicity.Cmr
	a[0] = 1
	b[0] = 2
	assert.NotEqual(t, Derive(a, elements.Liquid), Derive(b, elements.Liquid))
}
