package elements

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Liquid coinbase transaction with one input, three outputs and a
// segwit commitment, including witness data.
const liquidCoinbaseHex = "0200000001010000000000000000000000000000000000000000000000000000000000000000ffffffff0603a730180101ffffffff03016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f01000000000000000000266a240a8ce26fdbb51a2d03d4e62fdafd4a06dd7faa0d1c083aa7e27905000000000000000000016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f010000000000000106001976a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f01000000000000000000266a24aa21a9ede8497768bc893ee587244bf5303ac3cf482bab8e4b3fd22e8b114c2a52525ab30000000000000120000000000000000000000000000000000000000000000000000000000000000000000000000000"

func TestDecodeLiquidCoinbase(t *testing.T) {
	tx, err := ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	assert.Equal(t, "9523d75b48b3411a3f4ebd31b6005898deebbe748875aa6ee084b94aa8422ba6",
		tx.TxID().String())
	assert.Equal(t, "c1107130eaa29002ceac7c7fc9a93cd46a15a030a8f21ad579a4a06a3deff008",
		tx.WTxID().String())
	assert.Equal(t, 334, tx.Size())
	assert.Equal(t, 1207, tx.Weight())
	assert.Equal(t, 301, tx.VSize())
	assert.Equal(t, uint32(2), tx.Version)
	assert.Equal(t, uint32(0), tx.LockTime)

	require.Len(t, tx.Inputs, 1)
	in := &tx.Inputs[0]
	assert.True(t, in.PreviousOutput.IsNull())
	assert.Equal(t, uint32(0xffffffff), in.PreviousOutput.Vout)
	assert.Equal(t, "03a730180101", in.ScriptSig.Hex())
	assert.Equal(t, uint32(0xffffffff), in.Sequence)
	assert.False(t, in.IsPegin)
	assert.Nil(t, in.Issuance)
	require.Len(t, in.Witness.ScriptWitness, 1)
	assert.Len(t, in.Witness.ScriptWitness[0], 32)

	require.Len(t, tx.Outputs, 3)
	out := &tx.Outputs[1]
	require.NotNil(t, out.Asset.Explicit)
	assert.Equal(t, "6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d",
		out.Asset.Explicit.String())
	require.NotNil(t, out.Value.Explicit)
	assert.Equal(t, uint64(262), *out.Value.Explicit)
	assert.Equal(t, ScriptTypeP2PKH, out.ScriptPubKey.Type())
	assert.Equal(t, ScriptTypeOpReturn, tx.Outputs[0].ScriptPubKey.Type())
}

func TestTxSerializeRoundTrip(t *testing.T) {
	tx, err := ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	reencoded := tx.Serialize()
	decoded, err := DeserializeTx(reencoded)
	require.NoError(t, err)
	assert.Equal(t, tx.TxID(), decoded.TxID())
	assert.Equal(t, reencoded, decoded.Serialize())
}

func TestTxRejectsTrailingBytes(t *testing.T) {
	tx, err := ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	raw := append(tx.Serialize(), 0x00)
	_, err = DeserializeTx(raw)
	assert.Error(t, err)
}

func TestTxRejectsUnknownFlags(t *testing.T) {
	tx, err := ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	raw := tx.Serialize()
	raw[4] |= 0x02
	_, err = DeserializeTx(raw)
	assert.Error(t, err)
}

func TestValueSerializesBigEndian(t *testing.T) {
	tx, err := ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	// The 262-satoshi output serializes as 0x0000000000000106.
	raw := tx.SerializeNoWitness()
	assert.Contains(t, hex.EncodeToString(raw), "010000000000000106")
}
