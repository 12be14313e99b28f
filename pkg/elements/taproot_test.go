package elements

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInternalKeyHex = "f5919fa64ce45f8306849072b26c1bfdd2937e6b81774796ff372bd1eb5362d2"

func testInternalKey(t *testing.T) []byte {
	t.Helper()
	raw, err := hex.DecodeString(testInternalKeyHex)
	require.NoError(t, err)
	return raw
}

func TestTapBranchHashIsOrderInvariant(t *testing.T) {
	a := [32]byte{1}
	b := [32]byte{2}
	assert.Equal(t, TapBranchHash(a, b), TapBranchHash(b, a))
	assert.NotEqual(t, TapBranchHash(a, b), TapBranchHash(a, a))
}

func TestTapLeafHashDependsOnVersionAndScript(t *testing.T) {
	script := []byte{0x51}
	base := TapLeafHash(0xbe, script)
	assert.NotEqual(t, base, TapLeafHash(0xc0, script))
	assert.NotEqual(t, base, TapLeafHash(0xbe, []byte{0x52}))
	assert.Equal(t, base, TapLeafHash(0xbe, []byte{0x51}))
}

func TestParseControlBlock(t *testing.T) {
	raw := append([]byte{0xbe}, testInternalKey(t)...)
	cb, err := ParseControlBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0xbe), cb.LeafVersion)
	assert.Equal(t, byte(0), cb.OutputParity)
	assert.Empty(t, cb.Path)
	assert.Equal(t, testInternalKeyHex, hex.EncodeToString(schnorr.SerializePubKey(cb.InternalKey)))
	assert.Equal(t, raw, cb.Serialize())
}

func TestParseControlBlockWithPath(t *testing.T) {
	elem := make([]byte, 32)
	elem[0] = 0xaa
	raw := append([]byte{0xbf}, testInternalKey(t)...)
	raw = append(raw, elem...)

	cb, err := ParseControlBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0xbe), cb.LeafVersion)
	assert.Equal(t, byte(1), cb.OutputParity)
	require.Len(t, cb.Path, 1)
	assert.Equal(t, byte(0xaa), cb.Path[0][0])
	assert.Equal(t, raw, cb.Serialize())
}

func TestParseControlBlockRejectsBadLengths(t *testing.T) {
	_, err := ParseControlBlock(make([]byte, 32))
	assert.Error(t, err)

	raw := append([]byte{0xbe}, testInternalKey(t)...)
	_, err = ParseControlBlock(append(raw, 0x01))
	assert.Error(t, err)
}

func TestControlBlockRootHash(t *testing.T) {
	leaf := TapLeafHash(0xbe, []byte{0x51})

	cb := &ControlBlock{}
	assert.Equal(t, leaf, cb.RootHash(leaf))

	var sibling [32]byte
	sibling[0] = 0x77
	cb.Path = append(cb.Path, sibling)
	assert.Equal(t, TapBranchHash(leaf, sibling), cb.RootHash(leaf))
}

func TestTaprootOutputKeyDeterministic(t *testing.T) {
	key, err := schnorr.ParsePubKey(testInternalKey(t))
	require.NoError(t, err)

	leaf := TapLeafHash(0xbe, []byte{0x51})
	out1, err := TaprootOutputKey(key, leaf[:])
	require.NoError(t, err)
	out2, err := TaprootOutputKey(key, leaf[:])
	require.NoError(t, err)
	assert.Equal(t, schnorr.SerializePubKey(out1), schnorr.SerializePubKey(out2))

	other := TapLeafHash(0xbe, []byte{0x52})
	out3, err := TaprootOutputKey(key, other[:])
	require.NoError(t, err)
	assert.NotEqual(t, schnorr.SerializePubKey(out1), schnorr.SerializePubKey(out3))
}
