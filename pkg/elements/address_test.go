package elements

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptClassification(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"", ScriptTypeFee},
		{"6a2400000000000000000000000000000000000000000000000000000000000000000000000000", ScriptTypeOpReturn},
		{"76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac", ScriptTypeP2PKH},
		{"a914fc26751a5025129a2fd006c6fbfa598ddd67f7e187", ScriptTypeP2SH},
		{"0014fc26751a5025129a2fd006c6fbfa598ddd67f7e1", ScriptTypeP2WPKH},
		{"00201111111111111111111111111111111111111111111111111111111111111111", ScriptTypeP2WSH},
		{"51201111111111111111111111111111111111111111111111111111111111111111", ScriptTypeP2TR},
		{"51", ScriptTypeUnknown},
	}
	for _, tc := range cases {
		s, err := ParseScriptHex(tc.hex)
		require.NoError(t, err)
		assert.Equal(t, tc.want, s.Type(), "script %q", tc.hex)
	}
}

func TestScriptAsm(t *testing.T) {
	s, err := ParseScriptHex("76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac")
	require.NoError(t, err)
	assert.Equal(t,
		"OP_DUP OP_HASH160 OP_PUSHBYTES_20 fc26751a5025129a2fd006c6fbfa598ddd67f7e1 OP_EQUALVERIFY OP_CHECKSIG",
		s.Asm())

	s, err = ParseScriptHex("03a730180101")
	require.NoError(t, err)
	assert.Equal(t, "OP_PUSHBYTES_3 a73018 OP_PUSHBYTES_1 01", s.Asm())
}

func TestAddressFromScript(t *testing.T) {
	p2pkh, err := ParseScriptHex("76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac")
	require.NoError(t, err)

	addr, ok := ElementsRegtest.AddressFromScript(p2pkh)
	require.True(t, ok)
	assert.Equal(t, "2dxQzjvrkmRGSa5gwgaQn1oLtRo5pXS94oJ", addr)

	liquidAddr, ok := Liquid.AddressFromScript(p2pkh)
	require.True(t, ok)
	assert.NotEqual(t, addr, liquidAddr)

	fee, err := ParseScriptHex("")
	require.NoError(t, err)
	_, ok = Liquid.AddressFromScript(fee)
	assert.False(t, ok)
}

func TestWitnessAddressHRPs(t *testing.T) {
	var program [32]byte
	program[0] = 0x42

	for _, tc := range []struct {
		params AddressParams
		prefix string
	}{
		{Liquid, "ex1p"},
		{LiquidTestnet, "tex1p"},
		{ElementsRegtest, "ert1p"},
	} {
		addr, err := tc.params.P2TRAddress(program)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(addr, tc.prefix),
			"%s address %q should start with %q", tc.params.Name, addr, tc.prefix)
	}
}

func TestWitnessAddressRejectsBadPrograms(t *testing.T) {
	_, err := Liquid.WitnessAddress(17, make([]byte, 32))
	assert.Error(t, err)
	_, err = Liquid.WitnessAddress(1, make([]byte, 1))
	assert.Error(t, err)
	_, err = Liquid.WitnessAddress(1, make([]byte, 41))
	assert.Error(t, err)
}

func TestConfidentialPrefixValidation(t *testing.T) {
	_, err := AssetFromCommitment(make([]byte, 33))
	assert.Error(t, err)
	_, err = ValueFromCommitment(append([]byte{0x0a}, make([]byte, 32)...))
	assert.Error(t, err)

	asset, err := AssetFromCommitment(append([]byte{0x0a}, make([]byte, 32)...))
	require.NoError(t, err)
	assert.Equal(t, "confidential", asset.Kind())

	value, err := ValueFromCommitment(append([]byte{0x08}, make([]byte, 32)...))
	require.NoError(t, err)
	assert.Equal(t, "confidential", value.Kind())
}

func TestAssetIDDisplayOrder(t *testing.T) {
	const display = "6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d"
	id, err := ParseAssetID(display)
	require.NoError(t, err)
	assert.Equal(t, display, id.String())
	// Serialization order is the reverse of display order.
	assert.Equal(t, byte(0x6d), id[0])
	assert.Equal(t, byte(0x6f), id[31])
}
