package api

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/program"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

const liquidCoinbaseHex = "0200000001010000000000000000000000000000000000000000000000000000000000000000ffffffff0603a730180101ffffffff03016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f01000000000000000000266a240a8ce26fdbb51a2d03d4e62fdafd4a06dd7faa0d1c083aa7e27905000000000000000000016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f010000000000000106001976a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac016d521c38ec1ea15734ae22b7c46064412829c0d0579f0a713d1c04ede979026f01000000000000000000266a24aa21a9ede8497768bc893ee587244bf5303ac3cf482bab8e4b3fd22e8b114c2a52525ab30000000000000120000000000000000000000000000000000000000000000000000000000000000000000000000000"

func unitBase64(t *testing.T) string {
	t.Helper()
	b := simplicity.NewBuilder()
	b.Unit()
	p, err := b.Finish()
	require.NoError(t, err)
	return p.String()
}

func TestProgramInfoCommitOnly(t *testing.T) {
	b64 := unitBase64(t)
	p, err := program.Resolve(b64)
	require.NoError(t, err)

	info := ProgramInfoFor(p)
	assert.Equal(t, "core", info.Jets)
	assert.Equal(t, b64, info.CommitBase64)
	assert.Equal(t, "1 → 1", info.TypeArrow)
	assert.NotEmpty(t, info.CommitDecode)
	assert.True(t, strings.HasPrefix(info.LiquidAddressUnconf, "ex1p"))
	assert.True(t, strings.HasPrefix(info.LiquidTestnetAddressUnconf, "tex1p"))

	assert.False(t, info.IsRedeem)
	assert.Empty(t, info.RedeemBase64)
	assert.Nil(t, info.WitnessHex)
	assert.Nil(t, info.Amr)
	assert.Nil(t, info.Ihr)
}

func TestProgramInfoWithWitness(t *testing.T) {
	p, err := program.ResolveWithWitness(unitBase64(t), "")
	require.NoError(t, err)

	info := ProgramInfoFor(p)
	assert.True(t, info.IsRedeem)
	assert.NotEmpty(t, info.RedeemBase64)
	require.NotNil(t, info.WitnessHex)
	assert.Equal(t, "", *info.WitnessHex)
	assert.NotNil(t, info.Amr)
	assert.NotNil(t, info.Ihr)
}

func TestTxInfoMatchesFixture(t *testing.T) {
	tx, err := elements.ParseTxHex(liquidCoinbaseHex)
	require.NoError(t, err)

	info := TxInfoFor(tx, elements.ElementsRegtest)
	assert.Equal(t, "9523d75b48b3411a3f4ebd31b6005898deebbe748875aa6ee084b94aa8422ba6", info.Txid)
	assert.Equal(t, info.Wtxid, info.Hash)
	assert.Equal(t, 334, info.Size)
	assert.Equal(t, 1207, info.Weight)
	assert.Equal(t, 301, info.Vsize)

	require.Len(t, info.Inputs, 1)
	in := info.Inputs[0]
	assert.Equal(t, strings.Repeat("0", 64)+":4294967295", in.Prevout)
	assert.Equal(t, "03a730180101", in.ScriptSig.Hex)
	assert.False(t, in.HasIssuance)
	assert.Nil(t, in.Issuance)
	require.Len(t, in.Witness.ScriptWitness, 1)

	require.Len(t, info.Outputs, 3)
	out := info.Outputs[1]
	assert.Equal(t, "explicit", out.Asset.Type)
	assert.Equal(t, "liquid_bitcoin", out.Asset.Label)
	require.NotNil(t, out.Value.Value)
	assert.Equal(t, uint64(262), *out.Value.Value)
	require.NotNil(t, out.ScriptPubKey.Address)
	assert.Equal(t, "2dxQzjvrkmRGSa5gwgaQn1oLtRo5pXS94oJ", *out.ScriptPubKey.Address)
	assert.False(t, out.IsFee)
}

func TestSighashRequest(t *testing.T) {
	req := SighashRequest{
		TxHex:        liquidCoinbaseHex,
		InputIndex:   0,
		Cmr:          strings.Repeat("ab", 32),
		ControlBlock: "be" + "f5919fa64ce45f8306849072b26c1bfdd2937e6b81774796ff372bd1eb5362d2",
		SecretKey:    strings.Repeat("11", 32),
		InputUtxos: []string{
			"76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac:6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d:0.00000400",
		},
	}

	info, err := Sighash(req)
	require.NoError(t, err)
	assert.Len(t, info.Sighash, 64)
	require.NotNil(t, info.Signature)
	assert.Len(t, *info.Signature, 128)
	assert.Nil(t, info.ValidSignature)
}

func TestSighashRequestRejectsUtxoCountMismatch(t *testing.T) {
	req := SighashRequest{
		TxHex:        liquidCoinbaseHex,
		Cmr:          strings.Repeat("ab", 32),
		ControlBlock: "be" + "f5919fa64ce45f8306849072b26c1bfdd2937e6b81774796ff372bd1eb5362d2",
	}

	_, err := Sighash(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spent outputs")
}

func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	assert.Len(t, kp.Secret, 64)
	assert.Len(t, kp.XOnly, 64)
	assert.Contains(t, []int{0, 1}, kp.Parity)
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, SighashInfo{Sighash: "ff"}, false))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ff", decoded["sighash"])
	// Absent optional results still render as explicit nulls.
	assert.Contains(t, decoded, "signature")
	assert.Contains(t, decoded, "valid_signature")
}

func TestWriteOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, map[string]string{"txid": "ab"}, true))
	assert.Equal(t, "txid: ab\n", buf.String())
}
