package utxo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testScript = "76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac"
	testAsset  = "6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d"
)

// 33-byte commitments with their mandatory prefixes.
var (
	assetCommitment = "0a" + strings.Repeat("11", 32)
	valueCommitment = "08" + strings.Repeat("22", 32)
)

func TestParseExplicit(t *testing.T) {
	out, err := Parse(testScript + ":" + testAsset + ":0.00000262")
	require.NoError(t, err)

	assert.Equal(t, testScript, out.Script.Hex())
	require.NotNil(t, out.Asset.Explicit)
	assert.Equal(t, testAsset, out.Asset.Explicit.String())
	require.NotNil(t, out.Value.Explicit)
	assert.Equal(t, uint64(262), *out.Value.Explicit)
}

func TestParseConfidential(t *testing.T) {
	out, err := Parse(testScript + ":" + assetCommitment + ":" + valueCommitment)
	require.NoError(t, err)

	assert.Nil(t, out.Asset.Explicit)
	assert.Len(t, out.Asset.Commitment, 33)
	assert.Nil(t, out.Value.Explicit)
	assert.Len(t, out.Value.Commitment, 33)
}

func TestParseFieldCount(t *testing.T) {
	for _, bad := range []string{
		"",
		testScript,
		testScript + ":" + testAsset,
		testScript + ":" + testAsset + ":1:extra",
	} {
		_, err := Parse(bad)
		require.Error(t, err, "descriptor %q", bad)
		assert.Contains(t, err.Error(), "<scriptPubKey>:<asset>:<value>")
	}
}

// A 64-hex-character asset field is always explicit, even when its
// decoded bytes would be rejected as a commitment.
func TestAssetLengthIsAuthoritative(t *testing.T) {
	out, err := Parse(testScript + ":" + strings.Repeat("0a", 32) + ":1")
	require.NoError(t, err)
	require.NotNil(t, out.Asset.Explicit)
	assert.Nil(t, out.Asset.Commitment)
}

// A value that parses as a decimal amount is always explicit, even when
// it is also valid commitment hex. 66 decimal digits hex-decode to 33
// bytes, but the decimal parse wins.
func TestValueDecimalParseWins(t *testing.T) {
	out, err := Parse(testScript + ":" + testAsset + ":21000000")
	require.NoError(t, err)
	require.NotNil(t, out.Value.Explicit)
	assert.Equal(t, uint64(21_000_000*100_000_000), *out.Value.Explicit)
}

// Issued assets are not bounded by the 21 million coin supply cap;
// amounts beyond it still parse as explicit decimals rather than
// falling through to the commitment path.
func TestValueBeyondSupplyCapIsExplicit(t *testing.T) {
	out, err := Parse(testScript + ":" + testAsset + ":22000000")
	require.NoError(t, err)
	require.NotNil(t, out.Value.Explicit)
	assert.Equal(t, uint64(22_000_000*100_000_000), *out.Value.Explicit)
}

func TestValueBTCDenomination(t *testing.T) {
	cases := map[string]uint64{
		"0":          0,
		"1":          100_000_000,
		"0.5":        50_000_000,
		"0.00000001": 1,
		"1.23456789": 123_456_789,
	}
	for in, want := range cases {
		out, err := Parse(testScript + ":" + testAsset + ":" + in)
		require.NoError(t, err, "value %q", in)
		require.NotNil(t, out.Value.Explicit, "value %q", in)
		assert.Equal(t, want, *out.Value.Explicit, "value %q", in)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		descriptor string
		wantStage  string
	}{
		{"zz:" + testAsset + ":1", "parsing scriptPubKey hex"},
		{testScript + ":zz:1", "parsing asset commitment hex"},
		{testScript + ":abcd:1", "decoding asset commitment"},
		{testScript + ":0b" + strings.Repeat("11", 33) + ":1", "decoding asset commitment"},
		{testScript + ":" + testAsset + ":zz", "parsing value commitment hex"},
		{testScript + ":" + testAsset + ":abcd", "decoding value commitment"},
		// Too many decimal places falls through to the commitment path.
		{testScript + ":" + testAsset + ":0.123456789", "parsing value commitment hex"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.descriptor)
		require.Error(t, err, "descriptor %q", tc.descriptor)
		assert.Contains(t, err.Error(), tc.wantStage, "descriptor %q", tc.descriptor)
	}
}
