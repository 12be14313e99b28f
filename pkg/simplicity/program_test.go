package simplicity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitProgram is the smallest possible program, a single unit node.
func unitProgram(t *testing.T) *Program {
	t.Helper()
	b := NewBuilder()
	b.Unit()
	p, err := b.Finish()
	require.NoError(t, err)
	return p
}

// witnessProgram builds comp witness jet_verify: its witness node has a
// one-bit target type, so redeeming it consumes exactly one witness bit.
func witnessProgram(t *testing.T) *Program {
	t.Helper()
	b := NewBuilder()
	wit := b.Witness()
	jet, err := b.Jet("verify")
	require.NoError(t, err)
	b.Comp(wit, jet)
	p, err := b.Finish()
	require.NoError(t, err)
	return p
}

func TestUnitProgram(t *testing.T) {
	p := unitProgram(t)
	assert.Equal(t, "1 → 1", p.Arrow())
	assert.Equal(t, 1, p.Len())
	assert.NotEqual(t, Cmr{}, p.Cmr())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *Program{
		"unit":    unitProgram,
		"witness": witnessProgram,
	} {
		t.Run(name, func(t *testing.T) {
			p := build(t)
			raw := p.Encode()

			decoded, err := DecodeCommit(raw)
			require.NoError(t, err)
			assert.Equal(t, p.Cmr(), decoded.Cmr())
			assert.Equal(t, p.Arrow(), decoded.Arrow())
			assert.Equal(t, raw, decoded.Encode())
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	p := witnessProgram(t)
	decoded, err := ParseCommit(p.String())
	require.NoError(t, err)
	assert.Equal(t, p.Cmr(), decoded.Cmr())
}

func TestCmrIgnoresWitnessData(t *testing.T) {
	p := witnessProgram(t)

	rp, err := DecodeRedeem(p.Encode(), []byte{0x80})
	require.NoError(t, err)
	assert.Equal(t, p.Cmr(), rp.Commit().Cmr())
}

func TestRedeemRequiresEnoughWitnessBits(t *testing.T) {
	p := witnessProgram(t)

	// The witness node needs one bit; the empty witness cannot supply it.
	_, err := DecodeRedeem(p.Encode(), nil)
	assert.Error(t, err)
}

func TestRedeemRejectsNonZeroWitnessPadding(t *testing.T) {
	p := witnessProgram(t)

	_, err := DecodeRedeem(p.Encode(), []byte{0xff})
	assert.Error(t, err)
}

func TestRedeemRejectsUnusedWitnessBytes(t *testing.T) {
	p := witnessProgram(t)

	_, err := DecodeRedeem(p.Encode(), []byte{0x80, 0x00})
	assert.Error(t, err)
}

func TestWitnessValueChangesAmrAndIhr(t *testing.T) {
	p := witnessProgram(t)

	zero, err := DecodeRedeem(p.Encode(), []byte{0x00})
	require.NoError(t, err)
	one, err := DecodeRedeem(p.Encode(), []byte{0x80})
	require.NoError(t, err)

	assert.NotEqual(t, zero.Amr(), one.Amr())
	assert.NotEqual(t, zero.Ihr(), one.Ihr())
}

func TestEmptyWitnessOnWitnessFreeProgram(t *testing.T) {
	p := unitProgram(t)

	rp, err := DecodeRedeem(p.Encode(), nil)
	require.NoError(t, err)
	assert.Equal(t, "", rp.WitnessHex())
	assert.NotEqual(t, Amr{}, rp.Amr())
	assert.NotEqual(t, Ihr{}, rp.Ihr())
}

func TestDisconnectedProgramRejected(t *testing.T) {
	// Two nodes with no edge between them: the first is unreachable.
	var w BitWriter
	w.WriteNatural(2)
	w.WriteBits(0b01001, 5) // unit
	w.WriteBits(0b01001, 5) // unit
	_, err := DecodeCommit(w.Bytes())
	assert.Error(t, err)
}

func TestHiddenRootRejected(t *testing.T) {
	var w BitWriter
	w.WriteNatural(1)
	w.WriteBits(0b0110, 4)
	w.WriteBitVector(make([]byte, 32), 256)
	_, err := DecodeCommit(w.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hidden")
}

func TestDisplayExprBudget(t *testing.T) {
	p := witnessProgram(t)

	full := p.DisplayExpr(0)
	assert.Contains(t, full, "comp")
	assert.Contains(t, full, "witness")
	assert.Contains(t, full, "jet_verify")

	truncated := p.DisplayExpr(1)
	assert.Contains(t, truncated, "...")
}

func TestJetLookup(t *testing.T) {
	jet, err := jetByName("verify")
	require.NoError(t, err)

	var w BitWriter
	for _, c := range jet.Bits {
		w.WriteBit(c == '1')
	}
	decoded, err := decodeJet(NewBitReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, jet, decoded)

	_, err = jetByName("no-such-jet")
	assert.Error(t, err)
}
