package program

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

func unitProgram(t *testing.T) *simplicity.Program {
	t.Helper()
	b := simplicity.NewBuilder()
	b.Unit()
	p, err := b.Finish()
	require.NoError(t, err)
	return p
}

// witnessProgram needs exactly one witness bit at redemption time.
func witnessProgram(t *testing.T) *simplicity.Program {
	t.Helper()
	b := simplicity.NewBuilder()
	wit := b.Witness()
	jet, err := b.Jet("verify")
	require.NoError(t, err)
	b.Comp(wit, jet)
	p, err := b.Finish()
	require.NoError(t, err)
	return p
}

// A fixed program whose identity hashes are pinned by the protocol and
// cross-checked against rust-simplicity 0.5.0.
const (
	vectorProgramB64 = "zSQIS29W33fvVt9371bfd+9W33fvVt9371bfd+9W33fvVt93hgGA"
	vectorCmr        = "abdd773fc7a503908739b4a63198416fdd470948830cb5a6516b98fe0a3bfa85"
	vectorAmr        = "1362ee53ae75218ed51dc4bd46cdbfa585f934ac6c6c3ff787e27dce91ccd80b"
	vectorIhr        = "251c6778129e0f12da3f2388ab30184e815e9d9456b5931e54802a6715d9ca42"
)

func TestResolveIdentityVector(t *testing.T) {
	p, err := ResolveWithWitness(vectorProgramB64, "")
	require.NoError(t, err)
	assert.Equal(t, vectorCmr, p.Cmr().String())

	amr, ihr, ok := p.RedemptionIdentity()
	require.True(t, ok)
	assert.Equal(t, vectorAmr, amr.String())
	assert.Equal(t, vectorIhr, ihr.String())

	// Without witness data the program still commits to the same CMR
	// but has no redemption identities.
	bare, err := Resolve(vectorProgramB64)
	require.NoError(t, err)
	assert.Equal(t, vectorCmr, bare.Cmr().String())
	assert.False(t, bare.IsRedeem())
	_, _, ok = bare.RedemptionIdentity()
	assert.False(t, ok)
}

func TestResolveBase64(t *testing.T) {
	src := unitProgram(t)

	p, err := Resolve(src.String())
	require.NoError(t, err)
	assert.Equal(t, src.Cmr(), p.Cmr())
	assert.False(t, p.IsRedeem())
	assert.Nil(t, p.Redeem())

	_, ok := p.WitnessHex()
	assert.False(t, ok)
	_, _, ok = p.RedemptionIdentity()
	assert.False(t, ok)
}

func TestResolveHexFallback(t *testing.T) {
	src := unitProgram(t)

	p, err := Resolve(hex.EncodeToString(src.Encode()))
	require.NoError(t, err)
	assert.Equal(t, src.Cmr(), p.Cmr())
}

func TestResolveReportsBase64Error(t *testing.T) {
	// Neither valid base64 nor valid hex.
	_, err := Resolve("not a program!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")

	// Valid base64, but the decoded bytes are not a program. The decode
	// failure is reported even though the text also fails as hex.
	_, err = Resolve("aGVsbG8gd29ybGQ=")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "base64")
}

func TestResolveWithWitness(t *testing.T) {
	src := witnessProgram(t)

	p, err := ResolveWithWitness(src.String(), "80")
	require.NoError(t, err)
	assert.True(t, p.IsRedeem())
	require.NotNil(t, p.Redeem())

	wit, ok := p.WitnessHex()
	require.True(t, ok)
	assert.Equal(t, "80", wit)

	amr, ihr, ok := p.RedemptionIdentity()
	require.True(t, ok)
	assert.NotEqual(t, simplicity.Amr{}, amr)
	assert.NotEqual(t, simplicity.Ihr{}, ihr)
}

func TestWitnessValueChangesIdentity(t *testing.T) {
	src := witnessProgram(t)

	zero, err := ResolveWithWitness(src.String(), "00")
	require.NoError(t, err)
	one, err := ResolveWithWitness(src.String(), "80")
	require.NoError(t, err)

	amr0, ihr0, _ := zero.RedemptionIdentity()
	amr1, ihr1, _ := one.RedemptionIdentity()
	assert.NotEqual(t, amr0, amr1)
	assert.NotEqual(t, ihr0, ihr1)
	assert.Equal(t, zero.Cmr(), one.Cmr())
}

func TestEmptyWitnessIsNotAbsentWitness(t *testing.T) {
	src := unitProgram(t)

	bare, err := Resolve(src.String())
	require.NoError(t, err)
	assert.False(t, bare.IsRedeem())

	redeemed, err := ResolveWithWitness(src.String(), "")
	require.NoError(t, err)
	assert.True(t, redeemed.IsRedeem())

	wit, ok := redeemed.WitnessHex()
	require.True(t, ok)
	assert.Equal(t, "", wit)
}

func TestWitnessAssociationFailureIsHard(t *testing.T) {
	src := witnessProgram(t)

	// The program needs one witness bit but none are supplied.
	_, err := ResolveWithWitness(src.String(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attaching witness")
}

func TestBadWitnessHex(t *testing.T) {
	src := unitProgram(t)

	_, err := ResolveWithWitness(src.String(), "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "witness hex")
}
