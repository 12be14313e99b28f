package sighash

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
	"github.com/suffix-labs/hal-simplicity/pkg/utxo"
)

const testScriptHex = "76a914fc26751a5025129a2fd006c6fbfa598ddd67f7e188ac"
const testAssetHex = "6f0279e9ed041c3d710a9f57d0c02928416460c4b722ae3457a11eec381c526d"

func testTx(t *testing.T) *elements.Transaction {
	t.Helper()
	asset, err := elements.ParseAssetID(testAssetHex)
	require.NoError(t, err)
	script, err := elements.ParseScriptHex(testScriptHex)
	require.NoError(t, err)

	var txidA, txidB chainhash.Hash
	txidA[0] = 0x11
	txidB[0] = 0x22
	return &elements.Transaction{
		Version: 2,
		Inputs: []elements.TxIn{
			{PreviousOutput: elements.OutPoint{Txid: txidA, Vout: 0}, Sequence: 0xffffffff},
			{PreviousOutput: elements.OutPoint{Txid: txidB, Vout: 1}, Sequence: 0xfffffffe},
		},
		Outputs: []elements.TxOut{
			{
				Asset:        elements.ExplicitAsset(asset),
				Value:        elements.ExplicitValue(500),
				ScriptPubKey: script,
			},
			{
				Asset: elements.ExplicitAsset(asset),
				Value: elements.ExplicitValue(100),
			},
		},
	}
}

func testSpentOutputs(t *testing.T) []*utxo.SpentOutput {
	t.Helper()
	first, err := utxo.Parse(testScriptHex + ":" + testAssetHex + ":0.00000400")
	require.NoError(t, err)
	second, err := utxo.Parse(testScriptHex + ":" + testAssetHex + ":0.00000200")
	require.NoError(t, err)
	return []*utxo.SpentOutput{first, second}
}

func testControlBlock(t *testing.T) *elements.ControlBlock {
	t.Helper()
	key, err := hex.DecodeString("f5919fa64ce45f8306849072b26c1bfdd2937e6b81774796ff372bd1eb5362d2")
	require.NoError(t, err)
	cb, err := elements.ParseControlBlock(append([]byte{0xbe}, key...))
	require.NoError(t, err)
	return cb
}

func testEnv(t *testing.T) *Environment {
	t.Helper()
	var cmr simplicity.Cmr
	cmr[0] = 0xab
	env, err := NewEnvironment(testTx(t), 0, testSpentOutputs(t), cmr, testControlBlock(t), DefaultGenesisHash)
	require.NoError(t, err)
	return env
}

func TestSighashDeterministic(t *testing.T) {
	assert.Equal(t, testEnv(t).SighashAll(), testEnv(t).SighashAll())
}

func TestSighashChangesWithInputIndex(t *testing.T) {
	env := testEnv(t)
	base := env.SighashAll()
	env.InputIndex = 1
	assert.NotEqual(t, base, env.SighashAll())
}

func TestSighashChangesWithSpentOutputOrder(t *testing.T) {
	env := testEnv(t)
	base := env.SighashAll()
	env.SpentOutputs[0], env.SpentOutputs[1] = env.SpentOutputs[1], env.SpentOutputs[0]
	assert.NotEqual(t, base, env.SighashAll())
}

func TestSighashChangesWithGenesisHash(t *testing.T) {
	env := testEnv(t)
	base := env.SighashAll()
	env.GenesisHash[0] ^= 0xff
	assert.NotEqual(t, base, env.SighashAll())
}

func TestSighashChangesWithControlBlock(t *testing.T) {
	env := testEnv(t)
	base := env.SighashAll()
	var sibling [32]byte
	sibling[0] = 0x99
	env.ControlBlock.Path = append(env.ControlBlock.Path, sibling)
	assert.NotEqual(t, base, env.SighashAll())
}

func TestSighashChangesWithCmr(t *testing.T) {
	env := testEnv(t)
	base := env.SighashAll()
	env.Cmr[0] ^= 0xff
	assert.NotEqual(t, base, env.SighashAll())
}

func TestEnvironmentRequiresMatchingSpentOutputs(t *testing.T) {
	var cmr simplicity.Cmr
	_, err := NewEnvironment(testTx(t), 0, testSpentOutputs(t)[:1], cmr, testControlBlock(t), DefaultGenesisHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spent outputs")
}

func TestEnvironmentRejectsInputIndexOutOfRange(t *testing.T) {
	var cmr simplicity.Cmr
	_, err := NewEnvironment(testTx(t), 2, testSpentOutputs(t), cmr, testControlBlock(t), DefaultGenesisHash)
	assert.Error(t, err)
}

func TestSignAndVerify(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)

	res, err := testEnv(t).Resolve(KeyMaterial{SecretKey: sk})
	require.NoError(t, err)
	require.NotNil(t, res.Signature)
	assert.Nil(t, res.ValidSignature)
	assert.True(t, res.Signature.Verify(res.Sighash, sk.PublicKey()))
}

func TestVerifyWithoutSecretKey(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)

	signed, err := testEnv(t).Resolve(KeyMaterial{SecretKey: sk})
	require.NoError(t, err)

	res, err := testEnv(t).Resolve(KeyMaterial{
		PublicKey: sk.PublicKey(),
		Signature: signed.Signature,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Signature)
	require.NotNil(t, res.ValidSignature)
	assert.True(t, *res.ValidSignature)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)
	other, err := ParseSecretKey(strings.Repeat("22", 32))
	require.NoError(t, err)

	signed, err := testEnv(t).Resolve(KeyMaterial{SecretKey: sk})
	require.NoError(t, err)

	res, err := testEnv(t).Resolve(KeyMaterial{
		PublicKey: other.PublicKey(),
		Signature: signed.Signature,
	})
	require.NoError(t, err)
	require.NotNil(t, res.ValidSignature)
	assert.False(t, *res.ValidSignature)
}

func TestKeyConsistencyMismatchNamesBothKeys(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)
	other, err := ParseSecretKey(strings.Repeat("22", 32))
	require.NoError(t, err)

	_, err = testEnv(t).Resolve(KeyMaterial{SecretKey: sk, PublicKey: other.PublicKey()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), sk.PublicKey().String())
	assert.Contains(t, err.Error(), other.PublicKey().String())
}

func TestSignatureWithoutPublicKeyIsError(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)
	signed, err := testEnv(t).Resolve(KeyMaterial{SecretKey: sk})
	require.NoError(t, err)

	_, err = testEnv(t).Resolve(KeyMaterial{Signature: signed.Signature})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public key must be provided")
}

func TestPublicKeyWithoutSignatureSkipsVerification(t *testing.T) {
	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)

	res, err := testEnv(t).Resolve(KeyMaterial{PublicKey: sk.PublicKey()})
	require.NoError(t, err)
	assert.Nil(t, res.ValidSignature)
	assert.Nil(t, res.Signature)
}

func TestSecretKeyParsing(t *testing.T) {
	_, err := ParseSecretKey("zz")
	assert.Error(t, err)
	_, err = ParseSecretKey("11")
	assert.Error(t, err)
	_, err = ParseSecretKey(strings.Repeat("00", 32))
	assert.Error(t, err)

	sk, err := ParseSecretKey(strings.Repeat("11", 32))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("11", 32), sk.String())
	assert.Len(t, sk.PublicKey().String(), 64)
	assert.Contains(t, []int{0, 1}, sk.PublicKey().Parity())
}

func TestGenerateSecretKey(t *testing.T) {
	a, err := GenerateSecretKey()
	require.NoError(t, err)
	b, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), b.String())
}

func TestParseGenesisHash(t *testing.T) {
	// Display order reverses serialization order.
	h, err := ParseGenesisHash("a771da8e52ee6ad581ed1e9a99825e5b3b7992225534eaa2ae23244fe26ab1c1")
	require.NoError(t, err)
	assert.Equal(t, DefaultGenesisHash, h)

	_, err = ParseGenesisHash("abcd")
	assert.Error(t, err)
}
