package elements

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// AddressParams holds the per-network address encoding constants.
type AddressParams struct {
	Name      string
	PKHPrefix byte
	SHPrefix  byte
	// Bech32HRP prefixes unconfidential segwit addresses. Confidential
	// blech32 addresses use a separate HRP.
	Bech32HRP  string
	Blech32HRP string
}

// Address parameters for the Elements networks this tool knows about.
var (
	Liquid = AddressParams{
		Name:       "liquid",
		PKHPrefix:  57,
		SHPrefix:   39,
		Bech32HRP:  "ex",
		Blech32HRP: "lq",
	}
	LiquidTestnet = AddressParams{
		Name:       "liquidtestnet",
		PKHPrefix:  36,
		SHPrefix:   19,
		Bech32HRP:  "tex",
		Blech32HRP: "tlq",
	}
	ElementsRegtest = AddressParams{
		Name:       "elementsregtest",
		PKHPrefix:  235,
		SHPrefix:   75,
		Bech32HRP:  "ert",
		Blech32HRP: "el",
	}
)

// P2PKHAddress encodes a pay-to-pubkey-hash address for a serialized
// public key.
func (p AddressParams) P2PKHAddress(pubKey []byte) string {
	return base58.CheckEncode(hash160(pubKey), p.PKHPrefix)
}

// P2SHAddress encodes a pay-to-script-hash address for a redeem script.
func (p AddressParams) P2SHAddress(script []byte) string {
	return base58.CheckEncode(hash160(script), p.SHPrefix)
}

// WitnessAddress encodes an unconfidential segwit address for a witness
// program. Version 0 uses bech32, higher versions bech32m.
func (p AddressParams) WitnessAddress(version byte, program []byte) (string, error) {
	if version > 16 {
		return "", fmt.Errorf("witness version %d out of range", version)
	}
	if len(program) < 2 || len(program) > 40 {
		return "", fmt.Errorf("witness program must be 2 to 40 bytes, got %d", len(program))
	}
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("converting witness program: %w", err)
	}
	data := append([]byte{version}, converted...)
	if version == 0 {
		return bech32.Encode(p.Bech32HRP, data)
	}
	return bech32.EncodeM(p.Bech32HRP, data)
}

// P2TRAddress encodes an unconfidential taproot address for a 32-byte
// output key.
func (p AddressParams) P2TRAddress(outputKey [32]byte) (string, error) {
	return p.WitnessAddress(1, outputKey[:])
}

// AddressFromScript renders the address a standard output script pays
// to, if it has one.
func (p AddressParams) AddressFromScript(s Script) (string, bool) {
	switch s.Type() {
	case ScriptTypeP2PKH:
		return base58.CheckEncode(s[3:23], p.PKHPrefix), true
	case ScriptTypeP2SH:
		return base58.CheckEncode(s[2:22], p.SHPrefix), true
	case ScriptTypeP2WPKH, ScriptTypeP2WSH, ScriptTypeP2TR:
		version, program, ok := s.WitnessProgram()
		if !ok {
			return "", false
		}
		addr, err := p.WitnessAddress(byte(version), program)
		if err != nil {
			return "", false
		}
		return addr, true
	default:
		return "", false
	}
}

func hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}
