// Package elements implements the subset of the Elements wire format
// this tool needs: transaction (de)serialization, confidential asset and
// value encodings, scripts, Taproot commitments and address encoding
// under per-network parameters.
//
// Elements is a Bitcoin-derived chain with confidential transactions:
// every output carries an asset and a value that may each be either
// explicit or a blinded Pedersen commitment. The format implemented
// here corresponds to the rust-elements crate
// (ElementsProject/rust-elements), in particular:
//   - src/transaction.rs (Transaction, TxIn, TxOut)
//   - src/confidential.rs (Asset, Value, Nonce)
//   - src/taproot.rs (TaprootBuilder, ControlBlock)
//   - src/address.rs (Address, AddressParams)
package elements

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Script is a serialized Elements script.
type Script []byte

// ParseScriptHex decodes a script from hex.
func ParseScriptHex(s string) (Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding script hex: %w", err)
	}
	return Script(b), nil
}

// Hex renders the script as lowercase hex.
func (s Script) Hex() string { return hex.EncodeToString(s) }

// Script classification, as reported by tx decoding.
const (
	ScriptTypeP2PKH    = "p2pkh"
	ScriptTypeP2SH     = "p2sh"
	ScriptTypeP2WPKH   = "p2wpkh"
	ScriptTypeP2WSH    = "p2wsh"
	ScriptTypeP2TR     = "p2tr"
	ScriptTypeOpReturn = "opreturn"
	ScriptTypeFee      = "fee"
	ScriptTypeUnknown  = "unknown"
)

// Opcodes used by classification and rendering. Only the small set the
// tool needs to recognize; unknown opcodes render numerically.
const (
	opFalse       = 0x00
	opPushData1   = 0x4c
	opPushData2   = 0x4d
	opPushData4   = 0x4e
	op1Negate     = 0x4f
	opReserved    = 0x50
	op1           = 0x51
	op16          = 0x60
	opReturn      = 0x6a
	opDup         = 0x76
	opEqual       = 0x87
	opEqualVerify = 0x88
	opHash160     = 0xa9
	opCheckSig    = 0xac
)

// Type classifies the script into the standard output templates. An
// empty script is the fee output marker on Elements.
func (s Script) Type() string {
	switch {
	case len(s) == 0:
		return ScriptTypeFee
	case len(s) > 0 && s[0] == opReturn:
		return ScriptTypeOpReturn
	case len(s) == 25 && s[0] == opDup && s[1] == opHash160 && s[2] == 20 &&
		s[23] == opEqualVerify && s[24] == opCheckSig:
		return ScriptTypeP2PKH
	case len(s) == 23 && s[0] == opHash160 && s[1] == 20 && s[22] == opEqual:
		return ScriptTypeP2SH
	case len(s) == 22 && s[0] == opFalse && s[1] == 20:
		return ScriptTypeP2WPKH
	case len(s) == 34 && s[0] == opFalse && s[1] == 32:
		return ScriptTypeP2WSH
	case len(s) == 34 && s[0] == op1 && s[1] == 32:
		return ScriptTypeP2TR
	default:
		return ScriptTypeUnknown
	}
}

// IsFee reports whether the script marks a fee output (empty script).
func (s Script) IsFee() bool { return len(s) == 0 }

// WitnessProgram extracts the segwit version and program if the script
// is a well-formed witness output.
func (s Script) WitnessProgram() (version int, program []byte, ok bool) {
	if len(s) < 4 || len(s) > 42 {
		return 0, nil, false
	}
	if s[0] != opFalse && (s[0] < op1 || s[0] > op16) {
		return 0, nil, false
	}
	if int(s[1]) != len(s)-2 || s[1] < 2 || s[1] > 40 {
		return 0, nil, false
	}
	version = 0
	if s[0] != opFalse {
		version = int(s[0]-op1) + 1
	}
	return version, s[2:], true
}

// Asm renders the script in the conventional assembly notation. Data
// pushes render as OP_PUSHBYTES_n / OP_PUSHDATAn followed by hex.
func (s Script) Asm() string {
	var parts []string
	i := 0
	for i < len(s) {
		op := s[i]
		i++
		switch {
		case op >= 1 && op <= 0x4b:
			n := int(op)
			parts = append(parts, fmt.Sprintf("OP_PUSHBYTES_%d", n))
			if i+n > len(s) {
				parts = append(parts, "<push past end>")
				return strings.Join(parts, " ")
			}
			parts = append(parts, hex.EncodeToString(s[i:i+n]))
			i += n
		case op == opPushData1 || op == opPushData2 || op == opPushData4:
			sz := 1 << uint(op-opPushData1)
			if i+sz > len(s) {
				parts = append(parts, "<push past end>")
				return strings.Join(parts, " ")
			}
			n := 0
			for k := sz - 1; k >= 0; k-- {
				n = n<<8 | int(s[i+k])
			}
			parts = append(parts, fmt.Sprintf("OP_PUSHDATA%d", sz))
			i += sz
			if i+n > len(s) {
				parts = append(parts, "<push past end>")
				return strings.Join(parts, " ")
			}
			parts = append(parts, hex.EncodeToString(s[i:i+n]))
			i += n
		default:
			parts = append(parts, opcodeName(op))
		}
	}
	return strings.Join(parts, " ")
}

func opcodeName(op byte) string {
	switch {
	case op == opFalse:
		return "OP_0"
	case op == op1Negate:
		return "OP_1NEGATE"
	case op >= op1 && op <= op16:
		return fmt.Sprintf("OP_%d", op-op1+1)
	}
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN_%#02x", op)
}

var opcodeNames = map[byte]string{
	0x61:          "OP_NOP",
	0x63:          "OP_IF",
	0x64:          "OP_NOTIF",
	0x67:          "OP_ELSE",
	0x68:          "OP_ENDIF",
	0x69:          "OP_VERIFY",
	opReturn:      "OP_RETURN",
	0x6b:          "OP_TOALTSTACK",
	0x6c:          "OP_FROMALTSTACK",
	0x73:          "OP_IFDUP",
	0x74:          "OP_DEPTH",
	0x75:          "OP_DROP",
	opDup:         "OP_DUP",
	0x7c:          "OP_SWAP",
	0x82:          "OP_SIZE",
	opEqual:       "OP_EQUAL",
	opEqualVerify: "OP_EQUALVERIFY",
	0x8b:          "OP_1ADD",
	0x8c:          "OP_1SUB",
	0x93:          "OP_ADD",
	0x94:          "OP_SUB",
	0xa6:          "OP_RIPEMD160",
	0xa7:          "OP_SHA1",
	0xa8:          "OP_SHA256",
	opHash160:     "OP_HASH160",
	0xaa:          "OP_HASH256",
	0xab:          "OP_CODESEPARATOR",
	opCheckSig:    "OP_CHECKSIG",
	0xad:          "OP_CHECKSIGVERIFY",
	0xae:          "OP_CHECKMULTISIG",
	0xaf:          "OP_CHECKMULTISIGVERIFY",
	0xb1:          "OP_CHECKLOCKTIMEVERIFY",
	0xb2:          "OP_CHECKSEQUENCEVERIFY",
}
