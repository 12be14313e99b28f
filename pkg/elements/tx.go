package elements

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction is an Elements transaction.
//
// Elements serialization differs from Bitcoin's in two ways that matter
// here: a flags byte always follows the version (bit 0 = witness data
// present), and the lock time is serialized before the witness section,
// not after it.
type Transaction struct {
	Version  uint32
	LockTime uint32
	Inputs   []TxIn
	Outputs  []TxOut
}

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	Txid chainhash.Hash
	Vout uint32
}

// IsNull reports whether this is the coinbase null outpoint.
func (o OutPoint) IsNull() bool {
	return o.Txid == chainhash.Hash{} && o.Vout == 0xffffffff
}

// String renders "txid:vout" with the txid in display order.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid.String(), o.Vout)
}

// Outpoint flag bits. On the wire, the previous-output index carries two
// flags in its top bits unless the outpoint is null.
const (
	outpointIssuanceFlag = 0x80000000
	outpointPeginFlag    = 0x40000000
	outpointIndexMask    = 0x3fffffff
)

// TxIn is one transaction input.
type TxIn struct {
	PreviousOutput OutPoint
	IsPegin        bool
	ScriptSig      Script
	Sequence       uint32
	Issuance       *AssetIssuance
	Witness        TxInWitness
}

// AssetIssuance is the issuance data attached to an input that issues or
// reissues an asset.
type AssetIssuance struct {
	Nonce         [32]byte
	Entropy       [32]byte
	Amount        Value
	InflationKeys Value
}

// TxInWitness is the witness section of one input.
type TxInWitness struct {
	AmountRangeproof        []byte
	InflationKeysRangeproof []byte
	ScriptWitness           [][]byte
	PeginWitness            [][]byte
}

// IsEmpty reports whether the witness carries no data at all.
func (w TxInWitness) IsEmpty() bool {
	return len(w.AmountRangeproof) == 0 && len(w.InflationKeysRangeproof) == 0 &&
		len(w.ScriptWitness) == 0 && len(w.PeginWitness) == 0
}

// TxOut is one transaction output.
type TxOut struct {
	Asset        Asset
	Value        Value
	Nonce        Nonce
	ScriptPubKey Script
	Witness      TxOutWitness
}

// TxOutWitness is the witness section of one output.
type TxOutWitness struct {
	SurjectionProof []byte
	Rangeproof      []byte
}

// IsEmpty reports whether the witness carries no data at all.
func (w TxOutWitness) IsEmpty() bool {
	return len(w.SurjectionProof) == 0 && len(w.Rangeproof) == 0
}

// ParseTxHex deserializes a transaction from hex.
func ParseTxHex(s string) (*Transaction, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding transaction hex: %w", err)
	}
	return DeserializeTx(raw)
}

// DeserializeTx deserializes a transaction and rejects trailing bytes.
func DeserializeTx(raw []byte) (*Transaction, error) {
	r := bytes.NewReader(raw)
	tx, err := deserializeTx(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after transaction", r.Len())
	}
	return tx, nil
}

func deserializeTx(r *bytes.Reader) (*Transaction, error) {
	tx := &Transaction{}

	if err := binary.Read(r, binary.LittleEndian, &tx.Version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}

	var flags [1]byte
	if _, err := io.ReadFull(r, flags[:]); err != nil {
		return nil, fmt.Errorf("reading flags: %w", err)
	}
	hasWitness := flags[0]&1 != 0
	if flags[0] & ^byte(1) != 0 {
		return nil, fmt.Errorf("unknown transaction flags %#02x", flags[0])
	}

	nIn, err := readVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("reading input count: %w", err)
	}
	tx.Inputs = make([]TxIn, nIn)
	for i := range tx.Inputs {
		if err := deserializeTxIn(r, &tx.Inputs[i]); err != nil {
			return nil, fmt.Errorf("reading input %d: %w", i, err)
		}
	}

	nOut, err := readVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("reading output count: %w", err)
	}
	tx.Outputs = make([]TxOut, nOut)
	for i := range tx.Outputs {
		if err := deserializeTxOut(r, &tx.Outputs[i]); err != nil {
			return nil, fmt.Errorf("reading output %d: %w", i, err)
		}
	}

	if err := binary.Read(r, binary.LittleEndian, &tx.LockTime); err != nil {
		return nil, fmt.Errorf("reading lock time: %w", err)
	}

	if hasWitness {
		for i := range tx.Inputs {
			if err := deserializeTxInWitness(r, &tx.Inputs[i].Witness); err != nil {
				return nil, fmt.Errorf("reading input %d witness: %w", i, err)
			}
		}
		for i := range tx.Outputs {
			if err := deserializeTxOutWitness(r, &tx.Outputs[i].Witness); err != nil {
				return nil, fmt.Errorf("reading output %d witness: %w", i, err)
			}
		}
	}

	return tx, nil
}

func deserializeTxIn(r *bytes.Reader, in *TxIn) error {
	if _, err := io.ReadFull(r, in.PreviousOutput.Txid[:]); err != nil {
		return err
	}
	var vout uint32
	if err := binary.Read(r, binary.LittleEndian, &vout); err != nil {
		return err
	}

	hasIssuance := false
	if in.PreviousOutput.Txid == (chainhash.Hash{}) && vout == 0xffffffff {
		// Coinbase null outpoint carries no flags.
		in.PreviousOutput.Vout = vout
	} else {
		hasIssuance = vout&outpointIssuanceFlag != 0
		in.IsPegin = vout&outpointPeginFlag != 0
		in.PreviousOutput.Vout = vout & outpointIndexMask
	}

	script, err := readVarBytes(r)
	if err != nil {
		return err
	}
	in.ScriptSig = Script(script)

	if err := binary.Read(r, binary.LittleEndian, &in.Sequence); err != nil {
		return err
	}

	if hasIssuance {
		iss := &AssetIssuance{}
		if _, err := io.ReadFull(r, iss.Nonce[:]); err != nil {
			return err
		}
		if _, err := io.ReadFull(r, iss.Entropy[:]); err != nil {
			return err
		}
		if iss.Amount, err = deserializeValue(r); err != nil {
			return err
		}
		if iss.InflationKeys, err = deserializeValue(r); err != nil {
			return err
		}
		in.Issuance = iss
	}
	return nil
}

func deserializeTxOut(r *bytes.Reader, out *TxOut) error {
	var err error
	if out.Asset, err = deserializeAsset(r); err != nil {
		return err
	}
	if out.Value, err = deserializeValue(r); err != nil {
		return err
	}
	if out.Nonce, err = deserializeNonce(r); err != nil {
		return err
	}
	script, err := readVarBytes(r)
	if err != nil {
		return err
	}
	out.ScriptPubKey = Script(script)
	return nil
}

func deserializeTxInWitness(r *bytes.Reader, w *TxInWitness) error {
	var err error
	if w.AmountRangeproof, err = readVarBytes(r); err != nil {
		return err
	}
	if w.InflationKeysRangeproof, err = readVarBytes(r); err != nil {
		return err
	}
	if w.ScriptWitness, err = readVarBytesVector(r); err != nil {
		return err
	}
	if w.PeginWitness, err = readVarBytesVector(r); err != nil {
		return err
	}
	return nil
}

func deserializeTxOutWitness(r *bytes.Reader, w *TxOutWitness) error {
	var err error
	if w.SurjectionProof, err = readVarBytes(r); err != nil {
		return err
	}
	if w.Rangeproof, err = readVarBytes(r); err != nil {
		return err
	}
	return nil
}

// Serialize encodes the transaction with witness data.
func (tx *Transaction) Serialize() []byte {
	return tx.serialize(true)
}

// SerializeNoWitness encodes the transaction with a zero flags byte and
// no witness section. This is the encoding the txid commits to.
func (tx *Transaction) SerializeNoWitness() []byte {
	return tx.serialize(false)
}

func (tx *Transaction) serialize(withWitness bool) []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, tx.Version)
	flags := byte(0)
	if withWitness && tx.hasWitness() {
		flags = 1
	}
	buf.WriteByte(flags)

	writeVarInt(buf, uint64(len(tx.Inputs)))
	for i := range tx.Inputs {
		serializeTxIn(buf, &tx.Inputs[i])
	}

	writeVarInt(buf, uint64(len(tx.Outputs)))
	for i := range tx.Outputs {
		serializeTxOut(buf, &tx.Outputs[i])
	}

	binary.Write(buf, binary.LittleEndian, tx.LockTime)

	if flags != 0 {
		for i := range tx.Inputs {
			w := &tx.Inputs[i].Witness
			writeVarBytes(buf, w.AmountRangeproof)
			writeVarBytes(buf, w.InflationKeysRangeproof)
			writeVarBytesVector(buf, w.ScriptWitness)
			writeVarBytesVector(buf, w.PeginWitness)
		}
		for i := range tx.Outputs {
			w := &tx.Outputs[i].Witness
			writeVarBytes(buf, w.SurjectionProof)
			writeVarBytes(buf, w.Rangeproof)
		}
	}

	return buf.Bytes()
}

func serializeTxIn(buf *bytes.Buffer, in *TxIn) {
	buf.Write(in.PreviousOutput.Txid[:])
	vout := in.PreviousOutput.Vout
	if !in.PreviousOutput.IsNull() {
		if in.Issuance != nil {
			vout |= outpointIssuanceFlag
		}
		if in.IsPegin {
			vout |= outpointPeginFlag
		}
	}
	binary.Write(buf, binary.LittleEndian, vout)
	writeVarBytes(buf, in.ScriptSig)
	binary.Write(buf, binary.LittleEndian, in.Sequence)
	if in.Issuance != nil {
		buf.Write(in.Issuance.Nonce[:])
		buf.Write(in.Issuance.Entropy[:])
		in.Issuance.Amount.Serialize(buf)
		in.Issuance.InflationKeys.Serialize(buf)
	}
}

func serializeTxOut(buf *bytes.Buffer, out *TxOut) {
	out.Asset.Serialize(buf)
	out.Value.Serialize(buf)
	out.Nonce.Serialize(buf)
	writeVarBytes(buf, out.ScriptPubKey)
}

func (tx *Transaction) hasWitness() bool {
	for i := range tx.Inputs {
		if !tx.Inputs[i].Witness.IsEmpty() {
			return true
		}
	}
	for i := range tx.Outputs {
		if !tx.Outputs[i].Witness.IsEmpty() {
			return true
		}
	}
	return false
}

// TxID returns the transaction ID: the double-SHA256 of the
// witness-stripped serialization.
func (tx *Transaction) TxID() chainhash.Hash {
	return chainhash.DoubleHashH(tx.SerializeNoWitness())
}

// WTxID returns the hash of the full serialization including witnesses.
func (tx *Transaction) WTxID() chainhash.Hash {
	return chainhash.DoubleHashH(tx.Serialize())
}

// Size returns the full serialized size in bytes.
func (tx *Transaction) Size() int { return len(tx.Serialize()) }

// Weight returns the BIP 141-style weight: four times the base size plus
// the witness size.
func (tx *Transaction) Weight() int {
	base := len(tx.SerializeNoWitness())
	total := len(tx.Serialize())
	return base*4 + (total - base)
}

// VSize returns the virtual size, weight divided by four rounding down.
func (tx *Transaction) VSize() int { return tx.Weight() / 4 }

// Compact-size integers, as used throughout the Bitcoin wire family.

func readVarInt(r *bytes.Reader) (uint64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, err
	}
	switch first[0] {
	case 0xfd:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xfe:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xff:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return uint64(first[0]), nil
	}
}

func writeVarInt(w io.Writer, n uint64) {
	switch {
	case n < 0xfd:
		w.Write([]byte{byte(n)})
	case n <= 0xffff:
		w.Write([]byte{0xfd})
		binary.Write(w, binary.LittleEndian, uint16(n))
	case n <= 0xffffffff:
		w.Write([]byte{0xfe})
		binary.Write(w, binary.LittleEndian, uint32(n))
	default:
		w.Write([]byte{0xff})
		binary.Write(w, binary.LittleEndian, n)
	}
}

func readVarBytes(r *bytes.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("declared length %d exceeds remaining %d bytes", n, r.Len())
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeVarBytes(w io.Writer, b []byte) {
	writeVarInt(w, uint64(len(b)))
	w.Write(b)
}

func readVarBytesVector(r *bytes.Reader) ([][]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("declared count %d exceeds remaining %d bytes", n, r.Len())
	}
	if n == 0 {
		return nil, nil
	}
	out := make([][]byte, n)
	for i := range out {
		if out[i], err = readVarBytes(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func writeVarBytesVector(w io.Writer, v [][]byte) {
	writeVarInt(w, uint64(len(v)))
	for _, item := range v {
		writeVarBytes(w, item)
	}
}
