package simplicity

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// RedeemProgram is a redemption-time program: the same combinator DAG as
// its commitment-time counterpart, with a value attached to every
// witness node. Only redemption-time programs have an AMR and an IHR.
type RedeemProgram struct {
	prog       *Program
	witnessHex string
	types      tmrCache
}

// ParseRedeem decodes a program from base64 together with its witness
// data from hex. An empty witness string is valid: it supplies the empty
// witness, which satisfies programs whose witness nodes all carry
// zero-width values.
func ParseRedeem(b64, witnessHex string) (*RedeemProgram, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding program base64: %w", err)
	}
	wit, err := hex.DecodeString(witnessHex)
	if err != nil {
		return nil, fmt.Errorf("decoding witness hex: %w", err)
	}
	return DecodeRedeem(raw, wit)
}

// DecodeRedeem decodes a program and its witness from raw bytes.
func DecodeRedeem(raw, witness []byte) (*RedeemProgram, error) {
	prog, err := DecodeCommit(raw)
	if err != nil {
		return nil, err
	}
	if err := attachWitness(prog, witness); err != nil {
		return nil, err
	}
	return &RedeemProgram{
		prog:       prog,
		witnessHex: hex.EncodeToString(witness),
		types:      make(tmrCache),
	}, nil
}

// attachWitness distributes the witness bit string over the program's
// witness nodes in serialization order. Each witness node consumes the
// compact encoding of one value of its inferred target type: sums read
// a tag bit then the chosen branch, products concatenate, unit is empty.
func attachWitness(prog *Program, witness []byte) error {
	r := NewBitReader(witness)
	for i, node := range prog.nodes {
		switch node.Kind {
		case KindWitness:
			var value BitWriter
			what := fmt.Sprintf("witness value for node %d", i)
			if err := readCompactValue(r, node.target, &value, what); err != nil {
				return fmt.Errorf("witness data too short: %w", err)
			}
			node.WitnessData = value.Bytes()
			node.WitnessBits = value.BitLen()
		case KindCase:
			if node.Left.Kind == KindHidden && node.Right.Kind == KindHidden {
				return fmt.Errorf("node %d: case with both branches hidden cannot be redeemed", i)
			}
		}
	}
	if err := r.CloseBlock(); err != nil {
		return fmt.Errorf("leftover witness bits: %w", err)
	}
	if r.pos/8 < len(witness) {
		return fmt.Errorf("%d unused bytes of witness data", len(witness)-r.pos/8)
	}
	return nil
}

// readCompactValue copies one compact-encoded value of type t from r
// into value.
func readCompactValue(r *BitReader, t *Type, value *BitWriter, what string) error {
	t = t.find()
	switch t.kind {
	case kindSum:
		bit, err := r.ReadBit(what)
		if err != nil {
			return err
		}
		value.WriteBit(bit)
		if bit {
			return readCompactValue(r, t.b, value, what)
		}
		return readCompactValue(r, t.a, value, what)
	case kindProd:
		if err := readCompactValue(r, t.a, value, what); err != nil {
			return err
		}
		return readCompactValue(r, t.b, value, what)
	default:
		return nil
	}
}

// Commit returns the underlying commitment-time view of the program.
func (rp *RedeemProgram) Commit() *Program { return rp.prog }

// Amr returns the annotated Merkle root.
func (rp *RedeemProgram) Amr() Amr {
	return Amr(rp.prog.root.amr(rp.types, make(map[*Node]midstate)))
}

// Ihr returns the identity hash.
func (rp *RedeemProgram) Ihr() Ihr {
	return rp.prog.root.ihr(rp.types)
}

// WitnessHex renders the witness exactly as supplied.
func (rp *RedeemProgram) WitnessHex() string { return rp.witnessHex }

// String re-encodes the program to canonical base64.
func (rp *RedeemProgram) String() string { return rp.prog.String() }
