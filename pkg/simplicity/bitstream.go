// Package simplicity implements decoding, Merkle-root computation and
// rendering for Simplicity programs.
//
// Simplicity is a typed combinator language used to lock coins on
// Elements-style chains. Programs are committed to on-chain by a Merkle
// root of their combinator structure (the CMR) and redeemed with witness
// data attached. This package provides the narrow surface the rest of the
// repository consumes:
//
//   - bit-level decoding of commitment-time and redemption-time programs
//   - the three identity hashes (CMR, AMR, IHR)
//   - type inference and arrow rendering
//   - re-encoding to the canonical base64 form
//
// The corresponding reference implementation is rust-simplicity
// (BlockstreamResearch/rust-simplicity), in particular:
//   - src/bit_encoding/decode.rs (program decoding)
//   - src/merkle/ (CMR/AMR/IHR definitions)
//   - src/types/ (type inference)
package simplicity

import (
	"fmt"
)

// Bit-stream limits. A program length or natural number beyond these
// bounds is rejected before any allocation happens.
const (
	// MaxNatural bounds any single decoded natural number.
	MaxNatural = 1 << 31

	// MaxNodes bounds the number of nodes in a single program.
	MaxNodes = 1 << 24
)

// ErrBitstreamEOF is returned when the decoder runs off the end of its input.
type ErrBitstreamEOF struct {
	What string // what was being read
}

func (e *ErrBitstreamEOF) Error() string {
	return fmt.Sprintf("unexpected end of bitstream while reading %s", e.What)
}

// BitReader reads a byte slice one bit at a time, most significant bit
// first. This matches the Simplicity serialization convention.
type BitReader struct {
	data []byte
	pos  int // absolute bit position
}

// NewBitReader creates a BitReader over data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBit reads a single bit.
func (r *BitReader) ReadBit(what string) (bool, error) {
	if r.pos >= len(r.data)*8 {
		return false, &ErrBitstreamEOF{What: what}
	}
	b := r.data[r.pos/8]
	bit := (b >> (7 - uint(r.pos%8))) & 1
	r.pos++
	return bit == 1, nil
}

// ReadBits reads n bits (n <= 64) into the low bits of a uint64.
func (r *BitReader) ReadBits(n int, what string) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit(what)
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// ReadBitVector reads n bits into a packed byte slice, MSB first. The
// length is checked against the remaining input before anything is
// allocated, so a corrupt stream declaring a huge vector fails cheaply.
func (r *BitReader) ReadBitVector(n int, what string) ([]byte, error) {
	if n > r.Remaining() {
		return nil, &ErrBitstreamEOF{What: what}
	}
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit(what)
		if err != nil {
			return nil, err
		}
		if bit {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return out, nil
}

// ReadNatural decodes a positive natural number using the Simplicity
// prefix code: a unary run of 1-bits gives the recursion depth, then
// lengths are decoded innermost-first, each length read as that many
// bits appended to an implicit leading 1.
//
// Corresponds to decode_natural in rust-simplicity decode.rs.
func (r *BitReader) ReadNatural(bound int, what string) (int, error) {
	depth := 0
	for {
		bit, err := r.ReadBit(what)
		if err != nil {
			return 0, err
		}
		if !bit {
			break
		}
		depth++
		if depth > 64 {
			return 0, fmt.Errorf("natural number prefix too deep while reading %s", what)
		}
	}

	length := 0
	for {
		n := 1
		for i := 0; i < length; i++ {
			bit, err := r.ReadBit(what)
			if err != nil {
				return 0, err
			}
			n <<= 1
			if bit {
				n |= 1
			}
			if n > MaxNatural {
				return 0, fmt.Errorf("natural number out of range while reading %s", what)
			}
		}
		if depth == 0 {
			if n > bound {
				return 0, fmt.Errorf("natural number %d exceeds bound %d while reading %s", n, bound, what)
			}
			return n, nil
		}
		length = n
		depth--
	}
}

// CloseBlock checks that any remaining bits in the final byte are zero
// padding. Trailing non-zero bits indicate a truncated or corrupt program.
func (r *BitReader) CloseBlock() error {
	for r.pos%8 != 0 {
		bit, err := r.ReadBit("padding")
		if err != nil {
			return err
		}
		if bit {
			return fmt.Errorf("illegal non-zero padding bit at position %d", r.pos-1)
		}
	}
	return nil
}

// BitWriter accumulates bits MSB-first and packs them into bytes,
// zero-padding the final byte. It is the inverse of BitReader and is
// used to re-encode programs to their canonical byte form.
type BitWriter struct {
	data []byte
	n    int // bits written
}

// WriteBit appends one bit.
func (w *BitWriter) WriteBit(bit bool) {
	if w.n%8 == 0 {
		w.data = append(w.data, 0)
	}
	if bit {
		w.data[w.n/8] |= 1 << (7 - uint(w.n%8))
	}
	w.n++
}

// WriteBits appends the low n bits of v, most significant first.
func (w *BitWriter) WriteBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit((v>>uint(i))&1 == 1)
	}
}

// WriteBitVector appends n bits from a packed byte slice.
func (w *BitWriter) WriteBitVector(data []byte, n int) {
	for i := 0; i < n; i++ {
		w.WriteBit(data[i/8]&(1<<(7-uint(i%8))) != 0)
	}
}

// WriteNatural encodes a positive natural number with the prefix code
// read by ReadNatural.
func (w *BitWriter) WriteNatural(n int) {
	if n < 1 {
		panic("natural numbers start at 1")
	}
	// Collect the nested lengths outermost-first.
	var lengths []int
	for n > 1 {
		lengths = append(lengths, n)
		n = bitLen(n) - 1
	}
	w.WriteBits(((1<<uint(len(lengths)))-1)<<1, len(lengths)+1) // unary depth, 0 terminator
	for i := len(lengths) - 1; i >= 0; i-- {
		v := lengths[i]
		k := bitLen(v) - 1
		w.WriteBits(uint64(v)&((1<<uint(k))-1), k) // drop the implicit leading 1
	}
}

// Bytes returns the accumulated bits, zero-padded to a whole byte.
func (w *BitWriter) Bytes() []byte {
	return w.data
}

// BitLen returns the number of bits written so far.
func (w *BitWriter) BitLen() int {
	return w.n
}

func bitLen(n int) int {
	l := 0
	for n > 0 {
		n >>= 1
		l++
	}
	return l
}
