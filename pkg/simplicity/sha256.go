package simplicity

import (
	"crypto/sha256"
	"encoding/binary"
)

// Simplicity's Merkle roots are SHA-256 midstates, not finished hashes:
// every internal node runs the compression function exactly once on a
// 512-bit block built from its children, starting from a tagged initial
// value, with no length padding. The stdlib sha256 package neither
// exposes the compression function nor lets a digest start from an
// arbitrary midstate, so the compression function is implemented here.
//
// Corresponds to the Midstate arithmetic in rust-simplicity
// src/merkle/mod.rs (bip340_iv, update, update_1, update_with_weight,
// update_fail_entropy, compact_value).

// midstate is a SHA-256 chaining value, stored big-endian the way the
// roots are rendered.
type midstate [32]byte

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256InitialState is the standard SHA-256 IV.
var sha256InitialState = midstate{
	0x6a, 0x09, 0xe6, 0x67, 0xbb, 0x67, 0xae, 0x85,
	0x3c, 0x6e, 0xf3, 0x72, 0xa5, 0x4f, 0xf5, 0x3a,
	0x51, 0x0e, 0x52, 0x7f, 0x9b, 0x05, 0x68, 0x8c,
	0x1f, 0x83, 0xd9, 0xab, 0x5b, 0xe0, 0xcd, 0x19,
}

// compress runs the SHA-256 compression function once: one 64-byte
// block folded into the chaining value.
func compress(h midstate, block *[64]byte) midstate {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	var v [8]uint32
	for i := range v {
		v[i] = binary.BigEndian.Uint32(h[i*4:])
	}
	a, b, c, d, e, f, g, hh := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for i := 0; i < 64; i++ {
		s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + sha256K[i] + w[i]
		s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}
	v[0] += a
	v[1] += b
	v[2] += c
	v[3] += d
	v[4] += e
	v[5] += f
	v[6] += g
	v[7] += hh

	var out midstate
	for i, x := range v {
		binary.BigEndian.PutUint32(out[i*4:], x)
	}
	return out
}

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

// bip340IV derives the tagged initial value for a hash namespace:
// the midstate after compressing the single block sha256(tag)||sha256(tag).
func bip340IV(tag string) midstate {
	th := sha256.Sum256([]byte(tag))
	var block [64]byte
	copy(block[:32], th[:])
	copy(block[32:], th[:])
	return compress(sha256InitialState, &block)
}

// update extends the midstate with the block left||right.
func (m midstate) update(left, right midstate) midstate {
	var block [64]byte
	copy(block[:32], left[:])
	copy(block[32:], right[:])
	return compress(m, &block)
}

// update1 extends the midstate with 256 zero bits followed by right.
func (m midstate) update1(right midstate) midstate {
	var block [64]byte
	copy(block[32:], right[:])
	return compress(m, &block)
}

// updateWithWeight extends the midstate with a left block whose last 64
// bits hold the weight, followed by right.
func (m midstate) updateWithWeight(weight uint64, right midstate) midstate {
	var block [64]byte
	binary.BigEndian.PutUint64(block[24:32], weight)
	copy(block[32:], right[:])
	return compress(m, &block)
}

// updateFailEntropy extends the midstate with a full 512-bit entropy block.
func (m midstate) updateFailEntropy(entropy [64]byte) midstate {
	return compress(m, &entropy)
}

// compactValueHash hashes the compact bit encoding of a value: the bits
// are padded SHA-256 style (a 1 bit, zeroes, the 64-bit big-endian bit
// length) and the whole blocks are folded without further padding.
func compactValueHash(bits []byte, nbits int) midstate {
	msg := make([]byte, 0, (nbits+7)/8+72)
	msg = append(msg, bits[:(nbits+7)/8]...)
	if nbits%8 == 0 {
		msg = append(msg, 0x80)
	} else {
		msg[len(msg)-1] |= 1 << (7 - uint(nbits%8))
	}
	pad := 56 - len(msg)%64
	if pad < 0 {
		pad += 64
	}
	msg = append(msg, make([]byte, pad)...)
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(nbits))
	msg = append(msg, length[:]...)

	h := sha256InitialState
	for off := 0; off < len(msg); off += 64 {
		h = compress(h, (*[64]byte)(msg[off:off+64]))
	}
	return h
}
