package elements

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Taproot on Elements uses its own hash tags so that commitments are
// domain-separated from Bitcoin's.
var (
	tagTapLeaf   = []byte("TapLeaf/elements")
	tagTapBranch = []byte("TapBranch/elements")
	tagTapTweak  = []byte("TapTweak/elements")
)

// ControlBlockBaseSize is the size of a control block with an empty
// Merkle path: one version/parity byte plus a 32-byte internal key.
const ControlBlockBaseSize = 33

// TapLeafHash computes the tapleaf hash committing to a script under the
// given leaf version.
func TapLeafHash(leafVersion byte, script []byte) [32]byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(leafVersion)
	writeVarBytes(buf, script)
	return *chainhash.TaggedHash(tagTapLeaf, buf.Bytes())
}

// TapBranchHash combines two Merkle subtree hashes, ordering the pair
// lexicographically as the consensus rules require.
func TapBranchHash(a, b [32]byte) [32]byte {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return *chainhash.TaggedHash(tagTapBranch, a[:], b[:])
}

// TapTweakHash computes the scalar tweak committing the internal key to
// the script tree root. For a key-path-only output root is empty.
func TapTweakHash(internalKey *btcec.PublicKey, root []byte) [32]byte {
	return *chainhash.TaggedHash(tagTapTweak, schnorr.SerializePubKey(internalKey), root)
}

// TaprootOutputKey derives the tweaked output key Q = P + t*G where t is
// the tap tweak of the internal key P and the tree root.
func TaprootOutputKey(internalKey *btcec.PublicKey, root []byte) (*btcec.PublicKey, error) {
	// Work with the even-Y representative of the internal key, as the
	// x-only encoding implies.
	lifted, err := schnorr.ParsePubKey(schnorr.SerializePubKey(internalKey))
	if err != nil {
		return nil, fmt.Errorf("lifting internal key: %w", err)
	}

	tweak := TapTweakHash(internalKey, root)
	var t btcec.ModNScalar
	if overflow := t.SetBytes(&tweak); overflow != 0 {
		return nil, fmt.Errorf("tap tweak overflows the curve order")
	}

	var p, tG, q btcec.JacobianPoint
	lifted.AsJacobian(&p)
	btcec.ScalarBaseMultNonConst(&t, &tG)
	btcec.AddNonConst(&p, &tG, &q)
	if q.Z.IsZero() {
		return nil, fmt.Errorf("tweaked key is the point at infinity")
	}
	q.ToAffine()
	return btcec.NewPublicKey(&q.X, &q.Y), nil
}

// ControlBlock is the taproot script-path control block: the leaf
// version and output key parity, the internal key, and the Merkle path
// from the revealed leaf to the tree root.
type ControlBlock struct {
	LeafVersion  byte
	OutputParity byte
	InternalKey  *btcec.PublicKey
	Path         [][32]byte
}

// ParseControlBlock deserializes a control block. The length must be 33
// plus a whole number of 32-byte path elements.
func ParseControlBlock(raw []byte) (*ControlBlock, error) {
	if len(raw) < ControlBlockBaseSize {
		return nil, fmt.Errorf("control block too short: %d bytes", len(raw))
	}
	if (len(raw)-ControlBlockBaseSize)%32 != 0 {
		return nil, fmt.Errorf("control block length %d is not 33 plus a multiple of 32", len(raw))
	}

	cb := &ControlBlock{
		LeafVersion:  raw[0] & 0xfe,
		OutputParity: raw[0] & 1,
	}
	key, err := schnorr.ParsePubKey(raw[1:33])
	if err != nil {
		return nil, fmt.Errorf("parsing internal key: %w", err)
	}
	cb.InternalKey = key

	for rest := raw[33:]; len(rest) > 0; rest = rest[32:] {
		var elem [32]byte
		copy(elem[:], rest[:32])
		cb.Path = append(cb.Path, elem)
	}
	return cb, nil
}

// Serialize encodes the control block.
func (cb *ControlBlock) Serialize() []byte {
	out := make([]byte, 0, ControlBlockBaseSize+32*len(cb.Path))
	out = append(out, cb.LeafVersion|cb.OutputParity)
	out = append(out, schnorr.SerializePubKey(cb.InternalKey)...)
	for _, elem := range cb.Path {
		out = append(out, elem[:]...)
	}
	return out
}

// RootHash walks the Merkle path up from a leaf hash to the tree root.
func (cb *ControlBlock) RootHash(leaf [32]byte) [32]byte {
	node := leaf
	for _, elem := range cb.Path {
		node = TapBranchHash(node, elem)
	}
	return node
}
