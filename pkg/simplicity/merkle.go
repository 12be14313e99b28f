package simplicity

import (
	"encoding/hex"
	"fmt"
)

// The three identity hashes of a program. All are SHA-256 midstates over
// the program DAG; they differ in what each node commits to:
//
//   - CMR (commitment Merkle root): combinator structure only. Witness
//     data is excluded, hidden branches contribute their opaque hash,
//     and disconnect commits only to its left child. This is the hash
//     the scriptPubKey commits to.
//   - AMR (annotated Merkle root): structure plus the inferred types of
//     every node plus witness values.
//   - IHR (identity hash): a two-pass hash over the redemption-time
//     structure, committing to witness values and both disconnect
//     children, finalized with the root's type arrow.
//
// Corresponds to rust-simplicity src/merkle/{cmr,amr,ihr,tmr}.rs. Each
// node kind hashes from its own tagged initial value so that
// structurally different programs can never collide; the initial values
// are derived from the tag strings at startup rather than transcribed.

// Cmr is a commitment Merkle root.
type Cmr [32]byte

// Amr is an annotated Merkle root.
type Amr [32]byte

// Ihr is an identity hash.
type Ihr [32]byte

func (c Cmr) String() string { return hex.EncodeToString(c[:]) }

func (a Amr) String() string { return hex.EncodeToString(a[:]) }

func (i Ihr) String() string { return hex.EncodeToString(i[:]) }

// MarshalText renders the hash as hex; used by both JSON and YAML output.
func (c Cmr) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (a Amr) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (i Ihr) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// ParseCmr parses a 64-character hex string as a CMR.
func ParseCmr(s string) (Cmr, error) {
	var c Cmr
	b, err := hex.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("decoding cmr hex: %w", err)
	}
	if len(b) != 32 {
		return c, fmt.Errorf("cmr must be 32 bytes, got %d", len(b))
	}
	copy(c[:], b)
	return c, nil
}

const (
	tagCommitmentPrefix = "Simplicity\x1fCommitment\x1f"
	tagAnnotatedPrefix  = "Simplicity\x1fAnnotated\x1f"
	tagIdentityPrefix   = "Simplicity\x1fIdentity\x1f"
	tagIdentity         = "Simplicity\x1fIdentity"
	tagJet              = "Simplicity\x1fJet"
	tagTypePrefix       = "Simplicity\x1fType\x1f"
)

func combinatorIVs(prefix string) map[NodeKind]midstate {
	ivs := make(map[NodeKind]midstate, 12)
	for _, k := range []NodeKind{
		KindIden, KindUnit, KindInjL, KindInjR, KindTake, KindDrop,
		KindComp, KindCase, KindPair, KindDisconnect, KindWitness, KindFail,
	} {
		ivs[k] = bip340IV(prefix + k.Name())
	}
	return ivs
}

var (
	cmrIVs = combinatorIVs(tagCommitmentPrefix)
	amrIVs = combinatorIVs(tagAnnotatedPrefix)

	// The identity hash shares the commitment IVs except for the two
	// kinds whose identity differs from their commitment: disconnect
	// (both children count) and witness (the value counts).
	imrIVs = func() map[NodeKind]midstate {
		ivs := combinatorIVs(tagCommitmentPrefix)
		ivs[KindDisconnect] = bip340IV(tagIdentityPrefix + "disconnect")
		ivs[KindWitness] = bip340IV(tagIdentityPrefix + "witness")
		return ivs
	}()

	amrAssertlIV = bip340IV(tagAnnotatedPrefix + "assertl")
	amrAssertrIV = bip340IV(tagAnnotatedPrefix + "assertr")

	identityIV = bip340IV(tagIdentity)
	jetIV      = bip340IV(tagJet)

	tmrUnitIV = bip340IV(tagTypePrefix + "unit")
	tmrSumIV  = bip340IV(tagTypePrefix + "sum")
	tmrProdIV = bip340IV(tagTypePrefix + "prod")

	// CMRs of injl(unit) and injr(unit), the scribes for bits 0 and 1.
	bitCmrs = [2]midstate{
		cmrIVs[KindInjL].update1(cmrIVs[KindUnit]),
		cmrIVs[KindInjR].update1(cmrIVs[KindUnit]),
	}

	// wordTypeTmrs[n] is the TMR of the word type 2^(2^n).
	wordTypeTmrs = func() [32]midstate {
		var tmrs [32]midstate
		tmrs[0] = tmrSumIV.update(tmrUnitIV, tmrUnitIV)
		for n := 1; n < len(tmrs); n++ {
			tmrs[n] = tmrProdIV.update(tmrs[n-1], tmrs[n-1])
		}
		return tmrs
	}()
)

// wordCmr computes the CMR of a word constant: the identity hash of the
// scribe expression for the word's bits, wrapped as a jet whose weight
// is the bit count.
func wordCmr(depth int, value []byte) midstate {
	bits := 1 << uint(depth-1)
	stack := make([]midstate, 0, 33)
	for i := 0; i < bits; i++ {
		bit := (value[i/8] >> (7 - uint(i%8))) & 1
		stack = append(stack, bitCmrs[bit])
		for j := i; j&1 == 1; j >>= 1 {
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, cmrIVs[KindPair].update(left, right))
		}
	}
	scribe := identityIV.update1(stack[0])
	withArrow := scribe.update(tmrUnitIV, wordTypeTmrs[depth-1])
	return jetIV.updateWithWeight(uint64(bits), withArrow)
}

// cmr computes (and caches) the commitment Merkle root of a node.
func (n *Node) cmr() Cmr {
	if n.cmrCache != nil {
		return *n.cmrCache
	}
	var h midstate
	switch n.Kind {
	case KindHidden:
		h = midstate(n.HiddenHash)
	case KindJet:
		h = midstate(n.Jet.Cmr)
	case KindWord:
		h = wordCmr(n.WordDepth, n.WordValue)
	case KindFail:
		h = cmrIVs[KindFail].updateFailEntropy(n.FailEntropy)
	case KindIden, KindUnit, KindWitness:
		h = cmrIVs[n.Kind]
	case KindInjL, KindInjR, KindTake, KindDrop:
		h = cmrIVs[n.Kind].update1(midstate(n.Left.cmr()))
	case KindDisconnect:
		// Only the left child is committed: the right half is supplied
		// at redemption time.
		h = cmrIVs[n.Kind].update1(midstate(n.Left.cmr()))
	case KindComp, KindCase, KindPair:
		h = cmrIVs[n.Kind].update(midstate(n.Left.cmr()), midstate(n.Right.cmr()))
	}
	c := Cmr(h)
	n.cmrCache = &c
	return c
}

// tmrCache memoizes type Merkle roots per inference run.
type tmrCache map[*Type]midstate

func (c tmrCache) tmr(t *Type) midstate {
	t = t.find()
	if h, ok := c[t]; ok {
		return h
	}
	var h midstate
	switch t.kind {
	case kindSum:
		h = tmrSumIV.update(c.tmr(t.a), c.tmr(t.b))
	case kindProd:
		h = tmrProdIV.update(c.tmr(t.a), c.tmr(t.b))
	default:
		h = tmrUnitIV
	}
	c[t] = h
	return h
}

// amr computes the annotated Merkle root of a node. Requires finalized
// types, so it is only available on redemption-time programs.
func (n *Node) amr(types tmrCache, memo map[*Node]midstate) midstate {
	if h, ok := memo[n]; ok {
		return h
	}
	var h midstate
	switch n.Kind {
	case KindHidden:
		h = midstate(n.HiddenHash)
	case KindJet:
		h = midstate(n.Jet.Cmr)
	case KindWord:
		h = wordCmr(n.WordDepth, n.WordValue)
	case KindFail:
		h = amrIVs[KindFail].updateFailEntropy(n.FailEntropy)
	case KindIden, KindUnit:
		h = amrIVs[n.Kind].update1(types.tmr(n.source))
	case KindInjL, KindInjR:
		// target = B + C
		tgt := n.target.find()
		h = amrIVs[n.Kind].
			update(types.tmr(n.source), types.tmr(tgt.a)).
			update(types.tmr(tgt.b), n.Left.amr(types, memo))
	case KindTake, KindDrop:
		// source = A × B
		src := n.source.find()
		h = amrIVs[n.Kind].
			update(types.tmr(src.a), types.tmr(src.b)).
			update(types.tmr(n.target), n.Left.amr(types, memo))
	case KindComp:
		h = amrIVs[n.Kind].
			update1(types.tmr(n.source)).
			update(types.tmr(n.Left.target), types.tmr(n.target)).
			update(n.Left.amr(types, memo), n.Right.amr(types, memo))
	case KindCase:
		// source = (A + B) × C; a hidden branch makes this an assertion
		// hashed under its own tag.
		iv := amrIVs[KindCase]
		if n.Right.Kind == KindHidden {
			iv = amrAssertlIV
		} else if n.Left.Kind == KindHidden {
			iv = amrAssertrIV
		}
		src := n.source.find()
		ab := src.a.find()
		h = iv.
			update(types.tmr(ab.a), types.tmr(ab.b)).
			update(types.tmr(src.b), types.tmr(n.target)).
			update(n.Left.amr(types, memo), n.Right.amr(types, memo))
	case KindPair:
		h = amrIVs[n.Kind].
			update1(types.tmr(n.source)).
			update(types.tmr(n.Left.target), types.tmr(n.Right.target)).
			update(n.Left.amr(types, memo), n.Right.amr(types, memo))
	case KindDisconnect:
		// target = B × D; C is the right child's source.
		tgt := n.target.find()
		h = amrIVs[n.Kind].
			update(types.tmr(n.source), types.tmr(tgt.a)).
			update(types.tmr(n.Right.source), types.tmr(tgt.b)).
			update(n.Left.amr(types, memo), n.Right.amr(types, memo))
	case KindWitness:
		h = amrIVs[n.Kind].
			update1(types.tmr(n.source)).
			update(types.tmr(n.target), compactValueHash(n.WitnessData, n.WitnessBits))
	}
	memo[n] = h
	return h
}

// imr computes the first-pass identity Merkle root: like the CMR but
// witness nodes commit to their value and disconnect commits to both
// children.
func (n *Node) imr(types tmrCache, memo map[*Node]midstate) midstate {
	if h, ok := memo[n]; ok {
		return h
	}
	var h midstate
	switch n.Kind {
	case KindHidden:
		h = midstate(n.HiddenHash)
	case KindJet:
		h = midstate(n.Jet.Cmr)
	case KindWord:
		h = wordCmr(n.WordDepth, n.WordValue)
	case KindFail:
		h = imrIVs[KindFail].updateFailEntropy(n.FailEntropy)
	case KindIden, KindUnit:
		h = imrIVs[n.Kind]
	case KindWitness:
		h = imrIVs[n.Kind].update(compactValueHash(n.WitnessData, n.WitnessBits), types.tmr(n.target))
	case KindInjL, KindInjR, KindTake, KindDrop:
		h = imrIVs[n.Kind].update1(n.Left.imr(types, memo))
	case KindComp, KindCase, KindPair, KindDisconnect:
		h = imrIVs[n.Kind].update(n.Left.imr(types, memo), n.Right.imr(types, memo))
	}
	memo[n] = h
	return h
}

// ihr finalizes the identity hash with the root's type arrow.
func (n *Node) ihr(types tmrCache) Ihr {
	first := n.imr(types, make(map[*Node]midstate))
	return Ihr(identityIV.
		update1(first).
		update(types.tmr(n.source), types.tmr(n.target)))
}
