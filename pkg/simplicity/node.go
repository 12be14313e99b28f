package simplicity

// NodeKind enumerates the Simplicity combinators plus the three
// non-combinator node forms (hidden, jet, word) that appear in the
// serialization.
type NodeKind int

const (
	KindIden NodeKind = iota
	KindUnit
	KindInjL
	KindInjR
	KindTake
	KindDrop
	KindComp
	KindCase
	KindPair
	KindDisconnect
	KindWitness
	KindFail
	KindHidden
	KindJet
	KindWord
)

var kindNames = map[NodeKind]string{
	KindIden:       "iden",
	KindUnit:       "unit",
	KindInjL:       "injl",
	KindInjR:       "injr",
	KindTake:       "take",
	KindDrop:       "drop",
	KindComp:       "comp",
	KindCase:       "case",
	KindPair:       "pair",
	KindDisconnect: "disconnect",
	KindWitness:    "witness",
	KindFail:       "fail",
	KindHidden:     "hidden",
	KindJet:        "jet",
	KindWord:       "word",
}

// Name returns the lower-case combinator name.
func (k NodeKind) Name() string { return kindNames[k] }

// Node is one node of a program DAG. Nodes are immutable after decoding;
// the same node may be shared by several parents.
type Node struct {
	Kind  NodeKind
	Left  *Node // first child (nil for leaves)
	Right *Node // second child (nil unless two-child combinator)

	// Kind-specific payloads.
	Jet         *Jet     // KindJet
	WordDepth   int      // KindWord: value has type 2^(2^(depth-1))
	WordValue   []byte   // KindWord: packed value bits
	HiddenHash  [32]byte // KindHidden: opaque Merkle root of a pruned branch
	FailEntropy [64]byte // KindFail
	WitnessData []byte   // KindWitness, redemption-time only: compact value bits
	WitnessBits int      // KindWitness: number of valid bits in WitnessData

	source, target *Type
	cmrCache       *Cmr
}

// Source returns the node's inferred source type.
func (n *Node) Source() *Type { return n.source }

// Target returns the node's inferred target type.
func (n *Node) Target() *Type { return n.target }

// arity returns the number of child references the node carries in the
// serialization.
func (n *Node) arity() int {
	switch n.Kind {
	case KindComp, KindCase, KindPair, KindDisconnect:
		return 2
	case KindInjL, KindInjR, KindTake, KindDrop:
		return 1
	default:
		return 0
	}
}

// applyTypeConstraints gives the node fresh source/target types and
// unifies them with its children according to the Simplicity typing
// rules. Hidden children are skipped: a case with one hidden branch is
// typed from the remaining branch alone (assertl/assertr).
func (n *Node) applyTypeConstraints() error {
	n.source = newFree()
	n.target = newFree()

	switch n.Kind {
	case KindIden:
		// iden : A -> A
		return unify(n.source, n.target)

	case KindUnit:
		// unit : A -> 1
		return unify(n.target, unitType())

	case KindInjL:
		// injl t : A -> B + C   where t : A -> B
		if err := unify(n.source, n.Left.source); err != nil {
			return err
		}
		return unify(n.target, sum(n.Left.target, newFree()))

	case KindInjR:
		// injr t : A -> B + C   where t : A -> C
		if err := unify(n.source, n.Left.source); err != nil {
			return err
		}
		return unify(n.target, sum(newFree(), n.Left.target))

	case KindTake:
		// take t : A × B -> C   where t : A -> C
		if err := unify(n.source, prod(n.Left.source, newFree())); err != nil {
			return err
		}
		return unify(n.target, n.Left.target)

	case KindDrop:
		// drop t : A × B -> C   where t : B -> C
		if err := unify(n.source, prod(newFree(), n.Left.source)); err != nil {
			return err
		}
		return unify(n.target, n.Left.target)

	case KindComp:
		// comp s t : A -> C   where s : A -> B, t : B -> C
		if err := unify(n.source, n.Left.source); err != nil {
			return err
		}
		if err := unify(n.Left.target, n.Right.source); err != nil {
			return err
		}
		return unify(n.target, n.Right.target)

	case KindPair:
		// pair s t : A -> B × C   where s : A -> B, t : A -> C
		if err := unify(n.source, n.Left.source); err != nil {
			return err
		}
		if err := unify(n.source, n.Right.source); err != nil {
			return err
		}
		return unify(n.target, prod(n.Left.target, n.Right.target))

	case KindCase:
		// case s t : (A + B) × C -> D
		// where s : A × C -> D, t : B × C -> D.
		a, b, c := newFree(), newFree(), newFree()
		if err := unify(n.source, prod(sum(a, b), c)); err != nil {
			return err
		}
		if n.Left.Kind != KindHidden {
			if err := unify(n.Left.source, prod(a, c)); err != nil {
				return err
			}
			if err := unify(n.Left.target, n.target); err != nil {
				return err
			}
		}
		if n.Right.Kind != KindHidden {
			if err := unify(n.Right.source, prod(b, c)); err != nil {
				return err
			}
			if err := unify(n.Right.target, n.target); err != nil {
				return err
			}
		}
		return nil

	case KindDisconnect:
		// disconnect s t : A -> B × D
		// where s : 2^256 × A -> B × C, t : C -> D.
		b, c := newFree(), newFree()
		if err := unify(n.Left.source, prod(pow2Type(256), n.source)); err != nil {
			return err
		}
		if err := unify(n.Left.target, prod(b, c)); err != nil {
			return err
		}
		if err := unify(n.Right.source, c); err != nil {
			return err
		}
		return unify(n.target, prod(b, n.Right.target))

	case KindWitness:
		// witness : A -> B, both unconstrained.
		return nil

	case KindFail:
		// fail is untypeable at redemption but carries free types at
		// commitment so the program around it can still be inferred.
		return nil

	case KindJet:
		if err := unify(n.source, n.Jet.sourceType()); err != nil {
			return err
		}
		return unify(n.target, n.Jet.targetType())

	case KindWord:
		// word : 1 -> 2^(2^(depth-1))
		if err := unify(n.source, unitType()); err != nil {
			return err
		}
		return unify(n.target, pow2Type(1<<uint(n.WordDepth-1)))

	case KindHidden:
		// Hidden nodes stand in for pruned branches and have no type.
		return nil
	}
	return nil
}
