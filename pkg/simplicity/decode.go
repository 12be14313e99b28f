package simplicity

import (
	"encoding/base64"
	"fmt"
)

// Program is a commitment-time Simplicity program: a combinator DAG with
// no witness data attached. Hidden (pruned) branches are allowed so that
// identity and address information can be recovered even from improperly
// pruned encodings.
type Program struct {
	nodes []*Node // post-order, root last
	root  *Node
}

// Root returns the root node of the DAG.
func (p *Program) Root() *Node { return p.root }

// Len returns the number of serialized nodes.
func (p *Program) Len() int { return len(p.nodes) }

// Cmr returns the commitment Merkle root of the program.
func (p *Program) Cmr() Cmr { return p.root.cmr() }

// Arrow renders the root's inferred type arrow, e.g. "1 → 2^32".
func (p *Program) Arrow() string {
	return fmt.Sprintf("%s → %s", p.root.source, p.root.target)
}

// ParseCommit decodes a program from its canonical base64 form.
func ParseCommit(b64 string) (*Program, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding program base64: %w", err)
	}
	return DecodeCommit(raw)
}

// DecodeCommit decodes a program from raw bytes.
func DecodeCommit(raw []byte) (*Program, error) {
	r := NewBitReader(raw)
	p, err := decodeProgram(r)
	if err != nil {
		return nil, err
	}
	if err := r.CloseBlock(); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeProgram reads the node list, resolves child back-references,
// checks connectivity and runs type inference.
func decodeProgram(r *BitReader) (*Program, error) {
	n, err := r.ReadNatural(MaxNodes, "program length")
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node, err := decodeNode(r, nodes)
		if err != nil {
			return nil, fmt.Errorf("decoding node %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}

	root := nodes[len(nodes)-1]
	if root.Kind == KindHidden {
		return nil, fmt.Errorf("program root is a hidden node")
	}
	if err := checkConnected(nodes, root); err != nil {
		return nil, err
	}

	// Type inference runs in serialization order so children are always
	// constrained before their parents.
	for i, node := range nodes {
		if err := node.applyTypeConstraints(); err != nil {
			return nil, fmt.Errorf("type checking node %d (%s): %w", i, node.Kind.Name(), err)
		}
	}
	// The program as a whole must run against the unit environment.
	if err := unify(root.source, unitType()); err != nil {
		return nil, fmt.Errorf("program source type is not unit: %w", err)
	}
	root.source.finalize()
	root.target.finalize()
	for _, node := range nodes {
		if node.Kind == KindHidden {
			continue
		}
		node.source.finalize()
		node.target.finalize()
	}

	return &Program{nodes: nodes, root: root}, nil
}

// decodeNode reads one node. prior holds all previously decoded nodes;
// child references are naturals counting backwards from the current
// position.
func decodeNode(r *BitReader, prior []*Node) (*Node, error) {
	bit, err := r.ReadBit("node code")
	if err != nil {
		return nil, err
	}
	if bit {
		jetBit, err := r.ReadBit("node code")
		if err != nil {
			return nil, err
		}
		if jetBit {
			jet, err := decodeJet(r)
			if err != nil {
				return nil, err
			}
			return &Node{Kind: KindJet, Jet: jet}, nil
		}
		depth, err := r.ReadNatural(32, "word depth")
		if err != nil {
			return nil, err
		}
		bits := 1 << uint(depth-1)
		value, err := r.ReadBitVector(bits, "word value")
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindWord, WordDepth: depth, WordValue: value}, nil
	}

	code, err := r.ReadBits(2, "node code")
	if err != nil {
		return nil, err
	}
	switch code {
	case 0: // two-child combinators
		sub, err := r.ReadBits(2, "node code")
		if err != nil {
			return nil, err
		}
		kind := [4]NodeKind{KindComp, KindCase, KindPair, KindDisconnect}[sub]
		left, err := readChild(r, prior)
		if err != nil {
			return nil, err
		}
		right, err := readChild(r, prior)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: kind, Left: left, Right: right}, nil

	case 1: // one-child combinators
		sub, err := r.ReadBits(2, "node code")
		if err != nil {
			return nil, err
		}
		kind := [4]NodeKind{KindInjL, KindInjR, KindTake, KindDrop}[sub]
		left, err := readChild(r, prior)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: kind, Left: left}, nil

	case 2: // leaves
		sub, err := r.ReadBits(2, "node code")
		if err != nil {
			return nil, err
		}
		switch sub {
		case 0:
			return &Node{Kind: KindIden}, nil
		case 1:
			return &Node{Kind: KindUnit}, nil
		case 2:
			node := &Node{Kind: KindFail}
			entropy, err := r.ReadBitVector(512, "fail entropy")
			if err != nil {
				return nil, err
			}
			copy(node.FailEntropy[:], entropy)
			return node, nil
		default:
			return nil, fmt.Errorf("illegal reserved node code")
		}

	default: // hidden and witness
		wit, err := r.ReadBit("node code")
		if err != nil {
			return nil, err
		}
		if wit {
			return &Node{Kind: KindWitness}, nil
		}
		node := &Node{Kind: KindHidden}
		payload, err := r.ReadBitVector(256, "hidden hash")
		if err != nil {
			return nil, err
		}
		copy(node.HiddenHash[:], payload)
		return node, nil
	}
}

func readChild(r *BitReader, prior []*Node) (*Node, error) {
	back, err := r.ReadNatural(len(prior), "child reference")
	if err != nil {
		return nil, err
	}
	child := prior[len(prior)-back]
	return child, nil
}

// checkConnected rejects programs with nodes unreachable from the root;
// a canonical encoding never serializes dead nodes.
func checkConnected(nodes []*Node, root *Node) error {
	reached := make(map[*Node]bool, len(nodes))
	var visit func(*Node)
	visit = func(n *Node) {
		if reached[n] {
			return
		}
		reached[n] = true
		if n.Left != nil {
			visit(n.Left)
		}
		if n.Right != nil {
			visit(n.Right)
		}
	}
	visit(root)
	for i, n := range nodes {
		if !reached[n] {
			return fmt.Errorf("node %d is not reachable from the program root", i)
		}
	}
	return nil
}
