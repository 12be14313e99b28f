package simplicity

import "fmt"

// Builder assembles a program DAG node by node, in the same post-order
// the serialization uses. It exists for tests and tooling that need
// known programs without hand-assembled bitstreams.
type Builder struct {
	nodes []*Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) push(n *Node) *Node {
	b.nodes = append(b.nodes, n)
	return n
}

// Unit appends a unit node.
func (b *Builder) Unit() *Node { return b.push(&Node{Kind: KindUnit}) }

// Iden appends an iden node.
func (b *Builder) Iden() *Node { return b.push(&Node{Kind: KindIden}) }

// Witness appends a witness node.
func (b *Builder) Witness() *Node { return b.push(&Node{Kind: KindWitness}) }

// InjL appends an injl node over t.
func (b *Builder) InjL(t *Node) *Node { return b.push(&Node{Kind: KindInjL, Left: t}) }

// InjR appends an injr node over t.
func (b *Builder) InjR(t *Node) *Node { return b.push(&Node{Kind: KindInjR, Left: t}) }

// Take appends a take node over t.
func (b *Builder) Take(t *Node) *Node { return b.push(&Node{Kind: KindTake, Left: t}) }

// Drop appends a drop node over t.
func (b *Builder) Drop(t *Node) *Node { return b.push(&Node{Kind: KindDrop, Left: t}) }

// Comp appends a comp node of s then t.
func (b *Builder) Comp(s, t *Node) *Node { return b.push(&Node{Kind: KindComp, Left: s, Right: t}) }

// Pair appends a pair node of s and t.
func (b *Builder) Pair(s, t *Node) *Node { return b.push(&Node{Kind: KindPair, Left: s, Right: t}) }

// Case appends a case node over s and t.
func (b *Builder) Case(s, t *Node) *Node { return b.push(&Node{Kind: KindCase, Left: s, Right: t}) }

// Jet appends the named jet.
func (b *Builder) Jet(name string) (*Node, error) {
	jet, err := jetByName(name)
	if err != nil {
		return nil, err
	}
	return b.push(&Node{Kind: KindJet, Jet: jet}), nil
}

// Word appends a word constant of the given depth. value must hold
// 2^(depth-1) bits.
func (b *Builder) Word(depth int, value []byte) (*Node, error) {
	if depth < 1 || depth > 32 {
		return nil, fmt.Errorf("word depth %d out of range", depth)
	}
	bits := 1 << uint(depth-1)
	if len(value) != (bits+7)/8 {
		return nil, fmt.Errorf("word value must be %d bytes, got %d", (bits+7)/8, len(value))
	}
	return b.push(&Node{Kind: KindWord, WordDepth: depth, WordValue: value}), nil
}

// Finish runs type inference and returns the completed program. The
// most recently appended node becomes the root.
func (b *Builder) Finish() (*Program, error) {
	if len(b.nodes) == 0 {
		return nil, fmt.Errorf("empty program")
	}
	root := b.nodes[len(b.nodes)-1]
	if err := checkConnected(b.nodes, root); err != nil {
		return nil, err
	}
	for i, node := range b.nodes {
		if err := node.applyTypeConstraints(); err != nil {
			return nil, fmt.Errorf("type checking node %d (%s): %w", i, node.Kind.Name(), err)
		}
	}
	if err := unify(root.source, unitType()); err != nil {
		return nil, fmt.Errorf("program source type is not unit: %w", err)
	}
	for _, node := range b.nodes {
		if node.Kind == KindHidden {
			continue
		}
		node.source.finalize()
		node.target.finalize()
	}
	return &Program{nodes: b.nodes, root: root}, nil
}
