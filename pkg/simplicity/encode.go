package simplicity

import "encoding/base64"

// Encode serializes the program back to its byte form, preserving the
// node order it was decoded (or constructed) with.
func (p *Program) Encode() []byte {
	w := &BitWriter{}
	w.WriteNatural(len(p.nodes))

	index := make(map[*Node]int, len(p.nodes))
	for i, node := range p.nodes {
		encodeNode(w, node, i, index)
		index[node] = i
	}
	return w.Bytes()
}

// String renders the canonical base64 encoding of the program.
func (p *Program) String() string {
	return base64.StdEncoding.EncodeToString(p.Encode())
}

func encodeNode(w *BitWriter, n *Node, pos int, index map[*Node]int) {
	writeChild := func(child *Node) {
		w.WriteNatural(pos - index[child])
	}

	switch n.Kind {
	case KindJet:
		w.WriteBits(0b11, 2)
		for _, c := range n.Jet.Bits {
			w.WriteBit(c == '1')
		}
	case KindWord:
		w.WriteBits(0b10, 2)
		w.WriteNatural(n.WordDepth)
		w.WriteBitVector(n.WordValue, 1<<uint(n.WordDepth-1))
	case KindComp, KindCase, KindPair, KindDisconnect:
		sub := map[NodeKind]uint64{KindComp: 0, KindCase: 1, KindPair: 2, KindDisconnect: 3}[n.Kind]
		w.WriteBits(0b000, 3)
		w.WriteBits(sub, 2)
		writeChild(n.Left)
		writeChild(n.Right)
	case KindInjL, KindInjR, KindTake, KindDrop:
		sub := map[NodeKind]uint64{KindInjL: 0, KindInjR: 1, KindTake: 2, KindDrop: 3}[n.Kind]
		w.WriteBits(0b001, 3)
		w.WriteBits(sub, 2)
		writeChild(n.Left)
	case KindIden:
		w.WriteBits(0b01000, 5)
	case KindUnit:
		w.WriteBits(0b01001, 5)
	case KindFail:
		w.WriteBits(0b01010, 5)
		w.WriteBitVector(n.FailEntropy[:], 512)
	case KindHidden:
		w.WriteBits(0b0110, 4)
		w.WriteBitVector(n.HiddenHash[:], 256)
	case KindWitness:
		w.WriteBits(0b0111, 4)
	}
}
