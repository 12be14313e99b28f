package simplicity

import "strings"

// DefaultExprBudget bounds the number of nodes DisplayExpr will expand.
// Because the DAG shares subtrees, the fully expanded expression can be
// exponentially larger than the program itself; rendering is a
// diagnostic aid and must never be allowed to blow up the caller.
const DefaultExprBudget = 4096

// DisplayExpr renders the program as a nested combinator expression,
// expanding at most budget nodes (DefaultExprBudget if budget <= 0).
// When the budget runs out the remaining subtrees render as "...".
func (p *Program) DisplayExpr(budget int) string {
	if budget <= 0 {
		budget = DefaultExprBudget
	}
	var sb strings.Builder
	renderExpr(&sb, p.root, &budget)
	return sb.String()
}

func renderExpr(sb *strings.Builder, n *Node, budget *int) {
	if *budget <= 0 {
		sb.WriteString("...")
		return
	}
	*budget--

	switch n.Kind {
	case KindJet:
		sb.WriteString("jet_")
		sb.WriteString(n.Jet.Name)
	case KindWord:
		sb.WriteString("const ")
		sb.WriteString(wordLiteral(n))
	case KindHidden:
		sb.WriteString("hidden")
	case KindIden, KindUnit, KindWitness, KindFail:
		sb.WriteString(n.Kind.Name())
	case KindInjL, KindInjR, KindTake, KindDrop:
		sb.WriteString(n.Kind.Name())
		sb.WriteString(" ")
		renderChild(sb, n.Left, budget)
	case KindComp, KindCase, KindPair, KindDisconnect:
		sb.WriteString(n.Kind.Name())
		sb.WriteString(" ")
		renderChild(sb, n.Left, budget)
		sb.WriteString(" ")
		renderChild(sb, n.Right, budget)
	}
}

func renderChild(sb *strings.Builder, n *Node, budget *int) {
	if n.arity() == 0 && n.Kind != KindWord {
		renderExpr(sb, n, budget)
		return
	}
	sb.WriteString("(")
	renderExpr(sb, n, budget)
	sb.WriteString(")")
}

// wordLiteral renders a word constant as 0b... for sub-byte values and
// 0x... otherwise.
func wordLiteral(n *Node) string {
	bits := 1 << uint(n.WordDepth-1)
	if bits < 8 {
		var sb strings.Builder
		sb.WriteString("0b")
		for i := 0; i < bits; i++ {
			if n.WordValue[i/8]&(1<<(7-uint(i%8))) != 0 {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
		}
		return sb.String()
	}
	const hexDigits = "0123456789abcdef"
	var sb strings.Builder
	sb.WriteString("0x")
	for _, b := range n.WordValue[:bits/8] {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}
