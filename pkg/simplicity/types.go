package simplicity

import (
	"fmt"
	"strings"
)

// Simplicity types are built from the unit type by binary sums and
// products. During decoding every node gets fresh type variables for its
// source and target, the typing rules of each combinator are applied as
// unification constraints, and any variable still free afterwards is
// bound to unit.
//
// Corresponds to the type inference in rust-simplicity src/types/.

type typeKind int

const (
	kindFree typeKind = iota
	kindUnit
	kindSum
	kindProd
)

// Type is a node in the union-find structure used for unification.
// After Finalize, following parent links always reaches a bound
// representative.
type Type struct {
	kind   typeKind
	a, b   *Type // children for sum/prod
	parent *Type // union-find link, nil for representatives
}

func newFree() *Type { return &Type{kind: kindFree} }

func unitType() *Type { return &Type{kind: kindUnit} }

func sum(a, b *Type) *Type { return &Type{kind: kindSum, a: a, b: b} }

func prod(a, b *Type) *Type { return &Type{kind: kindProd, a: a, b: b} }

// find returns the representative of t's equivalence class, compressing
// paths as it goes.
func (t *Type) find() *Type {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	for t.parent != nil {
		next := t.parent
		t.parent = root
		t = next
	}
	return root
}

// unify makes two types equal, or reports why they cannot be.
func unify(x, y *Type) error {
	x, y = x.find(), y.find()
	if x == y {
		return nil
	}
	if x.kind == kindFree {
		if occurs(x, y) {
			return fmt.Errorf("infinite type produced by unification")
		}
		x.parent = y
		return nil
	}
	if y.kind == kindFree {
		return unify(y, x)
	}
	if x.kind != y.kind {
		return fmt.Errorf("type mismatch: %s vs %s", x.debugName(), y.debugName())
	}
	// Same constructor: link and unify children.
	y.parent = x
	if x.kind == kindSum || x.kind == kindProd {
		if err := unify(x.a, y.a); err != nil {
			return err
		}
		return unify(x.b, y.b)
	}
	return nil
}

// occurs reports whether the free variable v appears inside t.
func occurs(v, t *Type) bool {
	t = t.find()
	if t == v {
		return true
	}
	if t.kind == kindSum || t.kind == kindProd {
		return occurs(v, t.a) || occurs(v, t.b)
	}
	return false
}

// finalize binds every remaining free variable reachable from t to unit.
func (t *Type) finalize() {
	t = t.find()
	switch t.kind {
	case kindFree:
		t.kind = kindUnit
	case kindSum, kindProd:
		t.a.finalize()
		t.b.finalize()
	}
}

func (t *Type) debugName() string {
	switch t.find().kind {
	case kindFree:
		return "free variable"
	case kindUnit:
		return "unit"
	case kindSum:
		return "sum"
	default:
		return "product"
	}
}

// BitWidth is the number of bits needed to represent a value of this
// type: sums take a tag bit plus the wider branch, products concatenate.
func (t *Type) BitWidth() int {
	t = t.find()
	switch t.kind {
	case kindSum:
		l, r := t.a.BitWidth(), t.b.BitWidth()
		if r > l {
			l = r
		}
		return 1 + l
	case kindProd:
		return t.a.BitWidth() + t.b.BitWidth()
	default:
		return 0
	}
}

// pow2Type builds the type 2^width, the type of width-bit words, as a
// balanced product of bits.
func pow2Type(width int) *Type {
	if width == 1 {
		return sum(unitType(), unitType())
	}
	half := pow2Type(width / 2)
	other := pow2Type(width - width/2)
	return prod(half, other)
}

// String renders the type with the conventional shorthand: 1 for unit,
// 2 for 1+1, 2^n for word types, + and × elsewhere.
func (t *Type) String() string {
	var sb strings.Builder
	t.render(&sb, false)
	return sb.String()
}

func (t *Type) render(sb *strings.Builder, nested bool) {
	t = t.find()
	if w, ok := t.wordWidth(); ok {
		if w == 1 {
			sb.WriteString("2")
		} else {
			fmt.Fprintf(sb, "2^%d", w)
		}
		return
	}
	switch t.kind {
	case kindUnit, kindFree:
		sb.WriteString("1")
	case kindSum:
		if nested {
			sb.WriteString("(")
		}
		t.a.render(sb, true)
		sb.WriteString(" + ")
		t.b.render(sb, true)
		if nested {
			sb.WriteString(")")
		}
	case kindProd:
		if nested {
			sb.WriteString("(")
		}
		t.a.render(sb, true)
		sb.WriteString(" × ")
		t.b.render(sb, true)
		if nested {
			sb.WriteString(")")
		}
	}
}

// wordWidth reports whether t is a word type (2, 2×2, (2×2)×(2×2), ...)
// and its width in bits.
func (t *Type) wordWidth() (int, bool) {
	t = t.find()
	switch t.kind {
	case kindSum:
		if t.a.find().kind == kindUnit && t.b.find().kind == kindUnit {
			return 1, true
		}
		return 0, false
	case kindProd:
		l, okl := t.a.wordWidth()
		r, okr := t.b.wordWidth()
		if okl && okr && l == r {
			return l + r, true
		}
		return 0, false
	default:
		return 0, false
	}
}
