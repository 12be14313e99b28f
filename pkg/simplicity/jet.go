package simplicity

import "fmt"

// Jet is a built-in accelerated primitive from the core jet family.
// Jets are identified on the wire by a per-jet prefix code and carry a
// fixed, monomorphic type arrow and a precomputed CMR.
//
// The table itself lives in jet_table.go, generated from the core jet
// family of rust-simplicity 0.5.0 (src/jet/init/core.rs). Programs
// targeting chain-specific jet families are out of scope and fail to
// decode.
type Jet struct {
	Name   string
	Bits   string // wire encoding, MSB first
	Cmr    Cmr
	Source string // type name in prefix notation
	Target string
	Cost   uint64 // milli weight units
}

func (j *Jet) sourceType() *Type { return typeFromName(j.Source) }

func (j *Jet) targetType() *Type { return typeFromName(j.Target) }

// typeFromName builds a fresh type from its prefix (Polish) notation:
// '+' and '*' are sum and product, '1' is unit, and '2', 'c', 's', 'i',
// 'l', 'h' are the word types of 1, 8, 16, 32, 64 and 256 bits.
//
// Corresponds to TypeName in rust-simplicity src/jet/type_name.rs. The
// table is generated, so malformed names are a programming error.
func typeFromName(name string) *Type {
	stack := make([]*Type, 0, 16)
	for i := len(name) - 1; i >= 0; i-- {
		switch c := name[i]; c {
		case '1':
			stack = append(stack, unitType())
		case '2':
			stack = append(stack, pow2Type(1))
		case 'c':
			stack = append(stack, pow2Type(8))
		case 's':
			stack = append(stack, pow2Type(16))
		case 'i':
			stack = append(stack, pow2Type(32))
		case 'l':
			stack = append(stack, pow2Type(64))
		case 'h':
			stack = append(stack, pow2Type(256))
		case '+', '*':
			left := stack[len(stack)-1]
			right := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if c == '+' {
				stack = append(stack, sum(left, right))
			} else {
				stack = append(stack, prod(left, right))
			}
		default:
			panic(fmt.Sprintf("illegal type name %q", name))
		}
	}
	if len(stack) != 1 {
		panic(fmt.Sprintf("illegal type name %q", name))
	}
	return stack[0]
}

// jetTrie is the decode tree for the jet prefix code.
type jetTrie struct {
	zero, one *jetTrie
	jet       *Jet
}

var (
	jetDecodeRoot = buildJetTrie()
	jetsByName    = func() map[string]*Jet {
		m := make(map[string]*Jet, len(coreJets))
		for i := range coreJets {
			m[coreJets[i].Name] = &coreJets[i]
		}
		return m
	}()
)

func buildJetTrie() *jetTrie {
	root := &jetTrie{}
	for i := range coreJets {
		j := &coreJets[i]
		node := root
		for _, c := range j.Bits {
			next := &node.zero
			if c == '1' {
				next = &node.one
			}
			if *next == nil {
				*next = &jetTrie{}
			}
			node = *next
		}
		node.jet = j
	}
	return root
}

// decodeJet reads one jet's prefix code from the bitstream.
func decodeJet(r *BitReader) (*Jet, error) {
	node := jetDecodeRoot
	for node.jet == nil {
		bit, err := r.ReadBit("jet code")
		if err != nil {
			return nil, err
		}
		if bit {
			node = node.one
		} else {
			node = node.zero
		}
		if node == nil {
			return nil, fmt.Errorf("unknown jet code")
		}
	}
	return node.jet, nil
}

// jetByName looks a jet up by name, for program construction.
func jetByName(name string) (*Jet, error) {
	j, ok := jetsByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown jet %q", name)
	}
	return j, nil
}
