// Package program resolves user-supplied Simplicity program text into a
// two-stage representation: the commitment-time program that every
// successful parse yields, and the redemption-time program that exists
// only when witness data was supplied.
//
// The input text is ambiguous: it may be the canonical base64 encoding
// or a hex byte string. Base64 is tried first. When both fail, the
// base64 failure is the one reported, since that is the canonical form
// and its diagnostics are the useful ones.
package program

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/suffix-labs/hal-simplicity/pkg/simplicity"
)

// Program is a resolved Simplicity program. The commitment-time view is
// always present. The redemption-time view is present only when the
// program was resolved with witness data, and carries the two
// redemption-only identity hashes.
type Program struct {
	commit *simplicity.Program
	redeem *simplicity.RedeemProgram
}

// Resolve parses program text with no witness. The result never has a
// redemption-time view: an absent witness is distinct from an empty one.
func Resolve(text string) (*Program, error) {
	commit, _, err := resolveCommit(text)
	if err != nil {
		return nil, err
	}
	return &Program{commit: commit}, nil
}

// ResolveWithWitness parses program text together with hex witness data.
// The empty string is a valid witness: it resolves programs whose
// witness nodes all have zero-width types, and yields different
// redemption identities than resolving with no witness at all.
//
// A program that parses at commitment time but fails to associate with
// its declared witness is an error, not a partial result.
func ResolveWithWitness(text, witnessHex string) (*Program, error) {
	commit, raw, err := resolveCommit(text)
	if err != nil {
		return nil, err
	}
	wit, err := hex.DecodeString(witnessHex)
	if err != nil {
		return nil, fmt.Errorf("decoding witness hex: %w", err)
	}
	redeem, err := simplicity.DecodeRedeem(raw, wit)
	if err != nil {
		return nil, fmt.Errorf("attaching witness: %w", err)
	}
	return &Program{commit: commit, redeem: redeem}, nil
}

// resolveCommit runs the two-step fallback parse and returns the program
// along with the raw bytes it was decoded from.
func resolveCommit(text string) (*simplicity.Program, []byte, error) {
	raw, b64Err := base64.StdEncoding.DecodeString(text)
	var primary error
	if b64Err == nil {
		commit, err := simplicity.DecodeCommit(raw)
		if err == nil {
			return commit, raw, nil
		}
		primary = err
	} else {
		primary = fmt.Errorf("decoding program base64: %w", b64Err)
	}

	// Hex fallback. If this fails too, the base64-path error is the one
	// the user should see.
	if hexRaw, err := hex.DecodeString(text); err == nil {
		if commit, err := simplicity.DecodeCommit(hexRaw); err == nil {
			return commit, hexRaw, nil
		}
	}
	return nil, nil, primary
}

// Cmr returns the commitment identity.
func (p *Program) Cmr() simplicity.Cmr { return p.commit.Cmr() }

// RedemptionIdentity returns the annotated identity and input hash when
// the program was resolved with witness data.
func (p *Program) RedemptionIdentity() (amr simplicity.Amr, ihr simplicity.Ihr, ok bool) {
	if p.redeem == nil {
		return simplicity.Amr{}, simplicity.Ihr{}, false
	}
	return p.redeem.Amr(), p.redeem.Ihr(), true
}

// IsRedeem reports whether a redemption-time view exists.
func (p *Program) IsRedeem() bool { return p.redeem != nil }

// Commit returns the commitment-time program for rendering and
// serialization.
func (p *Program) Commit() *simplicity.Program { return p.commit }

// Redeem returns the redemption-time program, or nil when the program
// was resolved without witness data.
func (p *Program) Redeem() *simplicity.RedeemProgram { return p.redeem }

// WitnessHex returns the witness exactly as supplied.
func (p *Program) WitnessHex() (string, bool) {
	if p.redeem == nil {
		return "", false
	}
	return p.redeem.WitnessHex(), true
}
