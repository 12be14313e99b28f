// Package utxo parses the colon-delimited descriptors this tool uses to
// supply the previous outputs a transaction spends.
//
// A descriptor has exactly three fields, "script:asset:value". The asset
// and value fields accept both explicit and confidential encodings, told
// apart by two rules that downstream tooling depends on and that must
// not be changed:
//
//   - asset: exactly 64 hex characters is an explicit asset ID, anything
//     else must hex-decode to a 33-byte commitment. Length decides.
//   - value: a string that parses as a decimal BTC amount is an explicit
//     value, even if it would also hex-decode to a commitment. The
//     decimal parse is tried first and wins.
package utxo

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/suffix-labs/hal-simplicity/pkg/elements"
)

// SpentOutput is the previous output referenced by one transaction
// input: its locking script and its possibly-confidential asset and
// value.
type SpentOutput struct {
	Script elements.Script
	Asset  elements.Asset
	Value  elements.Value
}

// Parse parses one "script:asset:value" descriptor.
func Parse(descriptor string) (*SpentOutput, error) {
	parts := strings.Split(descriptor, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("parsing input UTXO: expected format <scriptPubKey>:<asset>:<value>")
	}

	script, err := elements.ParseScriptHex(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parsing scriptPubKey hex: %w", err)
	}

	var asset elements.Asset
	if len(parts[1]) == 64 {
		id, err := elements.ParseAssetID(parts[1])
		if err != nil {
			return nil, fmt.Errorf("parsing asset hex: %w", err)
		}
		asset = elements.ExplicitAsset(id)
	} else {
		raw, err := hex.DecodeString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("parsing asset commitment hex: %w", err)
		}
		if asset, err = elements.AssetFromCommitment(raw); err != nil {
			return nil, fmt.Errorf("decoding asset commitment: %w", err)
		}
	}

	var value elements.Value
	if sats, ok := parseBTCAmount(parts[2]); ok {
		value = elements.ExplicitValue(sats)
	} else {
		raw, err := hex.DecodeString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("parsing value commitment hex: %w", err)
		}
		if value, err = elements.ValueFromCommitment(raw); err != nil {
			return nil, fmt.Errorf("decoding value commitment: %w", err)
		}
	}

	return &SpentOutput{Script: script, Asset: asset, Value: value}, nil
}

// satsPerBTC converts the BTC denomination the value field uses into the
// satoshi amounts the wire format carries.
const satsPerBTC = 100_000_000

// parseBTCAmount parses a non-negative decimal BTC amount with up to
// eight fractional digits into satoshis. Amounts are bounded only by
// the 64-bit satoshi range, not by any chain's supply cap: issued
// assets on Elements chains are not limited to 21 million coins.
func parseBTCAmount(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if len(frac) == 0 || len(frac) > 8 {
			return 0, false
		}
	}
	if whole == "" {
		whole = "0"
	}
	btc, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || btc > (1<<64-1)/satsPerBTC {
		return 0, false
	}
	sats := btc * satsPerBTC
	if frac != "" {
		fracDigits, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, false
		}
		for i := len(frac); i < 8; i++ {
			fracDigits *= 10
		}
		if fracDigits > (1<<64-1)-sats {
			return 0, false
		}
		sats += fracDigits
	}
	return sats, true
}
