package elements

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
)

// Confidential encodings. Assets, values and nonces are serialized with
// a one-byte prefix that says whether the field is null, explicit, or a
// blinded commitment:
//
//	asset:  0x00 null | 0x01 + 32 bytes explicit | 0x0a/0x0b + 32 bytes commitment
//	value:  0x00 null | 0x01 + 8 bytes BE explicit | 0x08/0x09 + 32 bytes commitment
//	nonce:  0x00 null | 0x01 + 32 bytes explicit | 0x02/0x03 + 32 bytes commitment
//
// CommitmentSize is the serialized size of any blinded commitment.
const CommitmentSize = 33

// AssetID identifies an asset. Like txids, asset IDs display in
// reversed byte order relative to their serialization.
type AssetID [32]byte

// String renders the asset ID in display order.
func (a AssetID) String() string {
	var rev [32]byte
	for i := range a {
		rev[i] = a[31-i]
	}
	return hex.EncodeToString(rev[:])
}

// MarshalText renders the asset ID for JSON and YAML output.
func (a AssetID) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// ParseAssetID parses a display-order hex asset ID.
func ParseAssetID(s string) (AssetID, error) {
	var id AssetID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("decoding asset hex: %w", err)
	}
	if len(b) != 32 {
		return id, fmt.Errorf("asset ID must be 32 bytes, got %d", len(b))
	}
	for i := range id {
		id[i] = b[31-i]
	}
	return id, nil
}

// Asset is a confidential asset field: null, explicit, or a commitment.
type Asset struct {
	Explicit   *AssetID
	Commitment []byte // 33 bytes when confidential
}

// ExplicitAsset wraps an asset ID as an explicit asset.
func ExplicitAsset(id AssetID) Asset { return Asset{Explicit: &id} }

// AssetFromCommitment validates and wraps a confidential asset
// commitment.
func AssetFromCommitment(b []byte) (Asset, error) {
	if len(b) != CommitmentSize {
		return Asset{}, fmt.Errorf("asset commitment must be %d bytes, got %d", CommitmentSize, len(b))
	}
	if b[0] != 0x0a && b[0] != 0x0b {
		return Asset{}, fmt.Errorf("invalid asset commitment prefix %#02x", b[0])
	}
	return Asset{Commitment: append([]byte(nil), b...)}, nil
}

// IsNull reports whether the asset field is absent.
func (a Asset) IsNull() bool { return a.Explicit == nil && a.Commitment == nil }

// Kind reports "null", "explicit" or "confidential".
func (a Asset) Kind() string {
	switch {
	case a.Explicit != nil:
		return "explicit"
	case a.Commitment != nil:
		return "confidential"
	default:
		return "null"
	}
}

// Serialize writes the prefixed wire encoding of the asset field.
func (a Asset) Serialize(w io.Writer) error {
	switch {
	case a.Explicit != nil:
		if _, err := w.Write([]byte{0x01}); err != nil {
			return err
		}
		_, err := w.Write(a.Explicit[:])
		return err
	case a.Commitment != nil:
		_, err := w.Write(a.Commitment)
		return err
	default:
		_, err := w.Write([]byte{0x00})
		return err
	}
}

func deserializeAsset(r io.Reader) (Asset, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return Asset{}, err
	}
	switch prefix[0] {
	case 0x00:
		return Asset{}, nil
	case 0x01:
		var id AssetID
		if _, err := io.ReadFull(r, id[:]); err != nil {
			return Asset{}, err
		}
		return Asset{Explicit: &id}, nil
	case 0x0a, 0x0b:
		buf := make([]byte, CommitmentSize)
		buf[0] = prefix[0]
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return Asset{}, err
		}
		return Asset{Commitment: buf}, nil
	default:
		return Asset{}, fmt.Errorf("invalid asset prefix %#02x", prefix[0])
	}
}

// Value is a confidential value field: null, explicit satoshis, or a
// commitment. Explicit values serialize big-endian, unlike everything
// else in the format.
type Value struct {
	Explicit   *uint64
	Commitment []byte
}

// ExplicitValue wraps a satoshi amount as an explicit value.
func ExplicitValue(sats uint64) Value { return Value{Explicit: &sats} }

// ValueFromCommitment validates and wraps a confidential value
// commitment.
func ValueFromCommitment(b []byte) (Value, error) {
	if len(b) != CommitmentSize {
		return Value{}, fmt.Errorf("value commitment must be %d bytes, got %d", CommitmentSize, len(b))
	}
	if b[0] != 0x08 && b[0] != 0x09 {
		return Value{}, fmt.Errorf("invalid value commitment prefix %#02x", b[0])
	}
	return Value{Commitment: append([]byte(nil), b...)}, nil
}

// IsNull reports whether the value field is absent.
func (v Value) IsNull() bool { return v.Explicit == nil && v.Commitment == nil }

// Kind reports "null", "explicit" or "confidential".
func (v Value) Kind() string {
	switch {
	case v.Explicit != nil:
		return "explicit"
	case v.Commitment != nil:
		return "confidential"
	default:
		return "null"
	}
}

// Serialize writes the prefixed wire encoding of the value field.
func (v Value) Serialize(w io.Writer) error {
	switch {
	case v.Explicit != nil:
		var buf [9]byte
		buf[0] = 0x01
		binary.BigEndian.PutUint64(buf[1:], *v.Explicit)
		_, err := w.Write(buf[:])
		return err
	case v.Commitment != nil:
		_, err := w.Write(v.Commitment)
		return err
	default:
		_, err := w.Write([]byte{0x00})
		return err
	}
}

func deserializeValue(r io.Reader) (Value, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return Value{}, err
	}
	switch prefix[0] {
	case 0x00:
		return Value{}, nil
	case 0x01:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Value{}, err
		}
		sats := binary.BigEndian.Uint64(buf[:])
		return Value{Explicit: &sats}, nil
	case 0x08, 0x09:
		buf := make([]byte, CommitmentSize)
		buf[0] = prefix[0]
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return Value{}, err
		}
		return Value{Commitment: buf}, nil
	default:
		return Value{}, fmt.Errorf("invalid value prefix %#02x", prefix[0])
	}
}

// Nonce is an output nonce: null, an explicit 32-byte nonce, or an ECDH
// pubkey commitment.
type Nonce struct {
	Explicit   *[32]byte
	Commitment []byte
}

// IsNull reports whether the nonce field is absent.
func (n Nonce) IsNull() bool { return n.Explicit == nil && n.Commitment == nil }

// Kind reports "null", "explicit" or "confidential".
func (n Nonce) Kind() string {
	switch {
	case n.Explicit != nil:
		return "explicit"
	case n.Commitment != nil:
		return "confidential"
	default:
		return "null"
	}
}

// Serialize writes the prefixed wire encoding of the nonce field.
func (n Nonce) Serialize(w io.Writer) error {
	switch {
	case n.Explicit != nil:
		if _, err := w.Write([]byte{0x01}); err != nil {
			return err
		}
		_, err := w.Write(n.Explicit[:])
		return err
	case n.Commitment != nil:
		_, err := w.Write(n.Commitment)
		return err
	default:
		_, err := w.Write([]byte{0x00})
		return err
	}
}

func deserializeNonce(r io.Reader) (Nonce, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return Nonce{}, err
	}
	switch prefix[0] {
	case 0x00:
		return Nonce{}, nil
	case 0x01:
		var val [32]byte
		if _, err := io.ReadFull(r, val[:]); err != nil {
			return Nonce{}, err
		}
		return Nonce{Explicit: &val}, nil
	case 0x02, 0x03:
		buf := make([]byte, CommitmentSize)
		buf[0] = prefix[0]
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return Nonce{}, err
		}
		return Nonce{Commitment: buf}, nil
	default:
		return Nonce{}, fmt.Errorf("invalid nonce prefix %#02x", prefix[0])
	}
}
