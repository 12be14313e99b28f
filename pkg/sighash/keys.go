package sighash

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SecretKey is a secp256k1 secret key used for Schnorr signing.
type SecretKey struct {
	key *secp256k1.PrivateKey
}

// GenerateSecretKey creates a fresh random secret key.
func GenerateSecretKey() (*SecretKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generating secret key: %w", err)
	}
	return &SecretKey{key: key}, nil
}

// ParseSecretKey parses a 32-byte hex secret key.
func ParseSecretKey(s string) (*SecretKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing secret key hex: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("secret key must be 32 bytes, got %d", len(raw))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return nil, fmt.Errorf("secret key overflows the curve order")
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("secret key is zero")
	}
	return &SecretKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// String renders the secret key as hex.
func (sk *SecretKey) String() string {
	return hex.EncodeToString(sk.key.Serialize())
}

// PublicKey derives the x-only public key.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{key: sk.key.PubKey()}
}

// Sign produces a BIP-340 Schnorr signature over a 32-byte digest.
func (sk *SecretKey) Sign(digest [32]byte) (*Signature, error) {
	sig, err := schnorr.Sign(sk.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("signing digest: %w", err)
	}
	return &Signature{sig: sig}, nil
}

// PublicKey is an x-only secp256k1 public key as BIP 340 uses.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePublicKey parses a 32-byte hex x-only public key.
func ParsePublicKey(s string) (*PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing public key hex: %w", err)
	}
	key, err := schnorr.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

// String renders the x-only key as hex.
func (pk *PublicKey) String() string {
	return hex.EncodeToString(schnorr.SerializePubKey(pk.key))
}

// Parity reports the parity of the full point's Y coordinate: 0 for
// even, 1 for odd.
func (pk *PublicKey) Parity() int {
	if pk.key.SerializeCompressed()[0] == secp256k1.PubKeyFormatCompressedOdd {
		return 1
	}
	return 0
}

// Equal reports whether two keys have the same x-only encoding.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.String() == other.String()
}

// Signature is a 64-byte BIP-340 Schnorr signature.
type Signature struct {
	sig *schnorr.Signature
}

// ParseSignature parses a 64-byte hex signature.
func ParseSignature(s string) (*Signature, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing signature hex: %w", err)
	}
	sig, err := schnorr.ParseSignature(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing signature: %w", err)
	}
	return &Signature{sig: sig}, nil
}

// String renders the signature as hex.
func (s *Signature) String() string {
	return hex.EncodeToString(s.sig.Serialize())
}

// Verify checks the signature over a digest against an x-only key. For
// structurally valid inputs this yields a boolean, never an error.
func (s *Signature) Verify(digest [32]byte, pk *PublicKey) bool {
	return s.sig.Verify(digest[:], pk.key)
}
