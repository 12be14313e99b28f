package sighash

import "fmt"

// KeyMaterial is the optional key material a sighash request may carry.
// Any combination of fields may be set except a signature without the
// public key to check it against.
type KeyMaterial struct {
	SecretKey *SecretKey
	PublicKey *PublicKey
	Signature *Signature
}

// Result is the outcome of a sighash computation: the digest, a fresh
// signature when a secret key was supplied, and a verification verdict
// when both a public key and a signature were supplied.
type Result struct {
	Sighash        [32]byte
	Signature      *Signature
	ValidSignature *bool
}

// Resolve computes the digest and applies the supplied key material.
//
// A supplied secret key must be consistent with a supplied public key;
// a mismatch is an error naming both keys. A public key with no
// signature simply skips verification.
func (env *Environment) Resolve(keys KeyMaterial) (*Result, error) {
	if keys.Signature != nil && keys.PublicKey == nil {
		return nil, fmt.Errorf("if a signature is provided, a public key must be provided as well")
	}

	if keys.SecretKey != nil && keys.PublicKey != nil {
		derived := keys.SecretKey.PublicKey()
		if !derived.Equal(keys.PublicKey) {
			return nil, fmt.Errorf(
				"checking secret key and public key consistency: secret key had public key %s, but was passed explicit public key %s",
				derived, keys.PublicKey)
		}
	}

	res := &Result{Sighash: env.SighashAll()}

	if keys.SecretKey != nil {
		sig, err := keys.SecretKey.Sign(res.Sighash)
		if err != nil {
			return nil, err
		}
		res.Signature = sig
	}

	if keys.PublicKey != nil && keys.Signature != nil {
		valid := keys.Signature.Verify(res.Sighash, keys.PublicKey)
		res.ValidSignature = &valid
	}

	return res, nil
}
