package api

import (
	"github.com/suffix-labs/hal-simplicity/pkg/sighash"
)

// KeypairInfo is a freshly generated secret key with its x-only public
// key. Parity is 0 when the full public key has even Y and 1 otherwise;
// callers need it to reconstruct the full point from the x-only form.
type KeypairInfo struct {
	Secret string `json:"secret" yaml:"secret"`
	XOnly  string `json:"x_only" yaml:"x_only"`
	Parity int    `json:"parity" yaml:"parity"`
}

// GenerateKeypair creates a random keypair.
func GenerateKeypair() (*KeypairInfo, error) {
	sk, err := sighash.GenerateSecretKey()
	if err != nil {
		return nil, err
	}
	return &KeypairInfo{
		Secret: sk.String(),
		XOnly:  sk.PublicKey().String(),
		Parity: sk.PublicKey().Parity(),
	}, nil
}
