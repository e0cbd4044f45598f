package diagnostics

import (
	"fmt"

	"ecdhprobe/application"
)

// KeyPair holds one side of the exchange. Secrets never leave the run that
// generated them except through the diagnostic trace.
type KeyPair struct {
	Secret [32]byte
	Public [32]byte
}

// SharedSecret is the raw Diffie-Hellman output.
type SharedSecret [32]byte

// GenerateKeyPair draws 32 fresh bytes from entropy and derives the matching
// public key. Entropy failure aborts the run; there is no retry.
func GenerateKeyPair(entropy application.EntropySource, exchange application.KeyExchange) (KeyPair, error) {
	var pair KeyPair
	if err := entropy.Fill(&pair.Secret); err != nil {
		return KeyPair{}, fmt.Errorf("entropy source failed: %w", err)
	}
	public, err := exchange.DerivePublic(pair.Secret)
	if err != nil {
		return KeyPair{}, fmt.Errorf("public key derivation failed: %w", err)
	}
	pair.Public = public
	return pair, nil
}
