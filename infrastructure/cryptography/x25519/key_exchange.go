package x25519

import (
	"golang.org/x/crypto/curve25519"

	"ecdhprobe/application"
)

// DefaultKeyExchange implements the probe's curve primitive with X25519
// scalar multiplication.
type DefaultKeyExchange struct{}

func NewDefaultKeyExchange() application.KeyExchange {
	return &DefaultKeyExchange{}
}

func (d *DefaultKeyExchange) DerivePublic(secret [32]byte) ([32]byte, error) {
	var public [32]byte
	publicSlice, err := curve25519.X25519(secret[:], curve25519.Basepoint)
	if err != nil {
		return public, err
	}
	copy(public[:], publicSlice)
	return public, nil
}

func (d *DefaultKeyExchange) DiffieHellman(secret, peerPublic [32]byte) ([32]byte, error) {
	var shared [32]byte
	sharedSlice, err := curve25519.X25519(secret[:], peerPublic[:])
	if err != nil {
		return shared, err
	}
	copy(shared[:], sharedSlice)
	return shared, nil
}
