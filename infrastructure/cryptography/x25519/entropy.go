package x25519

import (
	"crypto/rand"
	"io"

	"ecdhprobe/application"
)

// DefaultEntropySource reads secret material from crypto/rand.
type DefaultEntropySource struct{}

func NewDefaultEntropySource() application.EntropySource {
	return &DefaultEntropySource{}
}

func (d *DefaultEntropySource) Fill(secret *[32]byte) error {
	_, err := io.ReadFull(rand.Reader, secret[:])
	return err
}
