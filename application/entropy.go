package application

// EntropySource supplies secret-key material from a cryptographically secure
// generator. Every Fill call must draw fresh bytes; implementations never
// hand out the same bytes twice.
type EntropySource interface {
	Fill(secret *[32]byte) error
}
