package application

// KeyExchange is the curve primitive behind the probe: X25519-style scalar
// multiplication over fixed 32-byte values.
type KeyExchange interface {
	DerivePublic(secret [32]byte) ([32]byte, error)
	DiffieHellman(secret, peerPublic [32]byte) ([32]byte, error)
}
