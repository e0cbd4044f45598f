package diagnostics

// Verdict classifies the shared secret against both public keys of a run.
// Exactly one verdict is produced per run; the two bug verdicts are reported
// findings, not engine failures.
type Verdict int

const (
	// Distinct is the healthy outcome: the shared secret matches neither key.
	Distinct Verdict = iota
	// MatchesRemotePublic flags a DH output equal to the peer public key.
	MatchesRemotePublic
	// MatchesLocalPublic flags a DH output equal to our own public key.
	MatchesLocalPublic
)

// Classify compares exact bytes. The compared values are already fully
// visible in the trace, so a constant-time comparison would only obscure the
// very condition this tool exists to expose.
func Classify(shared SharedSecret, local, remote KeyPair) Verdict {
	if shared == SharedSecret(remote.Public) {
		return MatchesRemotePublic
	}
	if shared == SharedSecret(local.Public) {
		return MatchesLocalPublic
	}
	return Distinct
}

func (v Verdict) String() string {
	switch v {
	case MatchesRemotePublic:
		return "BUG: shared == peer_pub!"
	case MatchesLocalPublic:
		return "BUG: shared == our_pub!"
	default:
		return "OK: shared != any pubkey"
	}
}
