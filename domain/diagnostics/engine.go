package diagnostics

import (
	"fmt"

	"ecdhprobe/application"
	"ecdhprobe/application/logging"
	"ecdhprobe/domain/transcript"
)

// Engine drives one full exchange per Run call: two independent key pairs,
// one Diffie-Hellman computation, one verdict. It keeps no state between
// runs; key material lives only for the duration of the call.
type Engine struct {
	entropy  application.EntropySource
	exchange application.KeyExchange
	logger   logging.Logger
	log      *transcript.Log
}

func NewEngine(
	entropy application.EntropySource,
	exchange application.KeyExchange,
	logger logging.Logger,
	log *transcript.Log,
) *Engine {
	return &Engine{
		entropy:  entropy,
		exchange: exchange,
		logger:   logger,
		log:      log,
	}
}

// Run executes the exchange, appending step markers and hex values to the
// transcript and the full wrapped trace to the diagnostic sink. A run is
// synchronous and never retried; the first failing step aborts it.
func (e *Engine) Run() (local, remote KeyPair, shared SharedSecret, verdict Verdict, err error) {
	e.logger.Infof("=== STARTING ECDH TEST ===")
	e.log.Append("=== ECDH TEST ===")

	e.log.Append("1. Generating our keypair...")
	local, err = GenerateKeyPair(e.entropy, e.exchange)
	if err != nil {
		err = fmt.Errorf("local keypair: %w", err)
		e.logger.Errorf("%s", err)
		return
	}
	e.logger.Infof("Our private key: %s", FormatHexWrapped(local.Secret[:]))
	e.logger.Infof("Our public key: %s", FormatHexWrapped(local.Public[:]))
	e.log.Append("Our priv: " + FormatHex(local.Secret[:]))
	e.log.Append("Our pub:  " + FormatHex(local.Public[:]))

	e.log.Append("2. Generating peer keypair...")
	remote, err = GenerateKeyPair(e.entropy, e.exchange)
	if err != nil {
		err = fmt.Errorf("peer keypair: %w", err)
		e.logger.Errorf("%s", err)
		return
	}
	e.logger.Infof("Peer private key: %s", FormatHexWrapped(remote.Secret[:]))
	e.logger.Infof("Peer public key: %s", FormatHexWrapped(remote.Public[:]))
	e.log.Append("Peer pub: " + FormatHex(remote.Public[:]))

	e.log.Append("3. Computing ECDH...")
	e.logger.Infof("Computing ECDH: our_private.diffie_hellman(peer_public)")
	e.logger.Infof("  Input private: %s", FormatHexWrapped(local.Secret[:]))
	e.logger.Infof("  Input public:  %s", FormatHexWrapped(remote.Public[:]))
	sharedBytes, dhErr := e.exchange.DiffieHellman(local.Secret, remote.Public)
	if dhErr != nil {
		err = fmt.Errorf("diffie-hellman: %w", dhErr)
		e.logger.Errorf("%s", err)
		return
	}
	shared = SharedSecret(sharedBytes)
	e.logger.Infof("  Output shared: %s", FormatHexWrapped(shared[:]))
	e.log.Append("Shared:   " + FormatHex(shared[:]))

	e.log.Append("4. Checking results...")
	verdict = Classify(shared, local, remote)
	e.log.Append(verdict.String())
	switch verdict {
	case MatchesRemotePublic:
		e.logger.Errorf("Shared secret equals peer public key!")
	case MatchesLocalPublic:
		e.logger.Errorf("Shared secret equals our public key!")
	default:
		e.logger.Infof("ECDH output looks correct")
	}

	e.logger.Infof("=== ECDH TEST COMPLETE ===")
	e.log.Append("=== TEST COMPLETE ===")
	return
}
