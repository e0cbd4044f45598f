package interactive_commands

import (
	"strings"

	"ecdhprobe/application/logging"
	"ecdhprobe/domain/diagnostics"
	"ecdhprobe/domain/transcript"
)

const (
	runCmd   = "run"
	clearCmd = "clear"

	helpLine         = "Type 'run' to test ECDH"
	clearConfirmLine = "Screen cleared"
)

// Dispatcher routes one line of user input to the engine or the transcript.
type Dispatcher struct {
	engine *diagnostics.Engine
	log    *transcript.Log
	logger logging.Logger
}

func NewDispatcher(engine *diagnostics.Engine, log *transcript.Log, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		log:    log,
		logger: logger,
	}
}

// Dispatch echoes the raw line first, then matches the trimmed text exactly.
// Matching is case-sensitive with no prefix or fuzzy forms; unrecognized
// input is not an error and falls through to the help line. Note the echo of
// "clear" is itself wiped, since clearing runs after the echo append.
func (d *Dispatcher) Dispatch(raw string) {
	d.log.Append(">" + raw)

	switch strings.TrimSpace(raw) {
	case runCmd:
		if _, _, _, _, err := d.engine.Run(); err != nil {
			d.logger.Errorf("diagnostic run aborted: %s", err)
			d.log.Append("ERROR: " + err.Error())
		}
	case clearCmd:
		d.log.Clear()
		d.log.Append(clearConfirmLine)
	default:
		d.log.Append(helpLine)
	}
}
