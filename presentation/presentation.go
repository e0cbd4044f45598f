package presentation

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"ecdhprobe/application/logging"
	"ecdhprobe/domain/diagnostics"
	"ecdhprobe/domain/transcript"
	"ecdhprobe/infrastructure/cryptography/x25519"
	bubbleTea "ecdhprobe/presentation/bubble_tea"
	"ecdhprobe/presentation/interactive_commands"
	"ecdhprobe/settings"
)

// interactiveProgram is the slice of *tea.Program the supervisor drives.
type interactiveProgram interface {
	Run() (tea.Model, error)
	Quit()
}

// StartProbe wires the diagnostic engine to the terminal front-end and
// blocks until the user quits or ctx is cancelled.
func StartProbe(ctx context.Context, conf *settings.Configuration, logger logging.Logger) error {
	log := newTranscript(conf)

	engine := diagnostics.NewEngine(
		x25519.NewDefaultEntropySource(),
		x25519.NewDefaultKeyExchange(),
		logger,
		log,
	)
	dispatcher := interactive_commands.NewDispatcher(engine, log, logger)
	model := bubbleTea.NewProbeModel(dispatcher, log, logger, !conf.DisableColors)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	return superviseProgram(ctx, program)
}

// newTranscript seeds the visible transcript with the startup banner unless
// the configuration hides it.
func newTranscript(conf *settings.Configuration) *transcript.Log {
	log := transcript.NewLog()
	if !conf.HideBanner {
		log.Append("ECDH Test App v0.1.0")
		log.Append("Type 'help' for commands")
	}
	return log
}

// superviseProgram runs the event loop under an errgroup: one goroutine
// drives the program, another shuts it down when ctx is cancelled. Wait
// returns once both are done, so the terminal is restored before the caller
// proceeds.
func superviseProgram(ctx context.Context, program interactiveProgram) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-runCtx.Done()
		program.Quit()
		return nil
	})
	return g.Wait()
}
