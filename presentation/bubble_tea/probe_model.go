package bubble_tea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ecdhprobe/application"
	"ecdhprobe/application/logging"
	"ecdhprobe/domain/rendering"
	"ecdhprobe/domain/transcript"
	"ecdhprobe/presentation/interactive_commands"
)

// chromeRows is the part of the terminal not owned by the transcript canvas:
// header, input line and hint.
const chromeRows = 3

// ProbeModel is the single event-processing loop of the probe. Messages are
// handled one at a time, the transcript and the engine are owned exclusively
// by this model, and a dispatched run completes before the next message is
// looked at.
type ProbeModel struct {
	dispatcher *interactive_commands.Dispatcher
	log        *transcript.Log
	logger     logging.Logger
	surface    *canvas
	input      *TextInput
	styles     probeStyles
	focused    bool
	quitting   bool
}

func NewProbeModel(
	dispatcher *interactive_commands.Dispatcher,
	log *transcript.Log,
	logger logging.Logger,
	colored bool,
) *ProbeModel {
	return &ProbeModel{
		dispatcher: dispatcher,
		log:        log,
		logger:     logger,
		surface:    newCanvas(80, 24-chromeRows),
		input:      NewTextInput("run | clear"),
		styles:     newProbeStyles(colored),
		focused:    true,
	}
}

func (m *ProbeModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m *ProbeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, msg.Height-chromeRows)
		return m, nil
	case tea.FocusMsg:
		m.focused = true
		return m, m.input.Focus()
	case tea.BlurMsg:
		m.focused = false
		m.input.Blur()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Infof("Quit requested, exiting")
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			m.logger.Infof("Received input: %s", line)
			m.dispatcher.Dispatch(line)
			return m, nil
		}
	}
	return m, m.input.Update(msg)
}

// View repaints from scratch: clear the surface, lay the newest-first
// entries out bottom-anchored, post every line.
func (m *ProbeModel) View() string {
	if m.quitting {
		return ""
	}
	redraw(m.surface, m.surface.Viewport(), m.log)

	hint := "enter: dispatch | ctrl+c: quit"
	if !m.focused {
		hint = "window unfocused"
	}
	return m.styles.header.Render("ECDH probe") + "\n" +
		m.surface.Flush(m.styles) + "\n" +
		m.styles.prompt.Render(m.input.View()) + "\n" +
		m.styles.hint.Render(hint)
}

// redraw issues the draw calls for one frame. It works against any
// RenderSurface; draw failures are the surface's problem, never the loop's.
func redraw(surface application.RenderSurface, viewport rendering.Viewport, log *transcript.Log) {
	surface.FillRegion(rendering.Box{Right: viewport.Width, Bottom: viewport.Height})
	for _, line := range rendering.Layout(viewport, log.NewestFirst()) {
		surface.PostText(line.Box, line.Text, styleFor(line.Text))
	}
}

// styleFor picks the glyph style from the entry content so verdict lines
// stand out in the transcript.
func styleFor(text string) rendering.Style {
	switch {
	case strings.HasPrefix(text, "BUG:"):
		return rendering.StyleAlert
	case strings.HasPrefix(text, "OK:"):
		return rendering.StyleEmphasis
	default:
		return rendering.StyleRegular
	}
}
