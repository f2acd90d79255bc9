// Package tui provides the Bubble Tea terminal frontend for inferno.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/inferno/internal/config"
	"github.com/cory-johannsen/inferno/internal/game/npc"
	"github.com/cory-johannsen/inferno/internal/game/session"
	"github.com/cory-johannsen/inferno/internal/game/state"
	"github.com/cory-johannsen/inferno/internal/game/world"
	"github.com/cory-johannsen/inferno/internal/gameserver"
)

// Backend is the game the frontend drives. *gameserver.Driver implements it.
type Backend interface {
	SubmitCommand(line string) bool
	SubmitAction(a state.PlayerAction) bool
	Move(dir world.Direction) error
	View() session.View
	Events() <-chan gameserver.Event
}

type focus int

const (
	focusMap focus = iota
	focusConsole
)

// eventMsg carries one tick result into the Update loop.
type eventMsg gameserver.Event

// eventsClosedMsg reports that the tick loop has stopped.
type eventsClosedMsg struct{}

// Model is the Bubble Tea model.
type Model struct {
	backend Backend
	view    session.View

	input      textinput.Model
	console    viewport.Model
	history    *History
	scrollback *Scrollback

	// dialogue is the last NPC response; awaiting is true until the player answers it.
	dialogue *npc.Response
	awaiting bool
	// earlier holds the rendered lines shown above dialogue, oldest first.
	earlier []string
	status   string

	focus    focus
	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a Model wired to backend.
func New(backend Backend, cfg config.FrontendConfig) Model {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		backend:    backend,
		view:       backend.View(),
		input:      ti,
		history:    NewHistory(cfg.HistoryCap),
		scrollback: NewScrollback(cfg.ScrollbackCap),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(backend Backend, cfg config.FrontendConfig) error {
	p := tea.NewProgram(New(backend, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts listening for tick events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.backend.Events()))
}

func waitForEvent(ch <-chan gameserver.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// Update handles key presses, window resizes and tick events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := m.consoleHeight()
		if !m.ready {
			m.console = viewport.New(m.width-4, h)
			m.console.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.console.Width = m.width - 4
			m.console.Height = h
		}
		m.refreshConsole()
		return m, nil

	case eventMsg:
		m = m.applyEvent(gameserver.Event(msg))
		return m, waitForEvent(m.backend.Events())

	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.view.State.Progress.AtLeast(state.ProgressHasTerminal) {
				m = m.toggleFocus()
			}
			return m, nil
		}
		if m.focus == focusConsole {
			return m.updateConsole(msg)
		}
		m = m.updateMap(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.focus == focusConsole {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) toggleFocus() Model {
	if m.focus == focusMap {
		m.focus = focusConsole
		m.input.Focus()
	} else {
		m.focus = focusMap
		m.input.Blur()
	}
	return m
}

// applyEvent folds a tick result into the model.
func (m Model) applyEvent(ev gameserver.Event) Model {
	m.view = ev.View
	for _, c := range ev.Result.Commands {
		m.scrollback.Append("$ " + c.Line + "\n" + c.Display())
	}
	if len(ev.Result.Commands) > 0 {
		m.refreshConsole()
	}
	if ev.Result.Started != "" {
		m.status = ""
		m.dialogue = nil
		m.earlier = nil
	}
	if r := ev.Result.Response; r != nil {
		if m.dialogue != nil {
			m.earlier = append(m.earlier, dialogueLine(*m.dialogue))
			if len(m.earlier) > dialogueBacklog {
				m.earlier = m.earlier[len(m.earlier)-dialogueBacklog:]
			}
		}
		m.dialogue = r
		m.awaiting = true
	}
	if ev.Result.Ended != "" {
		m.awaiting = false
		m.status = "The road is clear."
	}
	return m
}

func (m Model) updateMap(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		return m.move(world.North)
	case "down", "j":
		return m.move(world.South)
	case "left", "h":
		return m.move(world.West)
	case "right", "l":
		return m.move(world.East)
	case "enter", " ":
		if m.view.State.InBattle && m.awaiting && len(m.dialogue.Choices) == 0 {
			m.awaiting = !m.backend.SubmitAction(state.Ping())
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if m.view.State.InBattle && m.awaiting && idx < len(m.dialogue.Choices) {
			m.awaiting = !m.backend.SubmitAction(state.Respond(idx))
		}
	case "q":
		m.quitting = true
	}
	return m
}

func (m Model) move(dir world.Direction) Model {
	if err := m.backend.Move(dir); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = ""
	m.view = m.backend.View()
	return m
}

func (m Model) updateConsole(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.history.ResetCursor()
		if line == "" {
			return m, nil
		}
		m.history.Push(line)
		if !m.backend.SubmitCommand(line) {
			m.status = "Console is busy, try again."
		}
		return m, nil
	case "up":
		if prev, ok := m.history.Prev(); ok {
			m.input.SetValue(prev)
			m.input.CursorEnd()
		}
		return m, nil
	case "down":
		if next, ok := m.history.Next(); ok {
			m.input.SetValue(next)
			m.input.CursorEnd()
		} else {
			m.input.SetValue("")
		}
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refreshConsole() {
	if !m.ready {
		return
	}
	m.console.SetContent(strings.Join(m.scrollback.Entries(), "\n"))
	m.console.GotoBottom()
}

func (m Model) consoleHeight() int {
	h := m.height / 3
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the map, the unlocked panels and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	top := m.panel("map", renderMap(m.view.Map, m.view.Placements, world.Position{X: m.view.State.PlayerX, Y: m.view.State.PlayerY}), m.focus == focusMap)
	if m.view.State.Progress.AtLeast(state.ProgressHasPanel) {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, m.panel("details", m.renderDetails(), false))
	}

	sections := []string{top}
	if m.dialogue != nil {
		sections = append(sections, m.panel(m.dialogueTitle(), m.renderDialogue(), m.focus == focusMap))
	}
	if m.view.State.Progress.AtLeast(state.ProgressHasTerminal) && m.ready {
		sections = append(sections, m.panel("terminal", m.console.View()+"\n"+m.input.View(), m.focus == focusConsole))
	}
	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel(title, body string, focused bool) string {
	style := stylePanel
	if focused {
		style = styleFocusedPanel
	}
	return style.Render(styleTitle.Render(title) + "\n" + body)
}

func (m Model) renderDetails() string {
	details := m.view.State.Details
	if n := m.view.NPC; n != nil {
		details += "\n\n" + n.Info
	}
	return details
}

func (m Model) dialogueTitle() string {
	if m.view.NPC != nil {
		return m.view.NPC.Name
	}
	return "..."
}

// dialogueBacklog is how many earlier lines stay visible above the current one.
const dialogueBacklog = 4

// dialogueLine renders one response without its choices.
func dialogueLine(r npc.Response) string {
	if r.Name != "" {
		return styleSpeaker.Render(r.Name+": ") + styleDialogue.Render(r.Message)
	}
	return styleNarration.Render(r.Message)
}

func (m Model) renderDialogue() string {
	var b strings.Builder
	for _, l := range m.earlier {
		b.WriteString(l + "\n")
	}
	b.WriteString(dialogueLine(*m.dialogue))
	for i, c := range m.dialogue.Choices {
		b.WriteString("\n" + styleChoice.Render(fmt.Sprintf("[%d] %s", i+1, c)))
	}
	if len(m.dialogue.Choices) == 0 && m.awaiting {
		b.WriteString("\n" + styleHint.Render("[enter] continue"))
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" (%d, %d) ", m.view.State.PlayerX, m.view.State.PlayerY)
	if m.view.State.Progress.AtLeast(state.ProgressHasPanel) {
		left += fmt.Sprintf("HP %d/%d ", m.view.State.PlayerHitPoints, m.view.State.PlayerMaxHP)
	}
	if m.view.NPC != nil {
		left += "| " + m.view.NPC.Name + " "
	}
	bar := styleStatusBar.Render(left)
	if m.status != "" {
		bar += " " + styleError.Render(m.status)
	}
	return bar
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (those recall console history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
