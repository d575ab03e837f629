// Package tui implements the Bubble Tea front end for zpass. It drives the
// same session state machine as the line-based protocol.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/session"
)

var accent = lipgloss.Color("#F5A623")

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// Model is the root TUI model.
type Model struct {
	version string
	sess    *session.Session
	printer session.Printer

	input  textinput.Model
	report *session.Report
	errMsg string
	flash  string

	width int
}

// New creates the root model around a fresh session.
func New(version string, sess *session.Session) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 40

	m := Model{
		version: version,
		sess:    sess,
		printer: session.NewPrinter(lipgloss.DefaultRenderer()),
		input:   ti,
	}
	m.syncInput()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case flashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		// q must reach the input, only ctrl+c quits
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyCtrlY {
			return m.copySuggestion()
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.submit()
		}

		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	out, err := m.sess.Handle(m.input.Value())
	m.input.SetValue("")
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if out.Exit {
		return m, tea.Quit
	}
	if out.Report != nil {
		m.report = out.Report
	}
	m.errMsg = ""
	m.syncInput()
	return m, nil
}

func (m Model) copySuggestion() (tea.Model, tea.Cmd) {
	if m.report == nil || m.report.Suggestion == "" {
		m.flash = "no suggestion to copy"
		return m, clearFlashAfter()
	}
	if err := copyFunc(m.report.Suggestion); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "copied!"
	return m, clearFlashAfter()
}

// syncInput masks the input while a password is being typed.
func (m *Model) syncInput() {
	if m.sess.State().Phase == session.AwaitingPassword {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '*'
		m.input.Placeholder = "password or " + session.ExitKeyword
		return
	}
	m.input.EchoMode = textinput.EchoNormal
	m.input.Placeholder = "press enter to skip"
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m Model) View() string {
	phase := m.sess.State().Phase

	header := zstyle.RenderHeader("zpass", title(phase), accent) + " " + zstyle.MutedText.Render(m.version)
	sep := zstyle.RenderSeparator(m.width)

	s := "\n" + header + "\n" + sep + "\n\n"

	if phase != session.AwaitingPassword {
		s += "  " + zstyle.MutedText.Render(session.Banner) + "\n\n"
	}

	s += fmt.Sprintf("  %s\n  %s\n", label(phase), m.input.View())

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	}

	if m.report != nil {
		indent := lipgloss.NewStyle().MarginLeft(2)
		s += indent.Render(m.printer.Render(*m.report)) + "\n"
	}

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "\n  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n\n"
	}

	return s + zstyle.RenderFooter(helpFor(phase)) + "\n"
}

func title(p session.Phase) string {
	if p == session.AwaitingPassword {
		return "Analyze"
	}
	return "Personal Info"
}

func label(p session.Phase) string {
	switch p {
	case session.AwaitingName:
		return "name:"
	case session.AwaitingBirthdate:
		return "birthdate (e.g., 1990):"
	}
	return "password:"
}

// helpFor returns keybinding pairs for the footer.
func helpFor(p session.Phase) []zstyle.HelpPair {
	if p != session.AwaitingPassword {
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "next"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	return []zstyle.HelpPair{
		{Key: "enter", Desc: "analyze"},
		{Key: "ctrl+y", Desc: "copy suggestion"},
		{Key: "ctrl+c", Desc: "quit"},
	}
}
