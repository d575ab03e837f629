package tui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/session"
	"github.com/zarlcorp/zpass/internal/strength"
)

// helpers

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func newTestModel() Model {
	var seed [32]byte
	seed[0] = 9
	sess := session.New(strength.NewScorer(), generator.New(rand.NewChaCha8(seed)))
	return New("test", sess)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	um, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return um, cmd
}

// submit types value into the input and presses enter.
func submit(t *testing.T, m Model, value string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(value)
	return update(t, m, enterKey())
}

func skipPersonalInfo(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = submit(t, m, "")
	m, _ = submit(t, m, "")
	return m
}

func TestViewStartsAtName(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if !strings.Contains(view, "name:") {
		t.Error("view should show name prompt")
	}
	if !strings.Contains(view, session.Banner) {
		t.Error("view should show personal info banner")
	}
	if m.input.EchoMode != textinput.EchoNormal {
		t.Error("name input should echo")
	}
}

func TestPersonalInfoAdvancesToPassword(t *testing.T) {
	m := newTestModel()

	m, _ = submit(t, m, "John")
	if !strings.Contains(m.View(), "birthdate") {
		t.Error("should show birthdate prompt after name")
	}

	m, _ = submit(t, m, "1995")
	if m.sess.State().Phase != session.AwaitingPassword {
		t.Fatalf("phase = %s, want password", m.sess.State().Phase)
	}
	if m.input.EchoMode != textinput.EchoPassword {
		t.Error("password input should be masked")
	}
	if got := m.sess.State().Info; got.Name != "John" || got.Birthdate != "1995" {
		t.Errorf("info = %+v", got)
	}
}

func TestAnalyzeShowsReport(t *testing.T) {
	m := skipPersonalInfo(t, newTestModel())

	m, _ = submit(t, m, "password123")

	if m.report == nil {
		t.Fatal("expected a report")
	}
	view := m.View()
	for _, w := range []string{"Very Weak", "10/100", "Suggested Excellent Password", m.report.Suggestion} {
		if !strings.Contains(view, w) {
			t.Errorf("view missing %q", w)
		}
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
}

func TestLongPasswordNotTruncated(t *testing.T) {
	m := skipPersonalInfo(t, newTestModel())
	long := strings.Repeat("Xk9#", 75)

	m, _ = submit(t, m, long)

	if m.report == nil {
		t.Fatal("expected a report")
	}
	want := strength.NewScorer().Analyze(long, strength.PersonalInfo{})
	if m.report.Result.MaxEntropy != want.MaxEntropy {
		t.Errorf("max entropy = %v, want %v for %d runes", m.report.Result.MaxEntropy, want.MaxEntropy, len(long))
	}
}

func TestPasswordMaskedInView(t *testing.T) {
	m := skipPersonalInfo(t, newTestModel())
	m.input.SetValue("hunter2secret")

	if strings.Contains(m.View(), "hunter2secret") {
		t.Error("password should not be echoed")
	}
}

func TestQuitKeyword(t *testing.T) {
	for _, kw := range []string{"quit", "QUIT"} {
		t.Run(kw, func(t *testing.T) {
			m := skipPersonalInfo(t, newTestModel())
			m, cmd := submit(t, m, kw)

			if cmd == nil {
				t.Fatal("quit should produce a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit should produce QuitMsg")
			}
			if m.report != nil {
				t.Error("quit should not produce a report")
			}
		})
	}
}

func TestQKeyDoesNotQuit(t *testing.T) {
	m := skipPersonalInfo(t, newTestModel())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("pressing 'q' should not quit")
		}
	}
	if m.input.Value() != "q" {
		t.Errorf("input = %q, want %q", m.input.Value(), "q")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce QuitMsg")
	}
}

func TestCopySuggestion(t *testing.T) {
	var copied string
	orig := copyFunc
	copyFunc = func(s string) error { copied = s; return nil }
	defer func() { copyFunc = orig }()

	m := skipPersonalInfo(t, newTestModel())
	m, _ = submit(t, m, "abc")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied == "" || copied != m.report.Suggestion {
		t.Errorf("copied %q, want %q", copied, m.report.Suggestion)
	}
	if !strings.Contains(m.View(), "copied!") {
		t.Error("should flash copied")
	}
	if cmd == nil {
		t.Error("flash should schedule a clear")
	}

	m, _ = update(t, m, flashMsg{})
	if m.flash != "" {
		t.Error("flash should clear")
	}
}

func TestCopyWithoutSuggestion(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.View(), "no suggestion to copy") {
		t.Error("should explain there is nothing to copy")
	}
}

func TestCopyError(t *testing.T) {
	orig := copyFunc
	copyFunc = func(string) error { return errors.New("no clipboard") }
	defer func() { copyFunc = orig }()

	m := skipPersonalInfo(t, newTestModel())
	m, _ = submit(t, m, "abc")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	if !strings.Contains(m.View(), "copy: no clipboard") {
		t.Error("should show copy error")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.width != 80 {
		t.Errorf("width = %d, want 80", m.width)
	}
}
