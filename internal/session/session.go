// Package session drives an interactive analysis session: it collects the
// optional personal info once, then analyzes passwords until the exit
// keyword or the end of input.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/strength"
)

// Banner introduces the personal-info prompts.
const Banner = "Enter personal information to avoid in passwords (or press Enter to skip):"

// Report is one analyzed password ready for display.
type Report struct {
	Result strength.Result `json:"result"`
	// Suggestion is empty when the password already rates Excellent.
	Suggestion string `json:"suggestion,omitempty"`
}

// Outcome is what handling one line produced.
type Outcome struct {
	Exit   bool
	Report *Report
}

// Session holds the state of one interactive run. Personal info lives
// here for the lifetime of the session and nowhere else.
type Session struct {
	scorer *strength.Scorer
	gen    *generator.Generator
	state  State
}

// New creates a session waiting for the name prompt.
func New(scorer *strength.Scorer, gen *generator.Generator) *Session {
	return &Session{scorer: scorer, gen: gen}
}

// NewWithInfo creates a session that already holds personal info and is
// waiting for passwords.
func NewWithInfo(scorer *strength.Scorer, gen *generator.Generator, info strength.PersonalInfo) *Session {
	return &Session{
		scorer: scorer,
		gen:    gen,
		state:  State{Phase: AwaitingPassword, Info: info},
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Handle feeds one input line through the state machine and performs the
// requested action.
func (s *Session) Handle(line string) (Outcome, error) {
	next, act := Transition(s.state, line)
	s.state = next

	switch act.Kind {
	case ActionExit:
		return Outcome{Exit: true}, nil
	case ActionAnalyze:
		rep, err := s.Analyze(act.Password)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Report: &rep}, nil
	}
	return Outcome{}, nil
}

// Analyze scores a password with the session's personal info and attaches
// a suggestion unless it already rates Excellent.
func (s *Session) Analyze(password string) (Report, error) {
	info := s.state.Info
	rep := Report{Result: s.scorer.Analyze(password, info)}
	if rep.Result.Rating == strength.Excellent {
		return rep, nil
	}

	pw, err := s.gen.Suggest(func(c string) bool { return s.scorer.Excellent(c, info) })
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}
	rep.Suggestion = pw
	return rep, nil
}

// Run drives the plain-text protocol over r and w. End of input and
// context cancellation end the session like the exit keyword does.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := NewPrinter(lipgloss.NewRenderer(w))
	lines := readLines(ctx, r)

	if s.state.Phase == AwaitingName {
		fmt.Fprintln(w, Banner)
	}

	for {
		fmt.Fprint(w, s.state.Phase.Prompt())

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(w)
				return nil
			}
			line = l
		}

		out, err := s.Handle(line)
		if err != nil {
			return err
		}
		if out.Exit {
			return nil
		}
		if out.Report != nil {
			if _, err := io.WriteString(w, p.Render(*out.Report)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
}

// readLines streams input lines without their line endings. Lines of any
// length are delivered whole, and a final line without a newline still
// counts. The channel closes at end of input, on a read error or once ctx
// is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" || err == nil {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case ch <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
