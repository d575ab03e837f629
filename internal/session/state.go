package session

import (
	"strings"

	"github.com/zarlcorp/zpass/internal/strength"
)

// ExitKeyword ends a session when entered at the password prompt,
// compared case-insensitively.
const ExitKeyword = "quit"

// Phase is the step of the session waiting for input. AwaitingName and
// AwaitingBirthdate together collect the personal info.
type Phase int

const (
	AwaitingName Phase = iota
	AwaitingBirthdate
	AwaitingPassword
	Done
)

func (p Phase) String() string {
	switch p {
	case AwaitingName:
		return "name"
	case AwaitingBirthdate:
		return "birthdate"
	case AwaitingPassword:
		return "password"
	case Done:
		return "done"
	}
	return "unknown"
}

// State is the full session state. It is a value; transitions return a
// new one.
type State struct {
	Phase Phase
	Info  strength.PersonalInfo
}

// ActionKind tells the caller what a transition asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAnalyze
	ActionExit
)

// Action is the side effect requested by a transition.
type Action struct {
	Kind     ActionKind
	Password string
}

// Transition applies one input line to a state. It performs no I/O.
func Transition(s State, line string) (State, Action) {
	switch s.Phase {
	case AwaitingName:
		s.Info.Name = strings.TrimSpace(line)
		s.Phase = AwaitingBirthdate
		return s, Action{Kind: ActionNone}

	case AwaitingBirthdate:
		s.Info.Birthdate = strings.TrimSpace(line)
		s.Phase = AwaitingPassword
		return s, Action{Kind: ActionNone}

	case AwaitingPassword:
		if strings.EqualFold(line, ExitKeyword) {
			s.Phase = Done
			return s, Action{Kind: ActionExit}
		}
		return s, Action{Kind: ActionAnalyze, Password: line}
	}

	s.Phase = Done
	return s, Action{Kind: ActionExit}
}

// Prompt returns the text shown while waiting in phase p.
func (p Phase) Prompt() string {
	switch p {
	case AwaitingName:
		return "Name: "
	case AwaitingBirthdate:
		return "Birthdate (e.g., 1990): "
	case AwaitingPassword:
		return "\nEnter a password to analyze (or '" + ExitKeyword + "' to exit): "
	}
	return ""
}
