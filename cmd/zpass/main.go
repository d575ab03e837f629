package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpass/internal/cli"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/session"
	"github.com/zarlcorp/zpass/internal/strength"
	"github.com/zarlcorp/zpass/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpass"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if err := newSession().Run(ctx, os.Stdin, os.Stdout); err != nil {
		slog.Error("session", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zpass %s\n", version)
	case "check":
		cli.CmdCheck(os.Args[2:])
	case "generate":
		cli.CmdGenerate(os.Args[2:])
	case "tui":
		if err := runTUI(); err != nil {
			slog.Error("tui", "err", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "zpass: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func newSession() *session.Session {
	return session.New(strength.NewScorer(), generator.New(generator.SecureSource()))
}

func runTUI() error {
	m := tui.New(version, newSession())
	_, err := tea.NewProgram(m).Run()
	return err
}
