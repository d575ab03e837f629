// Package cli implements zpass's command-line subcommands.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/session"
	"github.com/zarlcorp/zpass/internal/strength"
	"golang.org/x/term"
)

// ReadPassword prompts on w and reads a password from f without echo when
// f is a terminal, otherwise it reads the first line of f. The caller owns
// the returned buffer and should erase it.
func ReadPassword(prompt string, f *os.File, w io.Writer) ([]byte, error) {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(w, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return b, nil
	}
	return readLine(f)
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read password: %w", err)
	}
	line = trimNewline(line)
	return line, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

// CmdCheck analyzes one password read from stdin.
func CmdCheck(args []string) {
	pw, err := ReadPassword("password: ", os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zpass: %v\n", err)
		os.Exit(1)
	}
	defer zcrypto.Erase(pw)

	if err := Check(os.Stdout, pw, args); err != nil {
		fmt.Fprintf(os.Stderr, "zpass: %v\n", err)
		os.Exit(1)
	}
}

// Check analyzes password and writes the report, or JSON with --json.
// Personal info comes from --name and --birthdate.
func Check(w io.Writer, password []byte, args []string) error {
	info := strength.PersonalInfo{
		Name:      flagValue(args, "--name"),
		Birthdate: flagValue(args, "--birthdate"),
	}

	scorer := strength.NewScorer()
	gen := generator.New(generator.SecureSource())
	sess := session.NewWithInfo(scorer, gen, info)

	rep, err := sess.Analyze(string(password))
	if err != nil {
		return err
	}

	if hasFlag(args, "--json") {
		return printJSON(w, rep)
	}
	_, err = io.WriteString(w, session.NewPrinter(lipgloss.NewRenderer(w)).Render(rep))
	return err
}

// CmdGenerate prints one suggested password.
func CmdGenerate(args []string) {
	if err := Generate(os.Stdout, generator.SecureSource(), args); err != nil {
		fmt.Fprintf(os.Stderr, "zpass: %v\n", err)
		os.Exit(1)
	}
}

// Generate writes a password that rates Excellent, as text or with --json.
func Generate(w io.Writer, src io.Reader, args []string) error {
	scorer := strength.NewScorer()
	gen := generator.New(src)

	pw, err := gen.Suggest(func(c string) bool { return scorer.Excellent(c, strength.PersonalInfo{}) })
	if err != nil {
		return err
	}

	if hasFlag(args, "--json") {
		return printJSON(w, struct {
			Password string          `json:"password"`
			Result   strength.Result `json:"result"`
		}{pw, scorer.Analyze(pw, strength.PersonalInfo{})})
	}
	_, err = fmt.Fprintln(w, pw)
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value of "--flag value" or "--flag=value".
func flagValue(args []string, flag string) string {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1]
		}
		if k, v, ok := strings.Cut(a, "="); ok && strings.EqualFold(k, flag) {
			return v
		}
	}
	return ""
}
