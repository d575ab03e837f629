package tui

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// copyFunc copies text to the system clipboard. Tests replace it.
var copyFunc = copyToClipboard

var errNoClipboardTool = errors.New("no clipboard tool: install xclip or xsel")

// clipboard writers in order of preference per OS
var clipboardTools = map[string][][]string{
	"darwin": {{"pbcopy"}},
	"linux": {
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

// clipboardArgv picks the first available clipboard writer for goos.
// lookPath reports whether a tool is installed.
func clipboardArgv(goos string, lookPath func(string) (string, error)) ([]string, error) {
	tools, ok := clipboardTools[goos]
	if !ok {
		return nil, fmt.Errorf("clipboard not supported on %s", goos)
	}
	for _, argv := range tools {
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, errNoClipboardTool
}

func copyToClipboard(text string) error {
	argv, err := clipboardArgv(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
