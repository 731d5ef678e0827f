package tui

import (
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// IsTTY reports whether stream is an *os.File attached to a terminal.
// Buffers, pipes and regular files are not.
func IsTTY(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// PlainText removes ANSI styling from rendered output.
func PlainText(s string) string {
	return ansi.Strip(s)
}
