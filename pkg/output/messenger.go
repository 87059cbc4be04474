package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// DefaultWrapWidth is used when the terminal width is unknown.
const DefaultWrapWidth = 80

// Label palette, matching the ANSI colours used by the log console.
var (
	colourInfo    = lipgloss.Color("6")
	colourHint    = lipgloss.Color("2")
	colourWarning = lipgloss.Color("3")
	colourError   = lipgloss.Color("1")
)

// Messenger prints labelled, word-wrapped messages such as
// "warning: your password has only 59.54 bits of entropy".
type Messenger struct {
	w        io.Writer
	width    int
	colour   bool
	renderer *lipgloss.Renderer
}

// NewMessenger writes to w. Colour and the terminal width are used only
// when w is a terminal.
func NewMessenger(w io.Writer) *Messenger {
	m := &Messenger{w: w, width: DefaultWrapWidth, renderer: lipgloss.NewRenderer(w)}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		m.colour = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			m.width = width
		}
	}
	return m
}

// Stderr is the Messenger commands use for user-facing diagnostics.
func Stderr() *Messenger {
	return NewMessenger(os.Stderr)
}

func (m *Messenger) Info(text string)    { m.print("info", colourInfo, text) }
func (m *Messenger) Hint(text string)    { m.print("hint", colourHint, text) }
func (m *Messenger) Warning(text string) { m.print("warning", colourWarning, text) }
func (m *Messenger) Error(text string)   { m.print("error", colourError, text) }

func (m *Messenger) print(label string, colour lipgloss.Color, text string) {
	prefix := label + ":"
	wrapped := wordwrap.WrapString(prefix+" "+text, uint(m.width))
	if !m.colour {
		fmt.Fprintln(m.w, wrapped)
		return
	}

	body := strings.TrimPrefix(wrapped, prefix)
	labelStyle := m.renderer.NewStyle().Bold(true).Foreground(colour)
	bodyStyle := m.renderer.NewStyle().Bold(true)

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = bodyStyle.Render(line)
	}
	fmt.Fprintln(m.w, labelStyle.Render(prefix)+strings.Join(lines, "\n"))
}
