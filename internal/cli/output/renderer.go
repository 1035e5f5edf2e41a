// Package output renders command results in text, markdown, or JSON.
//
// Text mode is styled for terminals; markdown mode is plain and
// agent-friendly for pipes and scripts; JSON mode is machine-readable.
// ModeAuto picks text on a TTY and markdown otherwise.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how command results are rendered.
type OutputMode string

// Supported output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Mode normalizes a user-supplied format string to an OutputMode.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "md", "markdown":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes formatted command output.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool

	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

// NewRenderer creates a renderer, detecting TTY state from out.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Used by tests to force styled or plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}

	if r.styled() {
		r.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		r.success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		r.failure = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		r.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		r.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return r
}

// styled reports whether ANSI styling should be applied.
func (r *Renderer) styled() bool {
	return r.isTTY && termenv.EnvColorProfile() != termenv.Ascii
}

// EffectiveMode resolves ModeAuto: TTY gets styled text, pipes get
// markdown.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the stdout writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the stderr writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a styled section heading.
func (r *Renderer) Header(level int, text string) {
	if r.styled() {
		r.Println(r.header.Render(text))
		return
	}
	r.Println(FormatHeader(level, text))
}

// KeyValue writes an aligned "key: value" line.
func (r *Renderer) KeyValue(key, value string) {
	r.Printf("  %-16s %s\n", key+":", value)
}

// Success writes a confirmation line.
func (r *Renderer) Success(text string) {
	if r.styled() {
		r.Println(r.success.Render("✓ " + text))
		return
	}
	r.Println(text)
}

// Muted writes a de-emphasized line.
func (r *Renderer) Muted(text string) {
	if r.styled() {
		r.Println(r.muted.Render(text))
		return
	}
	r.Println(text)
}

// Warnf writes a warning line to stderr.
func (r *Renderer) Warnf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.styled() {
		_, _ = fmt.Fprintln(r.errOut, r.warn.Render("Warning: "+msg))
		return
	}
	_, _ = fmt.Fprintln(r.errOut, "Warning: "+msg)
}

// Errorf writes an error line to stderr.
func (r *Renderer) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.styled() {
		_, _ = fmt.Fprintln(r.errOut, r.failure.Render("Error: "+msg))
		return
	}
	_, _ = fmt.Fprintln(r.errOut, "Error: "+msg)
}

// JSON writes v as indented JSON to stdout.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
