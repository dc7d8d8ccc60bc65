// Package output provides consistent CLI output formatting for verification reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/avep-labs/avep/internal/ui"
)

// Probe line icons.
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
	IconInfo = "ℹ"
)

const ruleWidth = 16

// Writer provides formatted output for CLI.
type Writer struct {
	out    io.Writer
	styles ui.Styles
}

// New creates a new output Writer without color.
func New(out io.Writer) *Writer {
	return NewStyled(out, ui.NoColorStyles())
}

// NewStyled creates a Writer that renders with the given styles.
func NewStyled(out io.Writer, styles ui.Styles) *Writer {
	return &Writer{
		out:    out,
		styles: styles,
	}
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Status(icon, msg)
}

// Success prints a summary success message.
func (w *Writer) Success(msg string) {
	w.Status(w.styles.Pass.Render("✅"), msg)
}

// Warning prints a summary warning message.
func (w *Writer) Warning(msg string) {
	w.Status(w.styles.Warn.Render("⚠️ "), msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints a summary error message.
func (w *Writer) Error(msg string) {
	w.Status(w.styles.Fail.Render("❌"), msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Header prints a bold banner followed by a rule.
func (w *Writer) Header(title string) {
	_, _ = fmt.Fprintln(w.out, w.styles.Header.Render(title))
	w.Rule()
}

// Rule prints a horizontal separator.
func (w *Writer) Rule() {
	_, _ = fmt.Fprintln(w.out, w.styles.Rule.Render(strings.Repeat("=", ruleWidth)))
}

// Title announces a check.
func (w *Writer) Title(msg string) {
	w.Status(w.styles.Title.Render(IconPass), msg)
}

// Pass prints an indented pass line.
func (w *Writer) Pass(msg string) {
	w.line(w.styles.Pass.Render(IconPass), msg)
}

// Warn prints an indented warning line.
func (w *Writer) Warn(msg string) {
	w.line(w.styles.Warn.Render(IconWarn), msg)
}

// Fail prints an indented failure line.
func (w *Writer) Fail(msg string) {
	w.line(w.styles.Fail.Render(IconFail), msg)
}

// Info prints an indented informational line.
func (w *Writer) Info(msg string) {
	w.line(w.styles.Info.Render(IconInfo), msg)
}

// Hint prints a muted line under the previous probe line.
func (w *Writer) Hint(msg string) {
	_, _ = fmt.Fprintf(w.out, "    %s\n", w.styles.Hint.Render(msg))
}

// Text prints an unadorned line.
func (w *Writer) Text(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Code prints a block with indentation.
func (w *Writer) Code(content string) {
	for _, line := range strings.Split(content, "\n") {
		_, _ = fmt.Fprintf(w.out, "  %s\n", line)
	}
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

func (w *Writer) line(icon, msg string) {
	_, _ = fmt.Fprintf(w.out, "  %s %s\n", icon, msg)
}
