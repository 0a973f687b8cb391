// Package ui renders status lines and human-readable chart reports.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/meishiki/internal/roster"
)

// Printer writes styled status lines. Machine-readable output never goes
// through it.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Info prints a de-emphasized line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, styleInfo.Render(msg))
}

// Success prints a completion line.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, styleSuccess.Render(iconDone+" "+msg))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, styleWarn.Render(iconWarn+" "+msg))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, styleError.Render("error: ")+msg)
}

// Watching announces that path is being watched for changes.
func (p *Printer) Watching(path string) {
	fmt.Fprintln(p.w, styleHeading.Render(iconWatch+" watching ")+path+styleInfo.Render(" (ctrl-c to stop)"))
}

// RosterResult summarises a roster load.
func (p *Printer) RosterResult(path string, people int, errs []roster.ValidationError) {
	if len(errs) == 0 {
		p.Success(fmt.Sprintf("roster %s: %d person(s)", path, people))
		return
	}
	fmt.Fprintln(p.w, styleError.Render(fmt.Sprintf("%s roster %s: %d error(s)", iconFail, path, len(errs))))
	for _, e := range errs {
		fmt.Fprintln(p.w, "  "+styleError.Render("•")+" "+e.Error())
	}
}
