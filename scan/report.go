package scan

import (
	"io"

	"github.com/fatih/color"

	"github.com/mcscan/biomefind/match"
)

// Reporter receives the progress of a scan in order: File for each region
// file, Finding for each match, and finally exactly one of Done or Aborted.
type Reporter interface {
	File(path string)
	Finding(f Finding)
	Done(sum *Summary)
	Aborted(err *AbortError)
}

type discard struct{}

func (discard) File(string)         {}
func (discard) Finding(Finding)     {}
func (discard) Done(*Summary)       {}
func (discard) Aborted(*AbortError) {}

// Discard is a Reporter that ignores everything.
var Discard Reporter = discard{}

// TextReporter writes one human readable line per event.
type TextReporter struct {
	w       io.Writer
	target  match.Target
	verbose bool

	file, found, done, abort *color.Color
}

func NewTextReporter(w io.Writer, target match.Target, colored, verbose bool) *TextReporter {
	r := &TextReporter{
		w:       w,
		target:  target,
		verbose: verbose,
		file:    color.New(color.Faint),
		found:   color.New(color.FgGreen, color.Bold),
		done:    color.New(color.FgCyan),
		abort:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.file, r.found, r.done, r.abort} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *TextReporter) File(path string) {
	r.file.Fprintln(r.w, path)
}

func (r *TextReporter) Finding(f Finding) {
	if r.verbose {
		r.found.Fprintf(r.w, "Found %s at (X,Z) %s in %s cell (%d,%d)\n", r.target, f.Key, f.File, f.X, f.Z)
		return
	}
	r.found.Fprintf(r.w, "Found %s at (X,Z) %s\n", r.target, f.Key)
}

func (r *TextReporter) Done(sum *Summary) {
	if r.verbose {
		r.done.Fprintf(r.w, "Finished searching folder (%d files, %d cells, %d columns, %d without %s data, %d findings)\n",
			sum.Files, sum.Cells, sum.Columns, sum.Missing, r.target.Mode, sum.Findings)
		return
	}
	r.done.Fprintf(r.w, "Finished searching folder (%d files, %d findings)\n", sum.Files, sum.Findings)
}

func (r *TextReporter) Aborted(err *AbortError) {
	r.abort.Fprintln(r.w, "Aborted:", err.Error())
}

// Funcs adapts plain functions to a Reporter; nil fields are skipped.
type Funcs struct {
	OnFile    func(path string)
	OnFinding func(f Finding)
	OnDone    func(sum *Summary)
	OnAborted func(err *AbortError)
}

func (f Funcs) File(path string) {
	if f.OnFile != nil {
		f.OnFile(path)
	}
}

func (f Funcs) Finding(fd Finding) {
	if f.OnFinding != nil {
		f.OnFinding(fd)
	}
}

func (f Funcs) Done(sum *Summary) {
	if f.OnDone != nil {
		f.OnDone(sum)
	}
}

func (f Funcs) Aborted(err *AbortError) {
	if f.OnAborted != nil {
		f.OnAborted(err)
	}
}
