package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcscan/biomefind/codec"
	"github.com/mcscan/biomefind/column"
	"github.com/mcscan/biomefind/ir"
	"github.com/mcscan/biomefind/match"
)

// DefaultExt is the extension of region container files.
const DefaultExt = ".mca"

var (
	ErrAborted    = errors.New("scan aborted")
	ErrNotDir     = errors.New("path is not a folder")
	ErrAlreadyRun = errors.New("scanner already run")
)

type State int

const (
	Idle State = iota
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Aborted:
		return "Aborted"
	default:
		return "<unknown state>"
	}
}

// Container is an open region: a grid of optionally present cells.
type Container interface {
	HasCell(x, z int) bool
	ReadCell(x, z int) ([]byte, error)
	Close() error
}

// Finding is one column whose target field equals the searched name.
type Finding struct {
	File  string
	X, Z  int
	Key   string
	Found string
}

type Summary struct {
	Files    int
	Cells    int
	Columns  int
	Missing  int
	Findings int
}

// AbortError carries the cause of a failed scan and where it happened.
// Cell is meaningful when InCell is set, Key when it is non-empty.
type AbortError struct {
	File   string
	X, Z   int
	InCell bool
	Key    string
	Err    error
}

func (e *AbortError) Error() string {
	buf := &strings.Builder{}
	buf.WriteString(ErrAborted.Error())
	if e.File != "" {
		buf.WriteString(" in " + e.File)
	}
	if e.InCell {
		fmt.Fprintf(buf, " cell (%d,%d)", e.X, e.Z)
	}
	if e.Key != "" {
		fmt.Fprintf(buf, " column %q", e.Key)
	}
	buf.WriteString(": " + e.Err.Error())
	return buf.String()
}

func (e *AbortError) Is(target error) bool {
	return target == ErrAborted
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// Scanner searches every region file under Root for columns matching
// Target.  A Scanner runs once.
type Scanner struct {
	Root   string
	Ext    string
	Target match.Target

	Open     func(path string) (Container, error)
	Decode   func(data []byte) (*ir.Node, error)
	Reporter Reporter
	Log      *slog.Logger

	state   State
	summary Summary
}

func New(root string, target match.Target, rep Reporter) *Scanner {
	s := &Scanner{
		Root:     root,
		Target:   target,
		Reporter: rep,
	}
	s.defaults()
	return s
}

func (s *Scanner) defaults() {
	if s.Ext == "" {
		s.Ext = DefaultExt
	}
	if s.Open == nil {
		s.Open = func(path string) (Container, error) {
			return codec.Open(path)
		}
	}
	if s.Decode == nil {
		s.Decode = codec.DecodeTree
	}
	if s.Reporter == nil {
		s.Reporter = Discard
	}
	if s.Log == nil {
		s.Log = slog.New(slog.DiscardHandler)
	}
}

func (s *Scanner) State() State {
	return s.state
}

// Run performs the scan.  Any fatal condition stops the scan immediately
// and is returned as an *AbortError; the summary covers the work done up to
// that point.
func (s *Scanner) Run() (*Summary, error) {
	if s.state != Idle {
		return nil, ErrAlreadyRun
	}
	s.defaults()
	s.state = Running
	s.Log.Info("scan started", "root", s.Root, "mode", s.Target.Mode, "target", s.Target.Name)

	err := s.walk()
	if err != nil {
		var ae *AbortError
		if !errors.As(err, &ae) {
			ae = &AbortError{Err: err}
		}
		s.state = Aborted
		s.Log.Error("scan aborted", "err", ae)
		s.Reporter.Aborted(ae)
		return &s.summary, ae
	}
	s.state = Completed
	s.Log.Info("scan completed", "files", s.summary.Files, "findings", s.summary.Findings)
	s.Reporter.Done(&s.summary)
	return &s.summary, nil
}

func (s *Scanner) walk() error {
	fi, err := os.Stat(s.Root)
	if err != nil {
		return &AbortError{File: s.Root, Err: err}
	}
	if !fi.IsDir() {
		return &AbortError{File: s.Root, Err: ErrNotDir}
	}
	return filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &AbortError{File: path, Err: err}
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), s.Ext) {
			return nil
		}
		return s.scanFile(path)
	})
}

func (s *Scanner) scanFile(path string) error {
	s.Reporter.File(path)
	s.Log.Info("scanning", "file", path)
	c, err := s.Open(path)
	if err != nil {
		return &AbortError{File: path, Err: err}
	}
	defer func() {
		if err := c.Close(); err != nil {
			s.Log.Warn("close failed", "file", path, "err", err)
		}
	}()
	s.summary.Files++

	for x := range codec.GridSize {
		for z := range codec.GridSize {
			if !c.HasCell(x, z) {
				continue
			}
			if err := s.scanCell(path, c, x, z); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scanner) scanCell(path string, c Container, x, z int) error {
	abort := func(key string, err error) error {
		return &AbortError{File: path, X: x, Z: z, InCell: true, Key: key, Err: err}
	}
	s.summary.Cells++
	data, err := c.ReadCell(x, z)
	if err != nil {
		return abort("", err)
	}
	root, err := s.Decode(data)
	if err != nil {
		return abort("", err)
	}
	for e := range column.Columns(root) {
		if e.Err != nil {
			return abort(e.Key, e.Err)
		}
		s.summary.Columns++
		res := match.Match(e.Value, s.Target)
		if res.Fatal() {
			return abort(e.Key, res.Err())
		}
		switch res.Kind {
		case match.Matched:
			s.summary.Findings++
			s.Reporter.Finding(Finding{File: path, X: x, Z: z, Key: e.Key, Found: res.Found})
		case match.MissingKey:
			s.summary.Missing++
			s.Log.Debug("missing key", "file", path, "x", x, "z", z, "column", e.Key, "field", res.Field)
		}
	}
	return nil
}
