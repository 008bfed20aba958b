// Package config loads scan descriptions from YAML files.
//
//	# scan.yaml
//	path: ~/.minecraft/journeymap/data/mp/MyServer
//	mode: block
//	target: minecraft:diamond_ore
//	ext: .mca
//
// Relative paths are resolved against the directory holding the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mcscan/biomefind/match"
	"github.com/mcscan/biomefind/scan"
)

var ErrInvalid = errors.New("invalid scan config")

type Scan struct {
	Path string     `yaml:"path"`
	Mode match.Mode `yaml:"mode"`
	Name string     `yaml:"target"`
	Ext  string     `yaml:"ext"`
}

// Parse decodes a scan description, rejecting unknown fields, and fills in
// defaults.
func Parse(data []byte) (*Scan, error) {
	s := &Scan{Mode: match.Biome, Ext: scan.DefaultExt}
	if err := yaml.UnmarshalWithOptions(data, s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, yaml.FormatError(err, false, true))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the scan description in file.
func Load(file string) (*Scan, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	s, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	s.Path = expandHome(s.Path)
	if !filepath.IsAbs(s.Path) {
		s.Path = filepath.Join(filepath.Dir(file), s.Path)
	}
	return s, nil
}

func (s *Scan) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("%w: path is required", ErrInvalid)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: target is required", ErrInvalid)
	}
	if !strings.HasPrefix(s.Ext, ".") {
		return fmt.Errorf("%w: ext %q must start with a dot", ErrInvalid, s.Ext)
	}
	return nil
}

func (s *Scan) Target() match.Target {
	return match.Target{Mode: s.Mode, Name: s.Name}
}

// Scanner returns a scanner for the description reporting to rep.
func (s *Scan) Scanner(rep scan.Reporter) *scan.Scanner {
	sc := scan.New(s.Path, s.Target(), rep)
	sc.Ext = s.Ext
	return sc
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
