package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mcscan/biomefind/encode"
	"github.com/mcscan/biomefind/match"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colored reports whether output to w should be colored: -color forces it,
// otherwise it is on for terminals.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if optSet(cfg.Main, "color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.colored(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type FindConfig struct {
	*MainConfig
	Mode match.Mode

	Ext     string `cli:"name=ext desc='region file extension' default=.mca"`
	Verbose bool   `cli:"name=v aliases=verbose desc='report cells and summary counts, log skipped columns'"`

	Find *cli.Command
}

type ScanConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v aliases=verbose desc='report cells and summary counts, log skipped columns'"`

	Scan *cli.Command
}

type DumpConfig struct {
	*MainConfig
	X int `cli:"name=x desc='cell x in the region grid'"`
	Z int `cli:"name=z desc='cell z in the region grid'"`

	Dump *cli.Command
}
