package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mcscan/biomefind/config"
	"github.com/mcscan/biomefind/scan"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <%s_name> <path>", cli.ErrUsage, cfg.Mode)
	}
	if !strings.HasPrefix(cfg.Ext, ".") {
		return fmt.Errorf("%w: extension %q must start with a dot", cli.ErrUsage, cfg.Ext)
	}
	desc := &config.Scan{Path: args[1], Mode: cfg.Mode, Name: args[0], Ext: cfg.Ext}
	return search(cfg.MainConfig, cc.Out, desc, cfg.Verbose)
}

func scanFile(cfg *ScanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scan.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: scan requires one argument, a scan file", cli.ErrUsage)
	}
	desc, err := config.Load(args[0])
	if err != nil {
		return err
	}
	return search(cfg.MainConfig, cc.Out, desc, cfg.Verbose)
}

// search runs the scan described by desc, reporting to w.  An aborted
// scan has already been reported when the exit error is returned.
func search(cfg *MainConfig, w io.Writer, desc *config.Scan, verbose bool) error {
	setVerbose(verbose)
	rep := scan.NewTextReporter(w, desc.Target(), cfg.colored(w), verbose)
	sc := desc.Scanner(rep)
	sc.Log = theLog
	_, err := sc.Run()
	if errors.Is(err, scan.ErrAborted) {
		return cli.ExitCodeErr(1)
	}
	return err
}
