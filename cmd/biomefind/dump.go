package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/mcscan/biomefind/codec"
	"github.com/mcscan/biomefind/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires at least one region file", cli.ErrUsage)
	}
	var cell *[2]int
	xSet, zSet := optSet(cfg.Dump, "x"), optSet(cfg.Dump, "z")
	switch {
	case xSet != zSet:
		return fmt.Errorf("%w: -x and -z must be given together", cli.ErrUsage)
	case xSet:
		if cfg.X < 0 || cfg.X >= codec.GridSize || cfg.Z < 0 || cfg.Z >= codec.GridSize {
			return fmt.Errorf("%w: cell (%d,%d) outside the %dx%d grid", cli.ErrUsage, cfg.X, cfg.Z, codec.GridSize, codec.GridSize)
		}
		cell = &[2]int{cfg.X, cfg.Z}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range args {
		if err := dumpRegion(cc.Out, file, cell, opts...); err != nil {
			return err
		}
	}
	return nil
}

// dumpRegion prints each present cell of file, or only cell when it is
// non-nil, as a header line followed by the decoded tree.
func dumpRegion(w io.Writer, file string, cell *[2]int, opts ...encode.EncodeOption) error {
	r, err := codec.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	if cell != nil {
		if !r.HasCell(cell[0], cell[1]) {
			return fmt.Errorf("%s: cell (%d,%d) not present", file, cell[0], cell[1])
		}
		return dumpCell(w, r, cell[0], cell[1], opts...)
	}
	for x := range codec.GridSize {
		for z := range codec.GridSize {
			if !r.HasCell(x, z) {
				continue
			}
			if err := dumpCell(w, r, x, z, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpCell(w io.Writer, r *codec.Region, x, z int, opts ...encode.EncodeOption) error {
	data, err := r.ReadCell(x, z)
	if err != nil {
		return fmt.Errorf("%s cell (%d,%d): %w", r.Path(), x, z, err)
	}
	root, err := codec.DecodeTree(data)
	if err != nil {
		return fmt.Errorf("%s cell (%d,%d): %w", r.Path(), x, z, err)
	}
	if _, err := fmt.Fprintf(w, "# %s cell (%d,%d)\n", r.Path(), x, z); err != nil {
		return err
	}
	return encode.Encode(root, w, opts...)
}
