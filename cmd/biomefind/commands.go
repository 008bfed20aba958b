package main

import (
	"github.com/scott-cotton/cli"

	"github.com/mcscan/biomefind/match"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "biomefind").
		WithSynopsis("biomefind [opts] command [opts]").
		WithDescription("biomefind searches map region files for biomes and blocks.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return biomefindMain(cfg, cc, args)
		}).
		WithSubs(
			FindCommand(cfg, match.Biome),
			FindCommand(cfg, match.Block),
			ScanCommand(cfg),
			DumpCommand(cfg))
}

// FindCommand returns the biome or block search command.
func FindCommand(mainCfg *MainConfig, mode match.Mode) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg, Mode: mode, Ext: ".mca"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	var name, alias, field string
	switch mode {
	case match.Block:
		name, alias, field = "block", "bl", match.BlockField+"."+match.BlockNameField
	default:
		name, alias, field = "biome", "bi", match.BiomeNameField
	}
	return cli.NewCommandAt(&cfg.Find, name).
		WithAliases(alias).
		WithSynopsis(name + " [-ext .mca] [-v] <" + name + "_name> <path>").
		WithDescription("search all region files under path for columns whose " +
			field + " is " + name + "_name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func ScanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Scan, "scan").
		WithAliases("s").
		WithSynopsis("scan [-v] <scan.yaml>").
		WithDescription(scanDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return scanFile(cfg, cc, args)
		})
}

const scanDescription = `scan runs a search described by a YAML file:

  path: ~/.minecraft/journeymap/data/mp/MyServer
  mode: block                # biome (default) or block
  target: minecraft:diamond_ore
  ext: .mca                  # default .mca

A relative path is taken relative to the directory holding the file.`

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-x X -z Z] <region files>").
		WithDescription("print the decoded trees of all present cells, or of cell (X,Z)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
