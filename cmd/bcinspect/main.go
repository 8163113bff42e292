// Command bcinspect is a command-line front end for LLVM bitcode containers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wippyai/llvm-bitcode/bitcode"
	"github.com/wippyai/llvm-bitcode/source"
)

// globals holds settings shared by every subcommand after config and flags
// are merged.
type globals struct {
	logger     *zap.Logger
	configPath string
	logLevel   string
	format     string
	decompress bool
	mmap       bool
}

func newApp() *cli.Command {
	g := &globals{}

	return &cli.Command{
		Name:  "bcinspect",
		Usage: "Inspect LLVM bitcode containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config file",
				Value:       configPath(),
				Destination: &g.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "warn",
				Destination: &g.logLevel,
			},
			&cli.BoolFlag{
				Name:        "decompress",
				Usage:       "transparently decompress xz inputs",
				Value:       true,
				Destination: &g.decompress,
			},
			&cli.BoolFlag{
				Name:        "mmap",
				Usage:       "memory map input files",
				Value:       true,
				Destination: &g.mmap,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := LoadConfig(g.configPath)
			if err != nil {
				return ctx, err
			}
			applyConfig(c, cfg, g)

			l, err := newLogger(g.logLevel)
			if err != nil {
				return ctx, err
			}
			g.logger = l
			bitcode.SetLogger(l)
			source.SetLogger(l)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			inspectCmd(g),
			extractCmd(g),
			wrapCmd(g),
			viewCmd(g),
		},
	}
}

func (g *globals) open(path string) (*source.Source, error) {
	return source.Open(path,
		source.WithDecompress(g.decompress),
		source.WithMmap(g.mmap),
	)
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
