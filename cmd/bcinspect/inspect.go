package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func inspectCmd(g *globals) *cli.Command {
	var (
		format string
		strict bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the container header and payload summary",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format: text, json or yaml",
				Value:       "text",
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit non-zero when the payload cannot be extracted",
				Destination: &strict,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("inspect: expected exactly one file")
			}
			if g.format != "" && !c.IsSet("format") {
				format = g.format
			}

			src, err := g.open(c.Args().First())
			if err != nil {
				return err
			}
			defer src.Close()

			f, err := src.Parse()
			if err != nil {
				return err
			}

			report := buildReport(src, f)
			out := c.Root().Writer
			if err := writeReport(out, report, format, isTerminal(out)); err != nil {
				return err
			}
			if strict && report.Error != "" {
				return errors.New(report.Error)
			}
			return nil
		},
	}
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
