package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func extractCmd(g *globals) *cli.Command {
	var (
		output string
		force  bool
	)

	return &cli.Command{
		Name:      "extract",
		Usage:     "Write the embedded bitstream payload to a file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output path, - for stdout",
				Value:       "-",
				Destination: &output,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "attempt extraction even when the header range is invalid",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("extract: expected exactly one file")
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
			if w, ok := f.Wrapper(); ok && !w.IsSizeValid() && !force {
				return fmt.Errorf("extract: wrapper range offset=%d size=%d does not fit %d bytes (use --force to try anyway)",
					w.Offset, w.Size, w.Length())
			}

			data, err := f.Bitstream()
			if err != nil {
				return err
			}
			if err := writeOutput(c.Root().Writer, output, data); err != nil {
				return err
			}
			g.logger.Info("extracted bitstream",
				zap.String("input", src.Path()),
				zap.String("output", output),
				zap.Int("bytes", len(data)),
			)
			return nil
		},
	}
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
