package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wippyai/llvm-bitcode/bitcode"
	"github.com/wippyai/llvm-bitcode/source"
)

func wrapCmd(g *globals) *cli.Command {
	var (
		output string
		xz     bool
	)

	return &cli.Command{
		Name:      "wrap",
		Usage:     "Wrap a bare bitstream in a Bitcode Wrapper header",
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
				Name:        "xz",
				Usage:       "xz compress the output",
				Destination: &xz,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("wrap: expected exactly one file")
			}
			src, err := g.open(c.Args().First())
			if err != nil {
				return err
			}
			defer src.Close()

			if hasWrapperMagic(src.Bytes()) {
				return fmt.Errorf("wrap: %s already has a wrapper header", src.Path())
			}

			data, err := bitcode.EncodeWrapper(src.Bytes())
			if err != nil {
				return err
			}
			if xz {
				if data, err = source.CompressXZ(data); err != nil {
					return err
				}
			}
			if err := writeOutput(c.Root().Writer, output, data); err != nil {
				return err
			}
			g.logger.Info("wrapped bitstream",
				zap.String("input", src.Path()),
				zap.String("output", output),
				zap.Int("bytes", len(data)),
			)
			return nil
		},
	}
}

// hasWrapperMagic checks only the magic, so a wrapper with a bad header is
// still recognized.
func hasWrapperMagic(data []byte) bool {
	return len(data) >= bitcode.MagicSize && binary.LittleEndian.Uint32(data) == bitcode.WrapperMagic
}
