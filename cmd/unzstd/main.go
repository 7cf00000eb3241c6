//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"unzstd/cmd/registry"
	"unzstd/pkg/decompress"
	"unzstd/pkg/define"
	myio "unzstd/pkg/io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout)
	registry.NotifyAndExit(app.Run(context.Background(), os.Args))
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "unzstd",
		Usage:           "Decompress a .zst or .zstd file next to itself and print its content",
		ArgsUsage:       "<file_path>",
		Version:         define.Version(),
		Writer:          stdout,
		HideHelpCommand: true,
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			return ctx, registry.Setup(options(command))
		},
		Action: decompressFile,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    registry.QuietFlag,
				Usage:   "do not echo the decompressed content",
				Aliases: []string{"q"},
			},
			&cli.StringFlag{
				Name:  registry.CodecFlag,
				Usage: "zstd implementation to decode with, cgo or go",
				Value: decompress.DefaultCodec,
			},
			&cli.StringFlag{
				Name:  registry.MaxSizeFlag,
				Usage: "largest declared decompressed size to accept, 0 for no limit",
				Value: registry.DefaultMaxSize,
			},
			&cli.StringFlag{
				Name:  registry.LogLevelFlag,
				Usage: "log level: trace, debug, info, warn, error",
				Value: registry.DefaultLogLevel,
			},
			&cli.StringFlag{
				Name:  registry.LogOutFlag,
				Usage: "where to write the log, console or file",
				Value: define.LogOutConsole,
			},
			&cli.StringFlag{
				Name:  registry.LogFileFlag,
				Usage: "log file used when --log-out is file",
				Value: define.LogFileName,
			},
		},
	}
}

func options(command *cli.Command) registry.Options {
	return registry.Options{
		Codec:    command.String(registry.CodecFlag),
		MaxSize:  command.String(registry.MaxSizeFlag),
		LogLevel: command.String(registry.LogLevelFlag),
		LogOut:   command.String(registry.LogOutFlag),
		LogFile:  command.String(registry.LogFileFlag),
	}
}

func decompressFile(_ context.Context, command *cli.Command) error {
	if command.Args().Len() != 1 {
		return fmt.Errorf("%w: usage: %s <file_path>", registry.ErrUsage, command.Name)
	}

	src := myio.NewFile(command.Args().First())
	if !src.IsExist() {
		return fmt.Errorf("%w: file does not exist: %q", registry.ErrPath, src.GetPath())
	}
	if ext := src.Ext(); ext != define.ZstSuffix && ext != define.ZstdSuffix {
		return fmt.Errorf("%w: the file is neither a %s nor a %s file: %q",
			registry.ErrPath, define.ZstSuffix, define.ZstdSuffix, src.GetPath())
	}

	d, err := registry.NewDecompressor(options(command))
	if err != nil {
		return err
	}

	logrus.Debugf("Decompressing %q", src.GetPath())
	res, err := d.File(src.GetPath(), decompress.ReplaceSuffix(define.ZstdSuffix))
	if err != nil {
		return fmt.Errorf("failed to decompress %q: %w", src.GetPath(), err)
	}

	return decompress.Report(command.Writer, res, !command.Bool(registry.QuietFlag))
}
