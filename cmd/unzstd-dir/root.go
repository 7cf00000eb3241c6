//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"unzstd/cmd/registry"
	"unzstd/pkg/batch"
	"unzstd/pkg/decompress"
	"unzstd/pkg/define"
	myio "unzstd/pkg/io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// summaryFormat is the --summary flag value, validated when parsed.
type summaryFormat string

var _ pflag.Value = (*summaryFormat)(nil)

func (f *summaryFormat) String() string {
	return string(*f)
}

func (f *summaryFormat) Set(v string) error {
	switch v {
	case batch.SummaryText, batch.SummaryJSON:
		*f = summaryFormat(v)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", batch.SummaryText, batch.SummaryJSON)
	}
}

func (f *summaryFormat) Type() string {
	return "format"
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		opts    registry.Options
		summary = summaryFormat(batch.SummaryText)
	)

	rootCmd := &cobra.Command{
		Use:   "unzstd-dir <directory_path>",
		Short: "Decompress every .zst file directly inside a directory",
		Long: "Decompress every .zst file directly inside a directory, writing each next to its " +
			"source with the .zst extension removed. Files that fail are reported and skipped.",
		Version:       define.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: usage: unzstd-dir <directory_path>", registry.ErrUsage)
			}
			return nil
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return registry.Setup(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := myio.NewDir(args[0])
			if !dir.IsDir() {
				return fmt.Errorf("%w: not a directory: %q", registry.ErrPath, dir.GetPath())
			}

			d, err := registry.NewDecompressor(opts)
			if err != nil {
				return err
			}

			s, err := batch.Run(dir.GetPath(), d, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("%w: %w", registry.ErrPath, err)
			}
			// Per-file failures are in the summary and the log, they do not
			// change the exit status.
			return batch.WriteSummary(cmd.OutOrStdout(), s, summary.String())
		},
	}
	rootCmd.SetOut(stdout)

	flags := rootCmd.Flags()
	flags.StringVar(&opts.Codec, registry.CodecFlag, decompress.DefaultCodec, "zstd implementation to decode with, cgo or go")
	flags.StringVar(&opts.MaxSize, registry.MaxSizeFlag, registry.DefaultMaxSize, "largest declared decompressed size to accept, 0 for no limit")
	flags.Var(&summary, registry.SummaryFlag, "summary printed after the batch, text or json")
	flags.StringVar(&opts.LogLevel, registry.LogLevelFlag, registry.DefaultLogLevel, "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.LogOut, registry.LogOutFlag, define.LogOutConsole, "where to write the log, console or file")
	flags.StringVar(&opts.LogFile, registry.LogFileFlag, define.LogFileName, "log file used when --log-out is file")

	return rootCmd
}
