//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package log

import (
	"fmt"
	"os"

	"unzstd/pkg/define"
	"unzstd/pkg/io"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Level is a logrus level name, "info" when empty.
	Level string
	// Out is define.LogOutConsole or define.LogOutFile.
	Out string
	// File is the log file used when Out is define.LogOutFile.
	File string
}

// Setup configures the global logrus logger. Logs go to stderr unless
// opts.Out is file, in which case they are appended to opts.File.
// Stdout is never redirected, it carries the decompressed content.
func Setup(opts Options) error {
	level := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logrus.SetOutput(os.Stderr)

	switch opts.Out {
	case "", define.LogOutConsole:
		return nil
	case define.LogOutFile:
	default:
		return fmt.Errorf("invalid log output %q, want %q or %q", opts.Out, define.LogOutConsole, define.LogOutFile)
	}

	logFile := io.NewFile(opts.File)
	if opts.File == "" {
		logFile = io.NewFile(define.LogFileName)
	}

	if logFile.IsExist() {
		if err := logFile.DiscardBytesAtBegin(define.LogFileMaxSize); err != nil {
			logrus.Warnf("failed to discard log file: %q", err)
		}
	} else if err := logFile.MakeBaseDir(); err != nil {
		return fmt.Errorf("unable to create dir for %s: %w", logFile.GetPath(), err)
	}

	fd, err := os.OpenFile(logFile.GetPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, define.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	logrus.SetOutput(fd)
	return nil
}
