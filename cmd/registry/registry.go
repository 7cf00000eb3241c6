//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"os"

	"unzstd/pkg/decompress"
	"unzstd/pkg/define"
	mylog "unzstd/pkg/log"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
)

// Options are the flags shared by every entrypoint.
type Options struct {
	Codec    string
	MaxSize  string
	LogLevel string
	LogOut   string
	LogFile  string
}

// NotifyAndExit logs err, if any, and exits with 1 on error and 0 otherwise.
func NotifyAndExit(err error) {
	retCode := 0
	if err != nil {
		retCode = 1
		logrus.Error(err.Error())
	}
	logrus.Exit(retCode)
}

func Setup(opts Options) error {
	if err := mylog.Setup(mylog.Options{
		Level: opts.LogLevel,
		Out:   opts.LogOut,
		File:  opts.LogFile,
	}); err != nil {
		return fmt.Errorf("set logger error: %w", err)
	}
	showLogHeader()
	return nil
}

func showLogHeader() {
	logrus.Debugf("CMDLINE: %q", os.Args)
	logrus.Debugf("UNZSTD VERSION: %s", define.Version())
	logrus.Debugf("UNZSTD PID: %d, PPID: %d", os.Getpid(), os.Getppid())
}

// NewDecompressor builds the decompressor selected by opts. A max size of 0
// leaves only the host memory as the limit.
func NewDecompressor(opts Options) (*decompress.Decompressor, error) {
	codec, err := decompress.NewCodec(opts.Codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	limit := uint64(define.DefaultMaxSize.ToBytes())
	if opts.MaxSize != "" {
		n, err := units.RAMInBytes(opts.MaxSize)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid --%s %q", ErrUsage, MaxSizeFlag, opts.MaxSize)
		}
		limit = uint64(n)
	}

	logrus.Debugf("Codec: %s, max declared size: %s", codec.Name(), units.BytesSize(float64(limit)))
	return decompress.New(codec, limit), nil
}
