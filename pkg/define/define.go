//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

import (
	"os"

	"github.com/containers/common/pkg/strongunits"
)

const (
	ZstSuffix  = ".zst"
	ZstdSuffix = ".zstd"

	LogFileName = "unzstd.log"
)

const (
	LogOutFile    = "file"
	LogOutConsole = "console"
)

var (
	GitCommit string
)

var (
	DefaultFilePerm os.FileMode = 0644
	// DefaultMaxSize bounds the declared content size a frame may ask us to allocate.
	DefaultMaxSize strongunits.GiB = 4
	// LogFileMaxSize is the size after which the head of the log file is discarded.
	LogFileMaxSize strongunits.MiB = 5
)

// Version returns the build commit, "unknown" when not stamped at link time.
func Version() string {
	if GitCommit == "" {
		return "unknown"
	}
	return GitCommit
}
