//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

const (
	CodecFlag    = "codec"
	MaxSizeFlag  = "max-size"
	QuietFlag    = "quiet"
	SummaryFlag  = "summary"
	LogLevelFlag = "log-level"
	LogOutFlag   = "log-out"
	LogFileFlag  = "log-file"
)

const (
	DefaultLogLevel = "info"
	DefaultMaxSize  = "4GiB"
)
