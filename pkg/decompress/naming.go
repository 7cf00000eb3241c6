//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"unzstd/pkg/io"
)

// Naming derives the destination path from the compressed source path.
type Naming func(src string) string

// ReplaceSuffix replaces the extension of the source, whatever it is, with suffix.
// "archive.txt.zst" becomes "archive.txt.zstd" for ReplaceSuffix(".zstd").
func ReplaceSuffix(suffix string) Naming {
	return func(src string) string {
		return io.NewFile(src).ReplaceExt(suffix).GetPath()
	}
}

// StripSuffix drops the extension: "a.zst" becomes "a".
func StripSuffix(src string) string {
	return io.NewFile(src).StripExt().GetPath()
}
