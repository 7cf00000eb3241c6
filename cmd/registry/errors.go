//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import "errors"

// Command line errors, both exit with status 1.
var (
	ErrUsage = errors.New("invalid usage")
	ErrPath  = errors.New("invalid path")
)
