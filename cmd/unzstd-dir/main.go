//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"

	"unzstd/cmd/registry"
)

func main() {
	rootCmd := newRootCmd(os.Stdout)
	registry.NotifyAndExit(rootCmd.ExecuteContext(context.Background()))
}
