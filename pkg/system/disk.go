//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package system

import (
	"fmt"

	"github.com/containers/common/pkg/strongunits"
	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v3/disk"
)

// CheckFreeDisk returns an error if the filesystem holding dir has less than
// size bytes available.
func CheckFreeDisk(dir string, size strongunits.B) error {
	usage, err := disk.Usage(dir)
	if err != nil {
		return fmt.Errorf("failed to get disk usage of %s: %w", dir, err)
	}
	if free := strongunits.B(usage.Free); free < size {
		return fmt.Errorf("not enough space in %s: need %s, %s available",
			dir, units.BytesSize(float64(size)), units.BytesSize(float64(free)))
	}
	return nil
}
