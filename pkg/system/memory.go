//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package system

import (
	"fmt"

	"github.com/containers/common/pkg/strongunits"
	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v3/mem"
)

// CheckMaxMemory gets the total system memory and compares it to size. If size
// is larger than the total memory, it returns an error
func CheckMaxMemory(size strongunits.B) error {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("failed to get system memory: %w", err)
	}
	if total := strongunits.B(memStat.Total); total < size {
		return fmt.Errorf("requested amount of memory (%s) greater than total system memory (%s)",
			units.BytesSize(float64(size)), units.BytesSize(float64(total)))
	}
	return nil
}
