//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ContentSize returns the decompressed size declared by the header of the
// first frame in src. A skippable first frame declares 0. Frames that omit
// the size and anything that is not a zstd frame header yield ErrUnknownSize.
func ContentSize(src []byte) (uint64, error) {
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownSize, err)
	}
	if h.Skippable {
		return 0, nil
	}
	if !h.HasFCS {
		return 0, fmt.Errorf("%w: %w", ErrUnknownSize, errors.New("frame header has no content size"))
	}
	return h.FrameContentSize, nil
}
