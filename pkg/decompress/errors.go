//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"errors"
	"fmt"
)

var (
	ErrRead        = errors.New("read error")
	ErrUnknownSize = errors.New("unknown decompressed size")
	ErrTooLarge    = errors.New("declared decompressed size too large")
	ErrDecode      = errors.New("zstd decompress error")
	ErrWrite       = errors.New("write error")
)

// DecodeError is returned when the codec rejects a frame. Name is the
// codec's own diagnostic, e.g. "Src size is incorrect" from libzstd.
type DecodeError struct {
	Codec string
	Name  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s (%s codec): %s", ErrDecode, e.Codec, e.Name)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode //nolint:errorlint
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
