//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

type goCodec struct{}

func (goCodec) Name() string {
	return CodecGo
}

func (goCodec) DecompressInto(dst, src []byte) (int, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return 0, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(src, dst[:0])
	if err != nil {
		return len(out), &DecodeError{Codec: CodecGo, Name: err.Error(), Err: err}
	}
	if len(out) != len(dst) {
		return len(out), &DecodeError{
			Codec: CodecGo,
			Name:  sizeMismatch(len(out), len(dst)),
		}
	}
	return len(out), nil
}

func sizeMismatch(got, want int) string {
	return fmt.Sprintf("decoded %d bytes, frame header declared %d", got, want)
}
