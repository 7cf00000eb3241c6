//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build cgo

package decompress

import (
	"github.com/DataDog/zstd"
)

const DefaultCodec = CodecCgo

type cgoCodec struct{}

func newCgoCodec() (Codec, error) {
	return cgoCodec{}, nil
}

func (cgoCodec) Name() string {
	return CodecCgo
}

func (cgoCodec) DecompressInto(dst, src []byte) (int, error) {
	// DataDog/zstd indexes dst[0] and src[0].
	if len(dst) == 0 || len(src) == 0 {
		return goCodec{}.DecompressInto(dst, src)
	}

	n, err := zstd.DecompressInto(dst, src)
	if err != nil {
		return n, &DecodeError{Codec: CodecCgo, Name: err.Error(), Err: err}
	}
	if n != len(dst) {
		return n, &DecodeError{
			Codec: CodecCgo,
			Name:  sizeMismatch(n, len(dst)),
		}
	}
	return n, nil
}
