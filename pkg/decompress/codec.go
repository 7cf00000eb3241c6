//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"
)

const (
	// CodecCgo decodes with libzstd through github.com/DataDog/zstd.
	CodecCgo = "cgo"
	// CodecGo decodes with github.com/klauspost/compress/zstd.
	CodecGo = "go"
)

// Codec decodes a complete zstd input into dst in one shot. dst is sized to
// the declared content size; decoding more or fewer bytes is an error.
type Codec interface {
	Name() string
	DecompressInto(dst, src []byte) (int, error)
}

// NewCodec returns the codec registered under name. An empty name selects
// DefaultCodec.
func NewCodec(name string) (Codec, error) {
	if name == "" {
		name = DefaultCodec
	}
	switch name {
	case CodecCgo:
		return newCgoCodec()
	case CodecGo:
		return goCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q, want %q or %q", name, CodecCgo, CodecGo)
	}
}
