//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build cgo

package decompress_test

import (
	"bytes"
	"testing"

	"unzstd/pkg/decompress"

	"github.com/DataDog/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCgoCodecIsDefault(t *testing.T) {
	assert.Equal(t, decompress.CodecCgo, decompress.DefaultCodec)
}

func TestCgoCodecLibzstdFrames(t *testing.T) {
	in := bytes.Repeat([]byte("libzstd frame "), 4096)

	compressed, err := zstd.Compress(nil, in)
	require.NoError(t, err)

	for _, name := range []string{decompress.CodecCgo, decompress.CodecGo} {
		t.Run(name, func(t *testing.T) {
			codec, err := decompress.NewCodec(name)
			require.NoError(t, err)

			out, err := decompress.New(codec, 0).Bytes(compressed)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestCgoCodecTooSmallDestination(t *testing.T) {
	compressed, err := zstd.Compress(nil, []byte("hello"))
	require.NoError(t, err)

	codec, err := decompress.NewCodec(decompress.CodecCgo)
	require.NoError(t, err)

	dst := make([]byte, 3)
	_, err = codec.DecompressInto(dst, compressed)
	require.ErrorIs(t, err, decompress.ErrDecode)
	var de *decompress.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, decompress.CodecCgo, de.Codec)
	assert.NotEmpty(t, de.Name)
}
