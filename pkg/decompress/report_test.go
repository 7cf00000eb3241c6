//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress_test

import (
	"bytes"
	"testing"

	"unzstd/pkg/decompress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	res := &decompress.Result{
		Source: "/tmp/x/archive.txt.zst",
		Target: "/tmp/x/archive.txt.zstd",
		Data:   []byte("hello"),
	}

	var buf bytes.Buffer
	require.NoError(t, decompress.Report(&buf, res, true))
	assert.Equal(t, "Decompressed: \"archive.txt.zst\" -> \"archive.txt.zstd\"\n"+
		"----- Content Start -----\n"+
		"hello\n"+
		"----- Content End -----\n", buf.String())

	buf.Reset()
	require.NoError(t, decompress.Report(&buf, res, false))
	assert.Equal(t, "Decompressed: \"archive.txt.zst\" -> \"archive.txt.zstd\"\n", buf.String())
}
