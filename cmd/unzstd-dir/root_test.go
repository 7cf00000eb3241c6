//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"unzstd/cmd/registry"
	"unzstd/pkg/batch"
	"unzstd/tests/fixtures"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	rootCmd := newRootCmd(&stdout)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDecompressDir(t *testing.T) {
	tmp := t.TempDir()
	fixtures.CopyZstd(t, tmp, "a.zst")
	fixtures.CopyZstd(t, tmp, "notes.txt")

	out, err := run(t, tmp)
	require.NoError(t, err)
	assert.Equal(t, "Decompressed: \"a.zst\" -> \"a\"\n", out)

	b, err := os.ReadFile(filepath.Join(tmp, "a"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))
	assert.NoFileExists(t, filepath.Join(tmp, "notes"))
}

func TestDecompressDirFailuresKeepExitZero(t *testing.T) {
	tmp := t.TempDir()
	fixtures.CopyZstd(t, tmp, "garbage.zst")
	fixtures.CopyZstd(t, tmp, "a.zst")

	out, err := run(t, "--summary", "json", tmp)
	require.NoError(t, err)

	var s batch.Summary
	require.NoError(t, json.Unmarshal([]byte(out[strings.Index(out, "{"):]), &s))
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Succeeded)
	assert.Equal(t, 1, s.Failed)
	assert.FileExists(t, filepath.Join(tmp, "a"))
}

func TestDecompressDirErrors(t *testing.T) {
	tmp := t.TempDir()
	file := fixtures.CopyZstd(t, tmp, "a.zst")

	_, err := run(t)
	require.ErrorIs(t, err, registry.ErrUsage)

	_, err = run(t, tmp, tmp)
	require.ErrorIs(t, err, registry.ErrUsage)

	_, err = run(t, file)
	require.ErrorIs(t, err, registry.ErrPath)
	assert.NoFileExists(t, filepath.Join(tmp, "a"))

	_, err = run(t, filepath.Join(tmp, "missing"))
	require.ErrorIs(t, err, registry.ErrPath)

	_, err = run(t, "--summary", "xml", tmp)
	require.Error(t, err)
}
