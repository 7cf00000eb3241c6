//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package io_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"unzstd/pkg/io"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	tests := map[string]string{
		"a.zst":           ".zst",
		"dir/a.tar.zstd":  ".zstd",
		"noext":           "",
		".zst":            "",
		"dir/.hidden.zst": ".zst",
		"..":              "",
		".":               "",
	}

	for path, want := range tests {
		assert.Equal(t, want, io.NewFile(path).Ext(), path)
	}
}

func TestExistAndKind(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, io.NewFile(file).IsExist())
	assert.True(t, io.NewFile(file).IsRegular())
	assert.False(t, io.NewFile(file).IsDir())

	assert.True(t, io.NewDir(tmp).IsDir())
	assert.False(t, io.NewDir(tmp).IsRegular())

	missing := io.NewFile(filepath.Join(tmp, "missing"))
	assert.False(t, missing.IsExist())
	assert.False(t, missing.IsDir())
	assert.False(t, missing.IsRegular())
}

func TestRead(t *testing.T) {
	tmp := t.TempDir()
	f := io.NewDir(tmp).AppendFile("data.zst")
	require.NoError(t, os.WriteFile(f.GetPath(), []byte{0x28, 0xb5, 0x2f, 0xfd}, 0644))

	b, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, b)

	empty := io.NewDir(tmp).AppendFile("empty.zst")
	require.NoError(t, os.WriteFile(empty.GetPath(), nil, 0644))
	b, err = empty.Read()
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestReadErrors(t *testing.T) {
	tmp := t.TempDir()

	_, err := io.NewDir(tmp).Read()
	require.Error(t, err)

	// a directory behind a file wrapper is caught by stat
	_, err = io.NewFile(tmp).Read()
	require.ErrorContains(t, err, "not a regular file")

	_, err = io.NewFile(filepath.Join(tmp, "missing.zst")).Read()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscardBytesAtBegin(t *testing.T) {
	tmp := t.TempDir()
	f := io.NewDir(tmp).AppendFile("big.log")

	head := bytes.Repeat([]byte{'h'}, 512*1024)
	tail := bytes.Repeat([]byte{'t'}, 1024*1024)
	require.NoError(t, os.WriteFile(f.GetPath(), append(head, tail...), 0644))

	require.NoError(t, f.DiscardBytesAtBegin(1))

	b, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, tail, b)
}

func TestDiscardBytesAtBeginSmallFile(t *testing.T) {
	f := io.NewFile(filepath.Join(t.TempDir(), "small.log"))
	require.NoError(t, os.WriteFile(f.GetPath(), []byte("keep"), 0644))

	require.NoError(t, f.DiscardBytesAtBegin(1))

	b, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "keep", string(b))
}

func TestMakeBaseDir(t *testing.T) {
	f := io.NewFile(filepath.Join(t.TempDir(), "a", "b", "c.log"))
	require.NoError(t, f.MakeBaseDir())
	assert.DirExists(t, filepath.Dir(f.GetPath()))
}
