//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package io

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/containers/common/pkg/strongunits"
	"github.com/sirupsen/logrus"
)

type PathWrapper struct {
	path  string
	isDir bool
}

func NewFile(f string) *PathWrapper {
	fileWp := PathWrapper{
		path:  f,
		isDir: false,
	}
	return &fileWp
}

func NewDir(d string) *PathWrapper {
	dirWp := PathWrapper{
		path:  d,
		isDir: true,
	}
	return &dirWp
}

func (m *PathWrapper) GetPath() string {
	return m.path
}

func (m *PathWrapper) IsExist() bool {
	_, err := os.Stat(m.path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return false
	}
	return true
}

// IsDir reports whether the path exists and is a directory, following symlinks.
func (m *PathWrapper) IsDir() bool {
	fi, err := os.Stat(m.path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// IsRegular reports whether the path exists and is a regular file, following symlinks.
func (m *PathWrapper) IsRegular() bool {
	fi, err := os.Stat(m.path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// Ext returns the extension of the file name, including the dot.
// A name made only of a leading dot and a suffix (".zst") has no extension,
// and neither do "." and "..".
func (m *PathWrapper) Ext() string {
	base := filepath.Base(m.path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// StripExt returns a file wrapper for the same path without its extension.
func (m *PathWrapper) StripExt() *PathWrapper {
	return NewFile(strings.TrimSuffix(m.path, m.Ext()))
}

// ReplaceExt returns a file wrapper whose extension is replaced by ext.
// A path without an extension gets ext appended.
func (m *PathWrapper) ReplaceExt(ext string) *PathWrapper {
	return NewFile(m.StripExt().path + ext)
}

// Read the contents of a given file and return in []bytes.
// The file must be a regular file and is read to the size reported by stat;
// a file that shrinks while being read is a short read.
func (m *PathWrapper) Read() ([]byte, error) {
	if m.isDir {
		return nil, fmt.Errorf("can not read content from directory %s", m.path)
	}

	f, err := os.Open(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", m.path, err)
	}
	defer f.Close() //nolint:errcheck

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", m.path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", m.path)
	}

	buf := make([]byte, fi.Size())
	if _, err = io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", m.path, err)
	}
	return buf, nil
}

// DiscardBytesAtBegin discards the head of the file so that at most n MiB remain.
func (m *PathWrapper) DiscardBytesAtBegin(n strongunits.MiB) error {
	fileInfo, err := os.Stat(m.path)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	keep := int64(n.ToBytes())
	if fileInfo.Size() <= keep {
		return nil
	}

	file, err := os.Open(m.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", m.path, err)
	}
	defer file.Close() //nolint:errcheck

	if _, err = file.Seek(fileInfo.Size()-keep, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek %s: %w", m.path, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(m.path), "trimmed-"+filepath.Base(m.path))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close() //nolint:errcheck

	if _, err = io.Copy(tempFile, file); err != nil {
		_ = os.Remove(tempFile.Name())
		return fmt.Errorf("failed to copy tail of %s: %w", m.path, err)
	}
	_ = file.Close()
	_ = tempFile.Close()

	logrus.Debugf("trimmed %s to the last %d bytes", m.path, keep)
	return os.Rename(tempFile.Name(), m.path) //nolint:wrapcheck
}

func (m *PathWrapper) MakeBaseDir() error {
	err := os.MkdirAll(filepath.Dir(m.GetPath()), os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create base dir: %w", err)
	}
	return nil
}

func (m *PathWrapper) AppendFile(additionalPath string) *PathWrapper {
	return NewFile(filepath.Join(m.path, additionalPath))
}
