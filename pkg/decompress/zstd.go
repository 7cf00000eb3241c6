//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"unzstd/pkg/define"
	myio "unzstd/pkg/io"
	"unzstd/pkg/system"

	"github.com/containers/common/pkg/strongunits"
	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
)

type Decompressor struct {
	codec Codec
	// maxSize is the largest declared content size accepted, 0 means no limit
	// other than the host memory.
	maxSize uint64
}

// Result describes one decompressed file.
type Result struct {
	Source string
	Target string
	Data   []byte
}

func New(codec Codec, maxSize uint64) *Decompressor {
	return &Decompressor{
		codec:   codec,
		maxSize: maxSize,
	}
}

// Default returns a Decompressor using DefaultCodec and define.DefaultMaxSize.
func Default() (*Decompressor, error) {
	codec, err := NewCodec(DefaultCodec)
	if err != nil {
		return nil, err
	}
	return New(codec, uint64(define.DefaultMaxSize.ToBytes())), nil
}

// Decompress reads the file at path and returns its decompressed content.
func (d *Decompressor) Decompress(path string) ([]byte, error) {
	src, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return d.Bytes(src)
}

// Bytes decompresses a complete zstd input held in memory. The output buffer
// is allocated once, sized to the content size declared by the frame header.
func (d *Decompressor) Bytes(src []byte) ([]byte, error) {
	size, err := ContentSize(src)
	if err != nil {
		return nil, err
	}
	if err = d.checkSize(size); err != nil {
		return nil, err
	}

	codec := d.codec
	if size == 0 {
		codec = goCodec{}
	}

	dst := make([]byte, size)
	n, err := codec.DecompressInto(dst, src)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("decoded %s with %s codec", units.BytesSize(float64(n)), codec.Name())
	return dst[:n], nil
}

func (d *Decompressor) checkSize(size uint64) error {
	if size > math.MaxInt {
		return fmt.Errorf("%w: %d bytes can not be addressed", ErrTooLarge, size)
	}
	if d.maxSize > 0 && size > d.maxSize {
		return fmt.Errorf("%w: %s exceeds the limit of %s", ErrTooLarge,
			units.BytesSize(float64(size)), units.BytesSize(float64(d.maxSize)))
	}
	if err := system.CheckMaxMemory(strongunits.B(size)); err != nil {
		return fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	return nil
}

// File decompresses src and writes the result to the path chosen by naming.
// The destination is created or truncated. On a failed write the partial
// destination is left in place.
func (d *Decompressor) File(src string, naming Naming) (*Result, error) {
	data, err := d.Decompress(src)
	if err != nil {
		return nil, err
	}

	target := naming(src)
	if filepath.Clean(target) == filepath.Clean(src) {
		logrus.Warnf("Destination %q is the source file, it will be overwritten", target)
	}

	if err = system.CheckFreeDisk(filepath.Dir(target), strongunits.B(len(data))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = writeFile(target, data); err != nil {
		return nil, err
	}

	return &Result{
		Source: src,
		Target: target,
		Data:   data,
	}, nil
}

func readFile(path string) ([]byte, error) {
	buf, err := myio.NewFile(path).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return buf, nil
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, define.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("%w: failed to open %q: %w", ErrWrite, path, err)
	}
	defer f.Close() //nolint:errcheck

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: failed to write %q: %w", ErrWrite, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %q: %w", ErrWrite, path, err)
	}
	return nil
}
