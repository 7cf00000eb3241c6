//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build !cgo

package decompress

import (
	"errors"
)

const DefaultCodec = CodecGo

func newCgoCodec() (Codec, error) {
	return nil, errors.New("cgo codec is not available, binary was built without cgo")
}
