//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"
	"io"
	"path/filepath"
)

const (
	contentStart = "----- Content Start -----"
	contentEnd   = "----- Content End -----"
)

// Report prints the confirmation line for r to w and, when echo is set, the
// decompressed content between start and end markers.
func Report(w io.Writer, r *Result, echo bool) error {
	if _, err := fmt.Fprintf(w, "Decompressed: %q -> %q\n", filepath.Base(r.Source), filepath.Base(r.Target)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !echo {
		return nil
	}

	if _, err := fmt.Fprintln(w, contentStart); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := w.Write(r.Data); err != nil {
		return fmt.Errorf("failed to echo content: %w", err)
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", contentEnd); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
