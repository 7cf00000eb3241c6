//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"unzstd/pkg/decompress"
	"unzstd/pkg/define"
	myio "unzstd/pkg/io"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNotDir = errors.New("not a listable directory")

const (
	SummaryText = "text"
	SummaryJSON = "json"
)

type FileResult struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Size   int    `json:"size"`
	Error  string `json:"error,omitempty"`
}

type Summary struct {
	Dir       string       `json:"dir"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Files     []FileResult `json:"files"`
}

// Run decompresses every regular ".zst" file directly inside dir, in listing
// order, writing each next to its source with the extension stripped. A
// failing file is logged and skipped. The returned error only reports that
// dir itself could not be listed.
func Run(dir string, d *decompress.Decompressor, out io.Writer) (*Summary, error) {
	if !myio.NewDir(dir).IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDir, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %q: %w", ErrNotDir, dir, err)
	}

	summary := &Summary{
		Dir:   dir,
		Files: []FileResult{},
	}

	for _, entry := range entries {
		src := myio.NewDir(dir).AppendFile(entry.Name())
		if src.Ext() != define.ZstSuffix || !src.IsRegular() {
			logrus.Debugf("Skip %q", src.GetPath())
			continue
		}

		summary.Total++
		fr := FileResult{Source: src.GetPath()}

		res, err := d.File(src.GetPath(), decompress.StripSuffix)
		if err != nil {
			logrus.Errorf("Failed to decompress %q: %v", src.GetPath(), err)
			fr.Error = err.Error()
			summary.Failed++
			summary.Files = append(summary.Files, fr)
			continue
		}

		fr.Target = res.Target
		fr.Size = len(res.Data)
		summary.Succeeded++
		summary.Files = append(summary.Files, fr)

		if err = decompress.Report(out, res, false); err != nil {
			logrus.Warnf("%v", err)
		}
	}

	logrus.Infof("Processed %d files in %q: %d succeeded, %d failed",
		summary.Total, dir, summary.Succeeded, summary.Failed)
	return summary, nil
}

// WriteSummary prints s to w in the given format. The text format is already
// covered by the log line of Run and prints nothing.
func WriteSummary(w io.Writer, s *Summary, format string) error {
	switch format {
	case "", SummaryText:
		return nil
	case SummaryJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		if _, err = fmt.Fprintln(w, string(b)); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}
