//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var dir string
var once sync.Once

// GetTestFixtures returns the path of a fixture below tests/fixtures.
func GetTestFixtures(name string) string {
	once.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current working directory: %w", err))
		}
		dir = getTestFixtures(cwd)
	})

	return filepath.Join(dir, name)
}

// CopyZstd copies the zstd fixture name into dst and returns the new path, so
// tests can write next to it without touching the fixture tree.
func CopyZstd(t *testing.T, dst, name string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(GetTestFixtures("zstd"), name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}

	target := filepath.Join(dst, name)
	if err = os.WriteFile(target, b, 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to copy fixture %s: %v", name, err)
	}
	return target
}

func getTestFixtures(dir string) string {
	if dir == "/" || filepath.VolumeName(dir) == dir {
		panic(fmt.Errorf("could not find project root (no go.mod found)"))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		panic(fmt.Errorf("failed to read current working directory: %w", err))
	}

	for _, entry := range entries {
		if entry.Name() == "go.mod" {
			return filepath.Join(dir, "tests", "fixtures")
		}
	}

	return getTestFixtures(filepath.Dir(dir))
}
