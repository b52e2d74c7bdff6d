// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsZipFile(t *testing.T) {
	dir := t.TempDir()

	zipPath := createArchive(t, dir, "real.edpak", map[string]string{
		"manifest.json": "{}",
	})

	textPath := filepath.Join(dir, "text.edpak")
	if err := os.WriteFile(textPath, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	emptyPath := filepath.Join(dir, "empty.edpak")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"real zip", zipPath, true},
		{"plain text", textPath, false},
		{"empty file", emptyPath, false},
		{"missing file", filepath.Join(dir, "nope.edpak"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZipFile(tt.path); got != tt.want {
				t.Errorf("IsZipFile(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
