// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// zipMagics are the signatures a ZIP container may start with: a local file
// header, the end-of-central-directory record of an empty archive, or a data
// descriptor for spanned archives.
var zipMagics = [][4]byte{
	{'P', 'K', 0x03, 0x04},
	{'P', 'K', 0x05, 0x06},
	{'P', 'K', 0x07, 0x08},
}

// IsZipFile reports whether the file at path begins with a ZIP container
// signature. It never returns an error: unreadable or too-short files are
// simply not ZIP archives.
func IsZipFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [4]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return false
	}

	for _, magic := range zipMagics {
		if header == magic {
			return true
		}
	}
	return false
}

// archiveListing holds the entry names of an opened archive, preserving
// archive order for iteration and providing set lookup for reference checks.
type archiveListing struct {
	names []string
	set   map[string]struct{}
}

func newArchiveListing(r *zip.Reader) *archiveListing {
	l := &archiveListing{set: make(map[string]struct{}, len(r.File))}
	for _, f := range r.File {
		l.names = append(l.names, f.Name)
		l.set[f.Name] = struct{}{}
	}
	return l
}

// contains reports whether name matches an archive entry exactly.
func (l *archiveListing) contains(name string) bool {
	_, ok := l.set[name]
	return ok
}

// readEntry returns the full contents of the named archive entry.
func readEntry(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found in archive", name)
}
