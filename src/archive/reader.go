// Package archive reads the entry list out of ZIP files
package archive

import (
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/uoregon-libraries/gopkg/fileutil"
	"github.com/uoregon-libraries/gopkg/logger"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

// ReadEntries opens the ZIP file at path and returns its entries in the
// order the archive's central directory lists them.  The file is closed
// before returning.
func ReadEntries(path string) ([]inventory.ArchiveEntry, error) {
	if !fileutil.IsFile(path) {
		return nil, &inventory.MissingSourceError{Path: path}
	}

	var zr, err = zip.OpenReader(path)
	if err != nil {
		return nil, &inventory.IOError{Op: "open archive", Path: path, Err: err}
	}
	defer zr.Close()

	logger.Debugf("Reading %d entries from %q", len(zr.File), path)
	return Entries(zr.File), nil
}

// Entries converts already-opened ZIP entries
func Entries(files []*zip.File) []inventory.ArchiveEntry {
	var entries = make([]inventory.ArchiveEntry, len(files))
	for i, f := range files {
		entries[i] = inventory.ArchiveEntry{
			Path:        f.Name,
			IsDirectory: isDir(f),
			ModifiedAt:  f.Modified,
		}
	}
	return entries
}

// isDir only trusts the trailing slash.  Stored mode bits are ignored: the
// walker matches prefixes as plain strings, so a slash-less "directory" named
// "foo" would pull in "foobar.txt" as one of its children.
func isDir(f *zip.File) bool {
	return strings.HasSuffix(f.Name, "/")
}
