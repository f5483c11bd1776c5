package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File is a table stored on disk, which can be both written and read
type File interface {
	Sink
	Source
}

// Open returns the File type matching path's extension: ".xlsx" or ".csv"
func Open(path string) (File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return XLSXFile{Path: path}, nil
	case ".csv":
		return CSVFile{Path: path}, nil
	}
	return nil, fmt.Errorf("unsupported table file %q: must end in .xlsx or .csv", path)
}
