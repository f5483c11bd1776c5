package inventory

import (
	"os"

	"github.com/uoregon-libraries/gopkg/fileutil"
	"github.com/uoregon-libraries/gopkg/logger"
)

// WriteFile saves the text form of h to path, replacing anything already
// there
func WriteFile(path string, h *Hierarchy) (err error) {
	var f *os.File
	f, err = os.Create(path)
	if err != nil {
		return &IOError{Op: "create hierarchy file", Path: path, Err: err}
	}
	defer func() {
		var cerr = f.Close()
		if err == nil && cerr != nil {
			err = &IOError{Op: "close hierarchy file", Path: path, Err: cerr}
		}
	}()

	logger.Debugf("Writing %d hierarchy entries to %q", h.Len(), path)
	err = Write(f, h)
	if err != nil {
		return &IOError{Op: "write hierarchy file", Path: path, Err: err}
	}
	return nil
}

// ReadFile loads a hierarchy previously saved with WriteFile
func ReadFile(path string) (*Decoded, error) {
	if !fileutil.IsFile(path) {
		return nil, &MissingSourceError{Path: path}
	}

	var f, err = os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open hierarchy file", Path: path, Err: err}
	}
	defer f.Close()

	var d *Decoded
	d, err = Read(f)
	if err != nil {
		return nil, &IOError{Op: "read hierarchy file", Path: path, Err: err}
	}
	if d.Skipped > 0 {
		logger.Warnf("Skipped %d malformed line(s) in %q", d.Skipped, path)
	}
	return d, nil
}
