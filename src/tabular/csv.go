package tabular

import (
	"encoding/csv"
	"os"

	"github.com/uoregon-libraries/gopkg/fileutil"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

// CSVFile reads and writes comma-separated tables
type CSVFile struct {
	Path string
}

// WriteRows creates the file, replacing anything already at Path
func (c CSVFile) WriteRows(rows []Row) (err error) {
	var f *os.File
	f, err = os.Create(c.Path)
	if err != nil {
		return &inventory.IOError{Op: "create table", Path: c.Path, Err: err}
	}
	defer func() {
		var cerr = f.Close()
		if err == nil && cerr != nil {
			err = &inventory.IOError{Op: "close table", Path: c.Path, Err: cerr}
		}
	}()

	var w = csv.NewWriter(f)
	for _, r := range rows {
		err = w.Write(r)
		if err != nil {
			return &inventory.IOError{Op: "write table", Path: c.Path, Err: err}
		}
	}
	w.Flush()
	if w.Error() != nil {
		return &inventory.IOError{Op: "write table", Path: c.Path, Err: w.Error()}
	}
	return nil
}

// ReadRows returns every record in the file.  Records needn't all have the
// same number of fields.
func (c CSVFile) ReadRows() ([]Row, error) {
	if !fileutil.IsFile(c.Path) {
		return nil, &inventory.MissingSourceError{Path: c.Path}
	}

	var f, err = os.Open(c.Path)
	if err != nil {
		return nil, &inventory.IOError{Op: "open table", Path: c.Path, Err: err}
	}
	defer f.Close()

	var r = csv.NewReader(f)
	r.FieldsPerRecord = -1
	var records [][]string
	records, err = r.ReadAll()
	if err != nil {
		return nil, &inventory.IOError{Op: "read table", Path: c.Path, Err: err}
	}

	var rows = make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row(rec)
	}
	return rows, nil
}
