package tabular

import (
	"github.com/uoregon-libraries/gopkg/fileutil"
	"github.com/uoregon-libraries/gopkg/logger"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet exported hierarchies are written to
const SheetName = "Hierarchy"

// XLSXFile reads and writes a spreadsheet workbook.  Rows are written to the
// "Hierarchy" sheet and read from whichever sheet is active.
type XLSXFile struct {
	Path string
}

// WriteRows creates the workbook, replacing any file already at Path
func (x XLSXFile) WriteRows(rows []Row) (err error) {
	var f = excelize.NewFile()
	defer func() {
		var cerr = f.Close()
		if err == nil && cerr != nil {
			err = &inventory.IOError{Op: "close spreadsheet", Path: x.Path, Err: cerr}
		}
	}()

	err = f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName)
	if err != nil {
		return &inventory.IOError{Op: "name spreadsheet sheet", Path: x.Path, Err: err}
	}

	for i, r := range rows {
		var cell string
		cell, err = excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return &inventory.IOError{Op: "address spreadsheet row", Path: x.Path, Err: err}
		}
		var values = make([]interface{}, len(r))
		for j, v := range r {
			values[j] = v
		}
		err = f.SetSheetRow(SheetName, cell, &values)
		if err != nil {
			return &inventory.IOError{Op: "fill spreadsheet row", Path: x.Path, Err: err}
		}
	}

	err = f.SaveAs(x.Path)
	if err != nil {
		return &inventory.IOError{Op: "save spreadsheet", Path: x.Path, Err: err}
	}
	logger.Debugf("Wrote %d rows to spreadsheet %q", len(rows), x.Path)
	return nil
}

// ReadRows returns every row of the workbook's active sheet
func (x XLSXFile) ReadRows() ([]Row, error) {
	if !fileutil.IsFile(x.Path) {
		return nil, &inventory.MissingSourceError{Path: x.Path}
	}

	var f, err = excelize.OpenFile(x.Path)
	if err != nil {
		return nil, &inventory.IOError{Op: "open spreadsheet", Path: x.Path, Err: err}
	}
	defer f.Close()

	var cells [][]string
	cells, err = f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, &inventory.IOError{Op: "read spreadsheet", Path: x.Path, Err: err}
	}

	var rows = make([]Row, len(cells))
	for i, c := range cells {
		rows[i] = Row(c)
	}
	return rows, nil
}
