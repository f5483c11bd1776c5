package config

import "fmt"

// TableFormat tells us where the exported table of a hierarchy is stored
type TableFormat int

// Table formats the pipeline understands
const (
	XLSX   TableFormat = iota // spreadsheet workbook; the default
	CSV                       // comma-separated text
	SQLite                    // rows in the inventory database
)

// Extension returns the file extension for table formats which are written
// to their own file, or "" for the database format
func (tf TableFormat) Extension() string {
	switch tf {
	case XLSX:
		return ".xlsx"
	case CSV:
		return ".csv"
	}
	return ""
}

func (tf TableFormat) String() string {
	switch tf {
	case XLSX:
		return "xlsx"
	case CSV:
		return "csv"
	case SQLite:
		return "sqlite"
	}
	return fmt.Sprintf("TableFormat(%d)", int(tf))
}

// parseTableFormat converts a TABLE_FORMAT value; blank means xlsx
func parseTableFormat(val string) (TableFormat, error) {
	switch val {
	case "", "xlsx":
		return XLSX, nil
	case "csv":
		return CSV, nil
	case "sqlite":
		return SQLite, nil
	}
	return XLSX, fmt.Errorf("unknown keyword %q", val)
}
