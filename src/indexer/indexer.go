// Package indexer runs the inventory pipeline: archive entries to a
// hierarchy, the hierarchy to its text file, and the text file back out to a
// table
package indexer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/uoregon-libraries/gopkg/logger"
	"github.com/uoregon-libraries/zipinventory/src/archive"
	"github.com/uoregon-libraries/zipinventory/src/config"
	"github.com/uoregon-libraries/zipinventory/src/db"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
	"github.com/uoregon-libraries/zipinventory/src/tabular"
)

// stampFormat is used to give each run's output files unique names
const stampFormat = "20060102150405"

// Indexer holds the configuration for inventorying a single archive.  It
// keeps no state between calls.
type Indexer struct {
	c   *config.Config
	now func() time.Time
}

// Result describes what a call to Index produced
type Result struct {
	TextPath  string // where the hierarchy text was saved
	TablePath string // table file, or the inventory database when using sqlite
	Entries   int    // entries in the hierarchy
	Skipped   int    // malformed lines skipped reading the text back
	Rows      int    // table rows written, including the header
}

// New sets up an Indexer for the given configuration
func New(conf *config.Config) *Indexer {
	return &Indexer{c: conf, now: time.Now}
}

// hierarchy reads the archive and walks it from the configured root
func (i *Indexer) hierarchy() (*inventory.Hierarchy, error) {
	var entries, err = archive.ReadEntries(i.c.ArchivePath)
	if err != nil {
		return nil, err
	}

	var h = inventory.Walk(entries, i.c.RootPrefix)
	logger.Infof("Found %d of %d archive entries under %q", h.Len(), len(entries), i.c.RootPrefix)
	return h, nil
}

// Index builds the archive's hierarchy, saves it as text, reads that text
// back, and exports the result to the configured table format
func (i *Indexer) Index() (*Result, error) {
	var h, err = i.hierarchy()
	if err != nil {
		return nil, err
	}

	var stamp = i.now().Format(stampFormat)
	var r = &Result{
		TextPath: filepath.Join(i.c.OutputDir, "hierarchy_output_"+stamp+".txt"),
		Entries:  h.Len(),
	}

	err = inventory.WriteFile(r.TextPath, h)
	if err != nil {
		return nil, err
	}
	logger.Infof("Hierarchy information saved to %q", r.TextPath)

	var decoded *inventory.Decoded
	decoded, err = inventory.ReadFile(r.TextPath)
	if err != nil {
		return nil, err
	}
	r.Skipped = decoded.Skipped

	var rows = tabular.Export(decoded.Hierarchy)
	r.Rows = len(rows)
	err = i.withTable(stamp, func(sink tabular.Sink, location string) error {
		r.TablePath = location
		return sink.WriteRows(rows)
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("Table of %d rows saved to %q", len(rows), r.TablePath)

	return r, nil
}

// Counts returns the number of hierarchy entries of each type
func (i *Indexer) Counts() ([]inventory.TypeCount, error) {
	var h, err = i.hierarchy()
	if err != nil {
		return nil, err
	}
	return inventory.CountTypes(h), nil
}

// Reflow reads the table at tablePath and writes each row as a line of text
// to textPath, returning the number of lines written.  When the configured
// format is sqlite, a tablePath of "-" reads the latest stored inventory of
// the configured archive.
func (i *Indexer) Reflow(tablePath, textPath string) (int, error) {
	var rows []tabular.Row
	var err error

	if tablePath == "-" && i.c.TableFormat == config.SQLite {
		err = i.withDatabase(func(dbh *db.Database) error {
			rows, err = tabular.DBTable{DB: dbh, Name: i.c.ArchiveName()}.ReadRows()
			return err
		})
	} else {
		var f tabular.File
		f, err = tabular.Open(tablePath)
		if err != nil {
			return 0, err
		}
		rows, err = f.ReadRows()
	}
	if err != nil {
		return 0, err
	}

	var lines = tabular.RowsToLines(rows)
	err = writeLines(textPath, lines)
	if err != nil {
		return 0, err
	}

	logger.Infof("Text file %q created from %d table rows", textPath, len(rows))
	return len(lines), nil
}

// StoredInventories lists every inventory saved in the configured database,
// oldest first.  It's only meaningful when the table format is sqlite.
func (i *Indexer) StoredInventories() ([]*db.Inventory, error) {
	if i.c.TableFormat != config.SQLite {
		return nil, fmt.Errorf("stored inventories require TABLE_FORMAT \"sqlite\", not %q", i.c.TableFormat)
	}

	var list []*db.Inventory
	var err = i.withDatabase(func(dbh *db.Database) error {
		return dbh.InTransaction(func(op *db.Operation) error {
			var err error
			list, err = op.AllInventories()
			return err
		})
	})
	return list, err
}

// withTable opens the configured table sink, calls fn with it and a
// description of where it writes, and releases anything opened
func (i *Indexer) withTable(stamp string, fn func(tabular.Sink, string) error) error {
	if i.c.TableFormat == config.SQLite {
		return i.withDatabase(func(dbh *db.Database) error {
			return fn(tabular.DBTable{DB: dbh, Name: i.c.ArchiveName()}, i.c.DatabasePath)
		})
	}

	var path = filepath.Join(i.c.OutputDir, "hierarchy_spreadsheet_"+stamp+i.c.TableFormat.Extension())
	var f, err = tabular.Open(path)
	if err != nil {
		return err
	}
	return fn(f, path)
}

func (i *Indexer) withDatabase(fn func(*db.Database) error) error {
	var dbh, err = db.New(i.c.DatabasePath)
	if err != nil {
		return &inventory.IOError{Op: "open database", Path: i.c.DatabasePath, Err: err}
	}
	defer dbh.Close()
	return fn(dbh)
}

// writeLines saves lines to path, each newline-terminated
func writeLines(path string, lines []string) (err error) {
	var f *os.File
	f, err = os.Create(path)
	if err != nil {
		return &inventory.IOError{Op: "create text file", Path: path, Err: err}
	}
	defer func() {
		var cerr = f.Close()
		if err == nil && cerr != nil {
			err = &inventory.IOError{Op: "close text file", Path: path, Err: cerr}
		}
	}()

	var w = bufio.NewWriter(f)
	for _, line := range lines {
		_, err = w.WriteString(line + "\n")
		if err != nil {
			return &inventory.IOError{Op: "write text file", Path: path, Err: err}
		}
	}
	err = w.Flush()
	if err != nil {
		return &inventory.IOError{Op: "write text file", Path: path, Err: err}
	}
	return nil
}
