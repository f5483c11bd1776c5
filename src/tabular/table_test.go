package tabular

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uoregon-libraries/zipinventory/src/db"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

func twoEntryHierarchy() *inventory.Hierarchy {
	var h = inventory.NewHierarchy()
	h.Set("docs/", inventory.EntryDescriptor{Type: "folder", ModifiedAt: "2023-05-01 09:30:00"})
	h.Set("docs/readme.TXT", inventory.EntryDescriptor{Type: "txt", ModifiedAt: "2024-01-02 03:04:06"})
	return h
}

func TestExport(t *testing.T) {
	var rows = Export(twoEntryHierarchy())

	assert.Equal(t, []Row{
		{"File Path", "File Type", "Modified Date"},
		{"docs/", "folder", "2023-05-01 09:30:00"},
		{"docs/readme.TXT", "txt", "2024-01-02 03:04:06"},
	}, rows)
}

func TestExportEmpty(t *testing.T) {
	assert.Equal(t, []Row{Header}, Export(inventory.NewHierarchy()))
}

func TestExportAfterTextRoundTrip(t *testing.T) {
	var h = twoEntryHierarchy()
	var d = inventory.Deserialize(inventory.Serialize(h))

	assert.Equal(t, Export(h), Export(d.Hierarchy))
}

func TestRowsToLines(t *testing.T) {
	var lines = RowsToLines([]Row{
		Header,
		{"docs/", "folder", "2023-05-01 09:30:00"},
		{"short"},
		{},
	})

	assert.Equal(t, []string{
		"File Path - File Type - Modified Date",
		"docs/ - folder - 2023-05-01 09:30:00",
		"short",
		"",
	}, lines)
}

func TestOpen(t *testing.T) {
	var f, err = Open("out/Table.XLSX")
	require.NoError(t, err)
	assert.Equal(t, XLSXFile{Path: "out/Table.XLSX"}, f)

	f, err = Open("table.csv")
	require.NoError(t, err)
	assert.Equal(t, CSVFile{Path: "table.csv"}, f)

	_, err = Open("table.ods")
	assert.Error(t, err)
}

func TestFileRoundTrips(t *testing.T) {
	var dir = t.TempDir()
	var rows = Export(twoEntryHierarchy())

	for _, name := range []string{"table.xlsx", "table.csv"} {
		t.Run(name, func(t *testing.T) {
			var f, err = Open(filepath.Join(dir, name))
			require.NoError(t, err)
			require.NoError(t, f.WriteRows(rows))

			var got []Row
			got, err = f.ReadRows()
			require.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}

func TestMissingSources(t *testing.T) {
	var dir = t.TempDir()
	var database, err = db.New(filepath.Join(dir, "inventory.db"))
	require.NoError(t, err)
	defer database.Close()

	var sources = map[string]Source{
		"xlsx":   XLSXFile{Path: filepath.Join(dir, "missing.xlsx")},
		"csv":    CSVFile{Path: filepath.Join(dir, "missing.csv")},
		"sqlite": DBTable{DB: database, Name: "missing.zip"},
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			var _, err = src.ReadRows()
			assert.True(t, errors.Is(err, inventory.ErrMissingSource), "got %v", err)
			assert.Contains(t, err.Error(), "missing")
		})
	}
}

func TestDBTableRoundTrip(t *testing.T) {
	var database, err = db.New(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	defer database.Close()

	var table = DBTable{DB: database, Name: "project.zip"}
	var rows = Export(twoEntryHierarchy())
	require.NoError(t, table.WriteRows(rows))

	var got []Row
	got, err = table.ReadRows()
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	assert.Error(t, table.WriteRows([]Row{Header, {"too", "short"}}))
}

func TestCSVQuotedCells(t *testing.T) {
	var f = CSVFile{Path: filepath.Join(t.TempDir(), "table.csv")}
	var rows = []Row{
		Header,
		{"a, b/", "folder", "2024-01-01 00:00:00"},
		{`say "hi".txt`, "txt", "2024-01-01 00:00:00"},
		{"two\nlines.md", "md", "2024-01-01 00:00:00"},
	}
	require.NoError(t, f.WriteRows(rows))

	var got, err = f.ReadRows()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestCSVWriteToMissingDirectory(t *testing.T) {
	var f = CSVFile{Path: filepath.Join(t.TempDir(), "no-such-dir", "table.csv")}

	var err = f.WriteRows(Export(twoEntryHierarchy()))
	var ioErr *inventory.IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
	assert.Equal(t, "create table", ioErr.Op)
}
