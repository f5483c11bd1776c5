package indexer

import (
	"errors"
	"os"
	"strings"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uoregon-libraries/zipinventory/src/config"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
	"github.com/uoregon-libraries/zipinventory/src/tabular"
)

var modified = time.Date(2024, 3, 4, 10, 20, 30, 0, time.UTC)

func writeZip(t *testing.T, path string, names ...string) {
	t.Helper()

	var f, err = os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var zw = zip.NewWriter(f)
	for _, name := range names {
		_, err = zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store, Modified: modified})
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func testIndexer(t *testing.T, format config.TableFormat) (*Indexer, string) {
	t.Helper()

	var dir = t.TempDir()
	var archivePath = filepath.Join(dir, "project.zip")
	writeZip(t, archivePath, "docs/", "docs/readme.TXT", "docs/img/", "docs/img/logo.png", "notes.txt")

	var i = New(&config.Config{
		ArchivePath:  archivePath,
		OutputDir:    dir,
		TableFormat:  format,
		DatabasePath: filepath.Join(dir, "inventory.db"),
	})
	i.now = func() time.Time { return time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC) }
	return i, dir
}

var wantRows = []tabular.Row{
	tabular.Header,
	{"docs/", "folder", "2024-03-04 10:20:30"},
	{"docs/readme.TXT", "txt", "2024-03-04 10:20:30"},
	{"docs/img/", "folder", "2024-03-04 10:20:30"},
	{"docs/img/logo.png", "png", "2024-03-04 10:20:30"},
	{"notes.txt", "txt", "2024-03-04 10:20:30"},
}

func TestIndexXLSX(t *testing.T) {
	var i, dir = testIndexer(t, config.XLSX)

	var r, err = i.Index()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "hierarchy_output_20250607080910.txt"), r.TextPath)
	assert.Equal(t, filepath.Join(dir, "hierarchy_spreadsheet_20250607080910.xlsx"), r.TablePath)
	assert.Equal(t, 5, r.Entries)
	assert.Equal(t, 0, r.Skipped)
	assert.Equal(t, 6, r.Rows)

	var text []byte
	text, err = os.ReadFile(r.TextPath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "docs/img/logo.png - Type: png, Modified Date: 2024-03-04 10:20:30\n")

	var rows []tabular.Row
	rows, err = tabular.XLSXFile{Path: r.TablePath}.ReadRows()
	require.NoError(t, err)
	assert.Equal(t, wantRows, rows)
}

func TestIndexCSV(t *testing.T) {
	var i, dir = testIndexer(t, config.CSV)

	var r, err = i.Index()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hierarchy_spreadsheet_20250607080910.csv"), r.TablePath)

	var rows []tabular.Row
	rows, err = tabular.CSVFile{Path: r.TablePath}.ReadRows()
	require.NoError(t, err)
	assert.Equal(t, wantRows, rows)
}

func TestIndexSQLiteAndReflow(t *testing.T) {
	var i, dir = testIndexer(t, config.SQLite)

	var r, err = i.Index()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory.db"), r.TablePath)

	var out = filepath.Join(dir, "reflowed.txt")
	var n int
	n, err = i.Reflow("-", out)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	var text []byte
	text, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "File Path - File Type - Modified Date\n"+
		"docs/ - folder - 2024-03-04 10:20:30\n"+
		"docs/readme.TXT - txt - 2024-03-04 10:20:30\n"+
		"docs/img/ - folder - 2024-03-04 10:20:30\n"+
		"docs/img/logo.png - png - 2024-03-04 10:20:30\n"+
		"notes.txt - txt - 2024-03-04 10:20:30\n", string(text))
}

func TestIndexRootPrefix(t *testing.T) {
	var i, _ = testIndexer(t, config.CSV)
	i.c.RootPrefix = "docs/img/"

	var r, err = i.Index()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Entries)
}

func TestCounts(t *testing.T) {
	var i, _ = testIndexer(t, config.XLSX)

	var counts, err = i.Counts()
	require.NoError(t, err)
	assert.Equal(t, []inventory.TypeCount{
		{Type: "folder", Count: 2},
		{Type: "txt", Count: 2},
		{Type: "png", Count: 1},
	}, counts)
}

func TestMissingArchive(t *testing.T) {
	var i, dir = testIndexer(t, config.XLSX)
	i.c.ArchivePath = filepath.Join(dir, "gone.zip")

	var _, err = i.Index()
	assert.True(t, errors.Is(err, inventory.ErrMissingSource))
	assert.Contains(t, err.Error(), "gone.zip")
}

func TestReflowMissingTable(t *testing.T) {
	var i, dir = testIndexer(t, config.XLSX)

	var _, err = i.Reflow(filepath.Join(dir, "nope.xlsx"), filepath.Join(dir, "out.txt"))
	assert.True(t, errors.Is(err, inventory.ErrMissingSource))
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))

	_, err = i.Reflow(filepath.Join(dir, "table.ods"), filepath.Join(dir, "out.txt"))
	assert.Error(t, err)
}

func TestReflowMissingStoredInventory(t *testing.T) {
	var i, dir = testIndexer(t, config.SQLite)

	var _, err = i.Reflow("-", filepath.Join(dir, "out.txt"))
	assert.True(t, errors.Is(err, inventory.ErrMissingSource))
}

func TestStoredInventories(t *testing.T) {
	var i, _ = testIndexer(t, config.SQLite)

	var list, err = i.StoredInventories()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = i.Index()
	require.NoError(t, err)
	_, err = i.Index()
	require.NoError(t, err)

	list, err = i.StoredInventories()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "project.zip", list[0].Name)
	assert.Equal(t, "project.zip", list[1].Name)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestStoredInventoriesNeedsSQLite(t *testing.T) {
	var i, dir = testIndexer(t, config.CSV)

	var _, err = i.StoredInventories()
	assert.ErrorContains(t, err, "sqlite")
	assert.NoFileExists(t, filepath.Join(dir, "inventory.db"))
}

func TestWriteLines(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "out.txt")
	var lines = []string{"docs/ - Type: folder, Modified Date: 2024-03-04 10:20:30", "", "last"}

	require.NoError(t, writeLines(path, lines))
	var data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))

	err = writeLines(filepath.Join(dir, "missing", "out.txt"), lines)
	var ioErr *inventory.IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
	assert.Equal(t, "create text file", ioErr.Op)
}
