package tabular

import (
	"fmt"
	"slices"

	"github.com/uoregon-libraries/zipinventory/src/db"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

// DBTable stores tables in the inventory database under a name (usually the
// archive's file name).  Each write is a new inventory; reads return the
// latest one.  The header row isn't stored, since the database columns
// already name the cells; ReadRows puts it back.
type DBTable struct {
	DB   *db.Database
	Name string
}

// WriteRows stores every row after the header.  Rows must have exactly three
// cells.
func (t DBTable) WriteRows(rows []Row) error {
	var records = make([]*db.Row, 0, len(rows))
	for i, r := range rows {
		if i == 0 && slices.Equal(r, Header) {
			continue
		}
		if len(r) != len(Header) {
			return fmt.Errorf("row #%d has %d cells; expected %d", i, len(r), len(Header))
		}
		records = append(records, &db.Row{FilePath: r[0], FileType: r[1], ModifiedDate: r[2]})
	}

	return t.DB.InTransaction(func(op *db.Operation) error {
		var _, err = op.SaveInventory(t.Name, records)
		return err
	})
}

// ReadRows returns the header and the rows of the latest inventory stored
// under Name
func (t DBTable) ReadRows() ([]Row, error) {
	var records []*db.Row
	var err = t.DB.InTransaction(func(op *db.Operation) error {
		var inv, err = op.LatestInventory(t.Name)
		if err != nil {
			return err
		}
		if inv == nil {
			return &inventory.MissingSourceError{Path: t.Name}
		}
		records, err = op.RowSelect(inv).AllRows()
		return err
	})
	if err != nil {
		return nil, err
	}

	var rows = make([]Row, 0, len(records)+1)
	rows = append(rows, Header)
	for _, r := range records {
		rows = append(rows, Row{r.FilePath, r.FileType, r.ModifiedDate})
	}
	return rows, nil
}
