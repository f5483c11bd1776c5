package db

import (
	"fmt"
	"time"
)

// Inventory maps to the inventories database table, which represents a
// single export of an archive's hierarchy
type Inventory struct {
	ID        int `sql:",primary"`
	Name      string
	CreatedAt string
}

// Row maps to the inventory_rows table: one cell-triplet of an exported
// table, in its original position
type Row struct {
	ID           int `sql:",primary"`
	InventoryID  int
	Position     int
	FilePath     string
	FileType     string
	ModifiedDate string
}

// SaveInventory stores a new inventory under the given name, along with its
// rows in the order given
func (op *Operation) SaveInventory(name string, rows []*Row) (*Inventory, error) {
	var inv = &Inventory{Name: name, CreatedAt: time.Now().Format(time.RFC3339)}
	op.Inventories.Save(inv)
	if op.Operation.Err() != nil {
		return nil, fmt.Errorf("couldn't store inventory %q: %s", name, op.Operation.Err())
	}

	for i, r := range rows {
		r.ID = 0
		r.InventoryID = inv.ID
		r.Position = i
		op.Rows.Save(r)
	}
	if op.Operation.Err() != nil {
		return nil, fmt.Errorf("couldn't store rows for inventory %q: %s", name, op.Operation.Err())
	}

	return inv, nil
}

// LatestInventory finds the most recently stored inventory with the given
// name.  If there is none, the inventory returned is nil.
func (op *Operation) LatestInventory(name string) (*Inventory, error) {
	var inv = &Inventory{}
	var ok = op.Inventories.Select().Where("name = ?", name).Order("id DESC").First(inv)
	if op.Operation.Err() != nil {
		return nil, op.Operation.Err()
	}
	if !ok {
		return nil, nil
	}
	return inv, nil
}

// AllInventories returns every stored inventory, oldest first
func (op *Operation) AllInventories() ([]*Inventory, error) {
	var list []*Inventory
	op.Inventories.Select().Order("id").AllObjects(&list)
	return list, op.Operation.Err()
}
