package db

import (
	"github.com/Nerdmaster/magicsql"
)

// RowSelect wraps the "SELECT" behaviors for reading an inventory's rows
type RowSelect struct {
	op        *Operation
	sel       magicsql.Select
	inventory *Inventory
}

// RowSelect creates a new RowSelect for the given inventory's rows
func (op *Operation) RowSelect(inv *Inventory) *RowSelect {
	return &RowSelect{op: op, sel: op.Rows.Select(), inventory: inv}
}

// AllRows runs the query, returning the rows in their stored order
func (s *RowSelect) AllRows() ([]*Row, error) {
	var rows []*Row
	s.sel.Where("inventory_id = ?", s.inventory.ID).Order("position").AllObjects(&rows)
	return rows, s.op.Operation.Err()
}
