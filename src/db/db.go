// Package db stores exported inventory tables in a sqlite database
package db

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/Nerdmaster/magicsql"
	_ "github.com/mattn/go-sqlite3" // database/sql requires "side-effect" packages be loaded
	"github.com/uoregon-libraries/gopkg/logger"
)

var mtInventories = magicsql.Table("inventories", &Inventory{})
var mtRows = magicsql.Table("inventory_rows", &Row{})

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inventories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		inventory_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		file_path TEXT NOT NULL,
		file_type TEXT NOT NULL,
		modified_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS inventory_rows_inventory_id ON inventory_rows (inventory_id, position)`,
}

// Database encapsulates transactions and magicsql data types
type Database struct {
	sync.Mutex
	sqldb       *sql.DB
	dbh         *magicsql.DB
	Operation   *magicsql.Operation
	Inventories *magicsql.OperationTable
	Rows        *magicsql.OperationTable
}

// Operation is meaningless and just wraps Database.  It's here to keep users
// from doing something like Database.SaveInventory() when an operation /
// transaction hasn't been set up.
type Operation struct {
	*Database
}

// New opens (creating if necessary) the sqlite database at path and makes
// sure the tables exist
func New(path string) (*Database, error) {
	var _db, err = sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database %q: %s", path, err)
	}

	var db = &Database{sqldb: _db, dbh: magicsql.Wrap(_db)}
	err = db.InTransaction(func(op *Operation) error {
		for _, stmt := range schema {
			op.Operation.Exec(stmt)
		}
		return op.Operation.Err()
	})
	if err != nil {
		_db.Close()
		return nil, fmt.Errorf("unable to prepare database %q: %s", path, err)
	}

	logger.Debugf("Opened inventory database %q", path)
	return db, nil
}

// Close releases the underlying database handle
func (db *Database) Close() error {
	return db.sqldb.Close()
}

// InTransaction starts a transaction, runs the callback function, then ends
// the transaction, returning the callback's error or the first database
// error, if any occurs
func (db *Database) InTransaction(cb func(*Operation) error) error {
	db.Lock()
	defer db.Unlock()

	if db.Operation != nil {
		return fmt.Errorf("cannot wrap a transaction when a previous operation is still pending")
	}
	db.Operation = db.dbh.Operation()
	db.Inventories = db.Operation.OperationTable(mtInventories)
	db.Rows = db.Operation.OperationTable(mtRows)
	defer func() { db.Operation = nil }()

	db.Operation.BeginTransaction()
	var err = cb(&Operation{db})
	db.Operation.EndTransaction()

	if err != nil {
		return err
	}
	return db.Operation.Err()
}
