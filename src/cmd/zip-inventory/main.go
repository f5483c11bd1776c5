package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/uoregon-libraries/gopkg/logger"
	"github.com/uoregon-libraries/zipinventory/src/db"
	"github.com/uoregon-libraries/zipinventory/src/indexer"
	"github.com/uoregon-libraries/zipinventory/src/inventory"
)

func main() {
	var conf, cmd = getCLI()
	var i = indexer.New(conf)

	var err error
	switch cmd.name {
	case "hierarchy":
		err = runHierarchy(i)
	case "counts":
		err = runCounts(i)
	case "reflow":
		err = runReflow(i, cmd.args[0], cmd.args[1])
	case "inventories":
		err = runInventories(i)
	}

	if err != nil {
		logger.Errorf("Unable to run %q: %s", cmd.name, err)
		perrf("Error: %s", err)
		os.Exit(1)
	}
}

func runHierarchy(i *indexer.Indexer) error {
	var r, err = i.Index()
	if err != nil {
		return err
	}

	fmt.Printf("Hierarchy information saved to %s\n", r.TextPath)
	fmt.Printf("Table (%d entries) saved to %s\n", r.Entries, r.TablePath)
	if r.Skipped > 0 {
		fmt.Printf("Skipped %d malformed line(s) reading the hierarchy back\n", r.Skipped)
	}
	return nil
}

func runCounts(i *indexer.Indexer) error {
	var counts, err = i.Counts()
	if err != nil {
		return err
	}
	printCounts(os.Stdout, counts)
	return nil
}

func printCounts(out io.Writer, counts []inventory.TypeCount) {
	var w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "File Type\tCount")
	fmt.Fprintln(w, "---------\t-----")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Type, c.Count)
	}
	w.Flush()
}

func runReflow(i *indexer.Indexer, tablePath, textPath string) error {
	var n, err = i.Reflow(tablePath, textPath)
	if err != nil {
		return err
	}
	fmt.Printf("Text file %s created (%d lines)\n", textPath, n)
	return nil
}

func runInventories(i *indexer.Indexer) error {
	var list, err = i.StoredInventories()
	if err != nil {
		return err
	}
	printInventories(os.Stdout, list)
	return nil
}

func printInventories(out io.Writer, list []*db.Inventory) {
	var w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tArchive\tCreated")
	for _, inv := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\n", inv.ID, inv.Name, inv.CreatedAt)
	}
	w.Flush()
}
