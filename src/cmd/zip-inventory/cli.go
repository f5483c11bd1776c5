package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/uoregon-libraries/gopkg/wordutils"
	"github.com/uoregon-libraries/zipinventory/src/config"
)

var spaces = regexp.MustCompile(`\s+`)

func perrraw(s string) {
	fmt.Fprintln(os.Stderr, s)
}

func perr(s string) {
	s = strings.TrimSpace(s)
	s = spaces.ReplaceAllString(s, " ")
	perrraw(wordutils.Wrap(s, 80))
}

func perrf(s string, args ...interface{}) {
	perr(fmt.Sprintf(s, args...))
}

func usage(msg string) {
	var status = 0
	if msg != "" {
		perr(msg)
		perr("")
		status = 1
	}

	perrf("Usage: %s <settings file> <command> [arguments]", os.Args[0])
	perr("")
	perr("Commands:")
	perrraw("    hierarchy                      inventory the archive to text and a table")
	perrraw("    counts                         show how many entries there are of each type")
	perrraw("    reflow <table> <text file>     flatten a .xlsx or .csv table to plain text")
	perrraw("    inventories                    list the tables stored in DATABASE_PATH")
	perr("")
	perr(`
		The settings file must set ARCHIVE_PATH, and may set ROOT_PREFIX (only
		entries whose paths start with this text are inventoried), OUTPUT_DIR
		(where output files are written; defaults to the current directory),
		TABLE_FORMAT ("xlsx", "csv", or "sqlite"), and DATABASE_PATH (required
		for "sqlite").  Any setting can be overridden with an environment
		variable prefixed with "ZI_", e.g., ZI_ARCHIVE_PATH.
	`)
	perr("")
	perr(`
		When TABLE_FORMAT is "sqlite", "reflow -" reads the most recently stored
		table for the configured archive.
	`)
	perr("")
	perr("Example:")
	perrraw(fmt.Sprintf(`    %s settings hierarchy`, os.Args[0]))

	os.Exit(status)
}

type command struct {
	name string
	args []string
}

func getCLI() (*config.Config, command) {
	if len(os.Args) < 3 {
		usage("You must specify a settings file and a command")
	}

	var cmd = command{name: os.Args[2], args: os.Args[3:]}
	var want int
	switch cmd.name {
	case "hierarchy", "counts", "inventories":
		want = 0
	case "reflow":
		want = 2
	default:
		usage(fmt.Sprintf("Unknown command %q", cmd.name))
	}
	if len(cmd.args) != want {
		usage(fmt.Sprintf("The %q command takes %d argument(s)", cmd.name, want))
	}

	var c, err = config.Read(os.Args[1])
	if err != nil {
		perrf("Invalid configuration: %s", err)
		os.Exit(1)
	}

	return c, cmd
}
