package inventory

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/uoregon-libraries/gopkg/logger"
)

// Separators and labels of the text form
const (
	PathSeparator  = " - "
	FieldSeparator = ", "
	TypeLabel      = "Type: "
	DateLabel      = "Modified Date: "
)

// FormatLine renders a single hierarchy entry in its text form
func FormatLine(path string, d EntryDescriptor) string {
	return path + PathSeparator + TypeLabel + d.Type + FieldSeparator + DateLabel + d.ModifiedAt
}

// Serialize returns one line (without a newline) per entry in h
func Serialize(h *Hierarchy) []string {
	var lines = make([]string, 0, h.Len())
	h.Each(func(path string, d EntryDescriptor) {
		lines = append(lines, FormatLine(path, d))
	})
	return lines
}

// Write sends the text form of h to w, each line newline-terminated
func Write(w io.Writer, h *Hierarchy) error {
	var bw = bufio.NewWriter(w)
	for _, line := range Serialize(h) {
		var _, err = bw.WriteString(line + "\n")
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decoded is a Hierarchy read back from text, along with the number of
// non-blank lines that couldn't be parsed
type Decoded struct {
	*Hierarchy
	Skipped int
}

// Deserialize parses lines produced by Serialize.  Lines that don't have
// exactly one path separator, or whose info part doesn't have exactly one
// field separator, are skipped and counted.  The "Type: " and "Modified
// Date: " labels are stripped when present, so Deserialize(Serialize(h))
// matches h exactly.  Only a trailing carriage return is removed from each
// line; paths may start or end with spaces, and may be empty.
func Deserialize(lines []string) *Decoded {
	var d = &Decoded{Hierarchy: NewHierarchy()}
	for index, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		var path, desc, err = parseLine(line)
		if err != nil {
			logger.Warnf("Skipping hierarchy line #%d: %s", index+1, err)
			d.Skipped++
			continue
		}
		d.Set(path, desc)
	}

	return d
}

// Read deserializes everything r has to offer
func Read(r io.Reader) (*Decoded, error) {
	var lines []string
	var s = bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if s.Err() != nil {
		return nil, s.Err()
	}
	return Deserialize(lines), nil
}

func parseLine(line string) (path string, d EntryDescriptor, err error) {
	var parts = strings.Split(line, PathSeparator)
	if len(parts) != 2 {
		return "", d, fmt.Errorf("expected one %q separator, found %d", PathSeparator, len(parts)-1)
	}

	var info = strings.Split(parts[1], FieldSeparator)
	if len(info) != 2 {
		return "", d, fmt.Errorf("expected one %q separator in %q, found %d", FieldSeparator, parts[1], len(info)-1)
	}

	d.Type = strings.TrimPrefix(info[0], TypeLabel)
	d.ModifiedAt = strings.TrimPrefix(info[1], DateLabel)
	return parts[0], d, nil
}
