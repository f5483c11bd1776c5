// Package inventory turns a ZIP archive's entry list into an ordered
// hierarchy of paths, types, and modification dates, and handles the
// line-oriented text form that hierarchy is saved in
package inventory

import "time"

// TimeFormat is how modification timestamps are rendered in descriptors
const TimeFormat = "2006-01-02 15:04:05"

// ArchiveEntry is a single file or folder listed in an archive's directory.
// Paths are "/"-separated, and folder paths end in "/".
type ArchiveEntry struct {
	Path        string
	IsDirectory bool
	ModifiedAt  time.Time
}

// EntryDescriptor holds what we know about one path in a Hierarchy
type EntryDescriptor struct {
	Type       string
	ModifiedAt string
}

// describe classifies the entry and formats its timestamp
func (e ArchiveEntry) describe() EntryDescriptor {
	return EntryDescriptor{
		Type:       Classify(e.Path, e.IsDirectory),
		ModifiedAt: e.ModifiedAt.Format(TimeFormat),
	}
}
