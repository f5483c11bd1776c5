package inventory

import "strings"

// FolderType is the type given to every directory entry
const FolderType = "folder"

// Classify returns "folder" for directories, and the lowercased text after
// the final "." for anything else.  A path with no "." at all is returned
// whole (lowercased), so "Makefile" is of type "makefile".
func Classify(path string, isDir bool) string {
	if isDir {
		return FolderType
	}
	return strings.ToLower(path[strings.LastIndex(path, ".")+1:])
}
