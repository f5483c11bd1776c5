package inventory

import "strings"

// VisitedSet holds the prefixes a Walker has already traversed
type VisitedSet map[string]struct{}

// Has returns true if prefix was already traversed
func (v VisitedSet) Has(prefix string) bool {
	var _, ok = v[prefix]
	return ok
}

// Add marks prefix as traversed
func (v VisitedSet) Add(prefix string) {
	v[prefix] = struct{}{}
}

// Walker builds a Hierarchy from an archive's entries.  Visited is read and
// updated by Walk (and created if nil), so reusing a Walker (or sharing a set
// between walkers) skips prefixes already seen.
type Walker struct {
	Entries []ArchiveEntry
	Visited VisitedSet

	// OnVisit, if set, is called each time a prefix is actually traversed
	OnVisit func(prefix string)
}

// Walk builds a fresh Hierarchy of everything under rootPrefix
func Walk(entries []ArchiveEntry, rootPrefix string) *Hierarchy {
	var w = &Walker{Entries: entries, Visited: make(VisitedSet)}
	return w.Walk(rootPrefix)
}

// frame is one pending folder scan: the prefix being matched and the index of
// the next entry to look at
type frame struct {
	prefix string
	next   int
}

// Walk scans the entry list for everything whose path starts with
// rootPrefix.  Each match is described and stored, and each matching
// directory is scanned in turn (depth first) before the parent scan
// continues.  Prefix matching is a plain string match, not path-segment
// aware, so "a/b" matches "a/bc.txt".
func (w *Walker) Walk(rootPrefix string) *Hierarchy {
	var h = NewHierarchy()
	if !w.enter(rootPrefix) {
		return h
	}

	var stack = []frame{{prefix: rootPrefix}}
	for len(stack) > 0 {
		var top = &stack[len(stack)-1]
		if top.next >= len(w.Entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		var e = w.Entries[top.next]
		top.next++
		if !strings.HasPrefix(e.Path, top.prefix) {
			continue
		}

		h.Set(e.Path, e.describe())
		if e.IsDirectory && w.enter(e.Path) {
			stack = append(stack, frame{prefix: e.Path})
		}
	}

	return h
}

// enter marks prefix as visited, returning false if it already was
func (w *Walker) enter(prefix string) bool {
	if w.Visited == nil {
		w.Visited = make(VisitedSet)
	}
	if w.Visited.Has(prefix) {
		return false
	}
	w.Visited.Add(prefix)
	if w.OnVisit != nil {
		w.OnVisit(prefix)
	}
	return true
}
