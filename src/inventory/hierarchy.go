package inventory

// Hierarchy maps archive paths to their descriptors, remembering the order in
// which paths were first added
type Hierarchy struct {
	paths       []string
	descriptors map[string]EntryDescriptor
}

// NewHierarchy returns an empty, ready-to-use Hierarchy
func NewHierarchy() *Hierarchy {
	return &Hierarchy{descriptors: make(map[string]EntryDescriptor)}
}

// Set stores the descriptor for path.  A path which is already present keeps
// its original position but takes the new descriptor.
func (h *Hierarchy) Set(path string, d EntryDescriptor) {
	var _, ok = h.descriptors[path]
	if !ok {
		h.paths = append(h.paths, path)
	}
	h.descriptors[path] = d
}

// Get returns the descriptor for path, if there is one
func (h *Hierarchy) Get(path string) (EntryDescriptor, bool) {
	var d, ok = h.descriptors[path]
	return d, ok
}

// Len is the number of distinct paths
func (h *Hierarchy) Len() int {
	return len(h.paths)
}

// Paths returns a copy of the paths in insertion order
func (h *Hierarchy) Paths() []string {
	var out = make([]string, len(h.paths))
	copy(out, h.paths)
	return out
}

// Each calls fn for every path in insertion order
func (h *Hierarchy) Each(fn func(path string, d EntryDescriptor)) {
	for _, p := range h.paths {
		fn(p, h.descriptors[p])
	}
}
