package inventory

// TypeCount is the number of hierarchy entries of a single type
type TypeCount struct {
	Type  string
	Count int
}

// CountTypes tallies h's entries by type, in the order each type first
// appears
func CountTypes(h *Hierarchy) []TypeCount {
	var counts []TypeCount
	var seen = make(map[string]int)
	h.Each(func(_ string, d EntryDescriptor) {
		var i, ok = seen[d.Type]
		if !ok {
			i = len(counts)
			seen[d.Type] = i
			counts = append(counts, TypeCount{Type: d.Type})
		}
		counts[i].Count++
	})
	return counts
}
