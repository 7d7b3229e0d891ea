package sculpt

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// CrossSections maps a section identifier to the closed polygon sliced
// from the sculpture at that position. Identifiers carry a numeric
// suffix ("section_007") whose parsed value is the loft adjacency order.
type CrossSections map[string][]r3.Vec

// SectionIndex parses the trailing integer of a section identifier.
// Returns -1 when the identifier carries no numeric suffix.
func SectionIndex(id string) int {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == end {
		return -1
	}
	n, err := strconv.Atoi(id[start:end])
	if err != nil {
		return -1
	}
	return n
}

// SortSectionIDs returns the identifiers ordered by their parsed numeric
// suffix. Identifiers without a suffix sort before the rest, preserving
// their relative lexical order.
func SortSectionIDs(sections CrossSections) []string {
	ids := make([]string, 0, len(sections))
	for id := range sections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := SectionIndex(ids[i]), SectionIndex(ids[j])
		if ni != nj {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Ordered returns the section polygons in loft adjacency order.
func (cs CrossSections) Ordered() [][]r3.Vec {
	ids := SortSectionIDs(cs)
	out := make([][]r3.Vec, 0, len(ids))
	for _, id := range ids {
		out = append(out, cs[id])
	}
	return out
}
