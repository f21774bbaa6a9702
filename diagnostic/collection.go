package diagnostic

import "sort"

// Collection is an ordered list of diagnostics with the stable sort rules
// from spec.md §6: lexicographic by (file, line, column, code), with a
// missing location treated as ("", 0, 0).
type Collection struct {
	Items []Diagnostic
}

// Add appends one diagnostic. Implements Sink so *session.Session can embed
// a Collection and satisfy diagnostic.Sink directly.
func (c *Collection) Add(d Diagnostic) {
	c.Items = append(c.Items, d)
}

// AddDiagnostic satisfies the Sink interface.
func (c *Collection) AddDiagnostic(d Diagnostic) { c.Add(d) }

// Extend appends every diagnostic from other, preserving other's order.
func (c *Collection) Extend(other Collection) {
	c.Items = append(c.Items, other.Items...)
}

// Sort restores the stable (file, line, column, code) ordering in place.
func (c *Collection) Sort() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		return Less(c.Items[i], c.Items[j])
	})
}

// Less implements the stable ordering contract directly, for callers (the
// workspace merger) that merge several collections before a single sort.
func Less(a, b Diagnostic) bool {
	af, al, ac := locFields(a)
	bf, bl, bc := locFields(b)
	if af != bf {
		return af < bf
	}
	if al != bl {
		return al < bl
	}
	if ac != bc {
		return ac < bc
	}
	return a.Code < b.Code
}

func locFields(d Diagnostic) (string, int, int) {
	if d.Location == nil {
		return "", 0, 0
	}
	return d.Location.File, d.Location.Line, d.Location.Column
}
