// Package pass implements the pass abstraction and the dependency-ordered
// registry described in spec.md §4.3.
package pass

// Phase orders pass execution within the pipeline driver (spec.md §4.3/§4.10).
type Phase int

const (
	Index Phase = iota
	LocalRules
	Global
	Semantic
	Reporting
)

// String renders a Phase for logging.
func (p Phase) String() string {
	switch p {
	case Index:
		return "Index"
	case LocalRules:
		return "LocalRules"
	case Global:
		return "Global"
	case Semantic:
		return "Semantic"
	case Reporting:
		return "Reporting"
	default:
		return "Unknown"
	}
}
