// Package tables - Methodology definitions
package tables

// Domain classifies what kind of deliverable a methodology estimates.
type Domain string

const (
	DomainSoftware      Domain = "software"
	DomainDocumentation Domain = "documentation"
	DomainBoth          Domain = "both"
)

// Matches reports whether a methodology in this domain applies to an
// estimation mode ("software", "documentation" or "all").
func (d Domain) Matches(mode string) bool {
	switch mode {
	case "all", "":
		return true
	case string(DomainSoftware):
		return d == DomainSoftware || d == DomainBoth
	case string(DomainDocumentation):
		return d == DomainDocumentation || d == DomainBoth
	}
	return false
}

// Methodology describes one published estimation methodology.
type Methodology struct {
	// ID is the stable lookup key.
	ID string `json:"id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Domain classifies the methodology as software, documentation or both.
	Domain Domain `json:"domain"`

	// Formula is a human-readable description of the calculation.
	Formula string `json:"formula"`
}

// methodologyOrder fixes iteration order for deterministic output.
var methodologyOrder = []string{
	"cocomo",
	"gartner",
	"sei_slim",
	"function_points",
	"pmi",
	"ieee",
	"microsoft",
	"google",
}

// methodologies is the fixed set of 8 supported methodologies.
var methodologies = map[string]Methodology{
	"cocomo": {
		ID:      "cocomo",
		Name:    "COCOMO II",
		Domain:  DomainSoftware,
		Formula: "Effort = 0.5 × KLOC^0.85 × EAF, Hours = Effort × 152",
	},
	"gartner": {
		ID:      "gartner",
		Name:    "Gartner Industry Benchmark",
		Domain:  DomainSoftware,
		Formula: "Hours = KLOC × 15 × complexity",
	},
	"sei_slim": {
		ID:      "sei_slim",
		Name:    "SEI SLIM (Putnam)",
		Domain:  DomainSoftware,
		Formula: "Hours = 12 × KLOC^1.2 × complexity",
	},
	"function_points": {
		ID:      "function_points",
		Name:    "Function Points (IFPUG)",
		Domain:  DomainSoftware,
		Formula: "FP = LOC / 53, Hours = FP × 8 × complexity",
	},
	"pmi": {
		ID:      "pmi",
		Name:    "PMI PMBOK Analogous",
		Domain:  DomainBoth,
		Formula: "Hours = KLOC × 18 × complexity (code) or pages × 2.5 (docs)",
	},
	"ieee": {
		ID:      "ieee",
		Name:    "IEEE 1063 Documentation",
		Domain:  DomainDocumentation,
		Formula: "Hours = pages × 4 × complexity",
	},
	"microsoft": {
		ID:      "microsoft",
		Name:    "Microsoft Style Documentation",
		Domain:  DomainDocumentation,
		Formula: "Hours = pages × 3.5 × complexity",
	},
	"google": {
		ID:      "google",
		Name:    "Google Developer Documentation",
		Domain:  DomainDocumentation,
		Formula: "Hours = words × 0.008 × complexity",
	},
}

// MethodologyByID looks up a methodology definition.
func MethodologyByID(id string) (Methodology, bool) {
	m, ok := methodologies[id]
	return m, ok
}

// AllMethodologies returns every definition in stable order.
func AllMethodologies() []Methodology {
	out := make([]Methodology, 0, len(methodologyOrder))
	for _, id := range methodologyOrder {
		out = append(out, methodologies[id])
	}
	return out
}

// MethodologyIDs returns the valid methodology ids in stable order.
func MethodologyIDs() []string {
	out := make([]string, len(methodologyOrder))
	copy(out, methodologyOrder)
	return out
}
