// Package methodology - Documentation estimation formulas
package methodology

import "devcost/core/tables"

// ieeeEstimator follows IEEE 1063 user-documentation effort at 4 hours
// per page (authoring, review, revision).
type ieeeEstimator struct{}

func (e *ieeeEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("ieee")
	return m
}

func (e *ieeeEstimator) Hours(in Input) float64 {
	return in.pages() * 4.0 * in.Complexity
}

// microsoftEstimator follows the Microsoft style-guide production figure of
// 3.5 hours per finished page.
type microsoftEstimator struct{}

func (e *microsoftEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("microsoft")
	return m
}

func (e *microsoftEstimator) Hours(in Input) float64 {
	return in.pages() * 3.5 * in.Complexity
}

// googleEstimator is word-driven: 0.008 hours per word (125 finished
// words per hour including review).
type googleEstimator struct{}

func (e *googleEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("google")
	return m
}

func (e *googleEstimator) Hours(in Input) float64 {
	words := float64(in.DocWords)
	if words <= 0 {
		// Back-derive words from the resolved page count.
		words = in.pages() * 500.0
	}
	return words * 0.008 * in.Complexity
}
