// Package entities contains core business entities.
package entities

// Algorithm selects how teams are ordered before distribution.
type Algorithm string

const (
	// AlgorithmBalanced shuffles before distributing. It currently behaves
	// exactly like AlgorithmRandom; no seed or skill balancing is applied.
	AlgorithmBalanced Algorithm = "balanced"
	// AlgorithmRandom shuffles before distributing.
	AlgorithmRandom Algorithm = "random"
	// AlgorithmSequential keeps the roster order.
	AlgorithmSequential Algorithm = "sequential"
)

// ParseAlgorithm maps a raw value to an Algorithm, defaulting to balanced.
func ParseAlgorithm(s string) Algorithm {
	switch Algorithm(s) {
	case AlgorithmRandom:
		return AlgorithmRandom
	case AlgorithmSequential:
		return AlgorithmSequential
	default:
		return AlgorithmBalanced
	}
}

// Group is a disjoint subset of the roster produced for bracket purposes.
type Group struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Teams []TeamRecord `json:"teams"`
}

// Grouping is the result of partitioning a roster snapshot. GroupSize is the
// target size ceil(totalTeams/groups), not a per-group cap.
type Grouping struct {
	Groups     []Group   `json:"groups"`
	TotalTeams int       `json:"totalTeams"`
	GroupSize  int       `json:"groupSize"`
	Algorithm  Algorithm `json:"algorithm"`
}
