package relation

import "github.com/papapumpkin/meishiki/internal/ganzhi"

// Summary gathers every relationship between two pillars.
type Summary struct {
	StemRelation      Relation `json:"stemRelation"`
	BranchRelation    Relation `json:"branchRelation"`
	StemCombination   Match    `json:"stemCombination"`
	BranchPartnership Match    `json:"branchPartnership"`
	BranchClash       bool     `json:"branchClash"`
	Phases            []Phase  `json:"phases"`
}

// Describe relates pillar a to pillar b. Element relations read from a to b.
func Describe(a, b ganzhi.Pillar) Summary {
	return Summary{
		StemRelation:      Between(a.StemElement(), b.StemElement()),
		BranchRelation:    Between(a.BranchElement(), b.BranchElement()),
		StemCombination:   StemCombination(a.Stem, b.Stem),
		BranchPartnership: BranchPartnership(a.Branch, b.Branch),
		BranchClash:       BranchClash(a.Branch, b.Branch),
		Phases:            Phases(a, b),
	}
}
