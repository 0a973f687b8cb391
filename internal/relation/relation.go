// Package relation implements the five-element relationship engine: the
// generation and control cycles, stem combinations, branch partnerships,
// clashes and triads, and the phase labels applied to a pair of pillars.
//
// No lookup fails. A pair with no relationship yields a zero Match or an
// empty label list.
package relation

import (
	"fmt"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// Relation is the directed relationship from one element to another.
type Relation int

// The five relations, read as "a <relation> b".
const (
	Same Relation = iota
	Generates
	GeneratedBy
	Controls
	ControlledBy
)

var relationNames = [...]string{"same", "generates", "generated_by", "controls", "controlled_by"}

// String returns the snake_case name.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// MarshalText encodes the relation as its snake_case name.
func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Between returns the relation from a to b. Any two distinct elements are
// exactly one step apart in either the generation or the control cycle.
func Between(a, b ganzhi.Element) Relation {
	switch {
	case a == b:
		return Same
	case a.Generates() == b:
		return Generates
	case b.Generates() == a:
		return GeneratedBy
	case a.Controls() == b:
		return Controls
	default:
		return ControlledBy
	}
}

// Match is the result of a pair or group lookup. Element is meaningful
// only when Matched is true and the relationship produces an element.
type Match struct {
	Matched bool           `json:"matched"`
	Element ganzhi.Element `json:"element"`
}

// combinationElements is indexed by the lower stem of a combining pair.
var combinationElements = [5]ganzhi.Element{
	ganzhi.Earth, // 甲己
	ganzhi.Metal, // 乙庚
	ganzhi.Water, // 丙辛
	ganzhi.Wood,  // 丁壬
	ganzhi.Fire,  // 戊癸
}

// StemCombination reports whether two stems combine (干合). Combining
// stems sit five apart.
func StemCombination(a, b ganzhi.Stem) Match {
	lo, hi := a.Index(), b.Index()
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo != 5 {
		return Match{}
	}
	return Match{Matched: true, Element: combinationElements[lo]}
}

// partnershipElements is indexed by the lower branch of a partnered pair.
var partnershipElements = map[int]ganzhi.Element{
	0: ganzhi.Earth, // 子丑
	2: ganzhi.Wood,  // 寅亥
	3: ganzhi.Fire,  // 卯戌
	4: ganzhi.Metal, // 辰酉
	5: ganzhi.Water, // 巳申
	6: ganzhi.Fire,  // 午未
}

// BranchPartnership reports whether two branches partner (支合). Partner
// indices sum to 1 mod 12.
func BranchPartnership(a, b ganzhi.Branch) Match {
	if (a.Index()+b.Index())%12 != 1 {
		return Match{}
	}
	lo := min(a.Index(), b.Index())
	return Match{Matched: true, Element: partnershipElements[lo]}
}

// BranchClash reports whether two branches sit opposite each other (冲).
func BranchClash(a, b ganzhi.Branch) bool {
	return (a.Index()-b.Index()+12)%12 == 6
}

// triads lists the four 三合 groups and the element each forms.
var triads = [4]struct {
	members [3]ganzhi.Branch
	element ganzhi.Element
}{
	{[3]ganzhi.Branch{ganzhi.BranchShen, ganzhi.BranchZi, ganzhi.BranchChen}, ganzhi.Water},
	{[3]ganzhi.Branch{ganzhi.BranchHai, ganzhi.BranchMao, ganzhi.BranchWei}, ganzhi.Wood},
	{[3]ganzhi.Branch{ganzhi.BranchYin, ganzhi.BranchWu, ganzhi.BranchXu}, ganzhi.Fire},
	{[3]ganzhi.Branch{ganzhi.BranchSi, ganzhi.BranchYou, ganzhi.BranchChou}, ganzhi.Metal},
}

// BranchTriad reports whether set contains all three branches of a triad
// group. Extra branches are ignored, so a larger set matches as long as
// one full group is present. Groups are tried in fixed order.
func BranchTriad(set []ganzhi.Branch) Match {
	var present [ganzhi.BranchCount]bool
	for _, b := range set {
		present[b.Index()] = true
	}
	for _, t := range triads {
		if present[t.members[0].Index()] && present[t.members[1].Index()] && present[t.members[2].Index()] {
			return Match{Matched: true, Element: t.element}
		}
	}
	return Match{}
}

// BranchTriadExact is the strict variant of BranchTriad: set must hold
// exactly the three distinct branches of one group.
func BranchTriadExact(set []ganzhi.Branch) Match {
	if len(set) != 3 {
		return Match{}
	}
	if set[0].Index() == set[1].Index() || set[1].Index() == set[2].Index() || set[0].Index() == set[2].Index() {
		return Match{}
	}
	return BranchTriad(set)
}

// sameTriad reports whether two distinct branches belong to one group.
func sameTriad(a, b ganzhi.Branch) bool {
	return a.Index() != b.Index() && a.Index()%4 == b.Index()%4
}
