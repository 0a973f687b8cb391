// Package voidperiod resolves the void period (天中殺): the two branches
// left unpaired in the ten-pillar group (旬) that contains a pillar.
package voidperiod

import "github.com/papapumpkin/meishiki/internal/ganzhi"

// Pair is the two void branches, in cycle order.
type Pair struct {
	First  ganzhi.Branch
	Second ganzhi.Branch
}

// groupPairs is indexed by sexagenary index / 10. Each group shifts the
// void pair back by two branches.
var groupPairs = [6]Pair{
	{ganzhi.BranchXu, ganzhi.BranchHai},
	{ganzhi.BranchShen, ganzhi.BranchYou},
	{ganzhi.BranchWu, ganzhi.BranchWei},
	{ganzhi.BranchChen, ganzhi.BranchSi},
	{ganzhi.BranchYin, ganzhi.BranchMao},
	{ganzhi.BranchZi, ganzhi.BranchChou},
}

// ForIndex returns the void pair of the group containing sexagenary index
// i, normalised mod 60.
func ForIndex(i int) Pair {
	i %= ganzhi.CycleLength
	if i < 0 {
		i += ganzhi.CycleLength
	}
	return groupPairs[i/10]
}

// ForPillar derives the void pair directly from a pillar's stem and
// branch. The group's first branch sits stem-index places before the
// pillar's branch, so the void pair is the two branches preceding it.
// It agrees with ForIndex on every valid pillar.
func ForPillar(p ganzhi.Pillar) Pair {
	diff := (p.Branch.Index() - p.Stem.Index() + 12) % 12
	return Pair{
		First:  ganzhi.NewBranch(diff + 10),
		Second: ganzhi.NewBranch(diff + 11),
	}
}

// String returns the pair as two kanji, e.g. "戌亥".
func (p Pair) String() string {
	return p.First.String() + p.Second.String()
}

// Name returns the traditional label, e.g. "戌亥天中殺".
func (p Pair) Name() string {
	return p.String() + "天中殺"
}

// Contains reports whether b is one of the pair.
func (p Pair) Contains(b ganzhi.Branch) bool {
	return b.Index() == p.First.Index() || b.Index() == p.Second.Index()
}

// MarshalText encodes the pair as its two-kanji string.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// IsBranchVoid reports whether b is void for the holder of day pillar.
func IsBranchVoid(day ganzhi.Pillar, b ganzhi.Branch) bool {
	return ForPillar(day).Contains(b)
}

// IsIndexVoid reports whether the pillar at sexagenary index target falls
// in the void of the holder of day pillar. A pillar is void when its
// branch is.
func IsIndexVoid(day ganzhi.Pillar, target int) bool {
	return IsBranchVoid(day, ganzhi.PillarAt(target).Branch)
}
