package ganzhi

import (
	"fmt"
	"unicode/utf8"
)

// CycleLength is the length of the sexagenary cycle, lcm(10, 12).
const CycleLength = 60

// Pillar pairs a stem with a branch. Only pairs of equal parity occur in
// the sexagenary cycle; see Valid.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// PillarAt returns the pillar at sexagenary index i, normalised mod 60.
func PillarAt(i int) Pillar {
	i = mod(i, CycleLength)
	return Pillar{Stem: NewStem(i), Branch: NewBranch(i)}
}

// ParsePillar decodes a two-kanji pillar such as "甲子".
func ParsePillar(s string) (Pillar, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Pillar{}, fmt.Errorf("pillar %q: want two characters", s)
	}
	r, size := utf8.DecodeRuneInString(s)
	stem, err := ParseStem(string(r))
	if err != nil {
		return Pillar{}, fmt.Errorf("pillar %q: %w", s, err)
	}
	branch, err := ParseBranch(s[size:])
	if err != nil {
		return Pillar{}, fmt.Errorf("pillar %q: %w", s, err)
	}
	p := Pillar{Stem: stem, Branch: branch}
	if !p.Valid() {
		return Pillar{}, fmt.Errorf("pillar %q: stem and branch differ in parity", s)
	}
	return p, nil
}

// Valid reports whether the pair occurs in the sexagenary cycle, which
// holds exactly when stem and branch share parity (gcd(10,12) = 2).
func (p Pillar) Valid() bool {
	return p.Stem.Index()%2 == p.Branch.Index()%2
}

// Index solves i ≡ stem (mod 10), i ≡ branch (mod 12) for i in [0, 60).
// It returns -1 for a pair that is not Valid.
func (p Pillar) Index() int {
	if !p.Valid() {
		return -1
	}
	// 6 ≡ 1 (mod 10), 6 ≡ 0 (mod 12); -5 ≡ 0 (mod 10), -5 ≡ 1 (mod 12).
	return mod(6*p.Stem.Index()-5*p.Branch.Index(), CycleLength)
}

// Add steps n positions around the sexagenary cycle, moving stem and
// branch together.
func (p Pillar) Add(n int) Pillar {
	return PillarAt(p.Index() + n)
}

// String returns the two-kanji form.
func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// StemElement returns the element of the stem.
func (p Pillar) StemElement() Element {
	return p.Stem.Element()
}

// BranchElement returns the element of the branch.
func (p Pillar) BranchElement() Element {
	return p.Branch.Element()
}

// Polarity returns the pillar's polarity, which is the stem's.
func (p Pillar) Polarity() Polarity {
	return p.Stem.Polarity()
}
