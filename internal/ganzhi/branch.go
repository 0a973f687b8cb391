package ganzhi

import "fmt"

// BranchCount is the length of the branch cycle.
const BranchCount = 12

var branchNames = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchElements = [BranchCount]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// Branch is an earthly branch, 0 (子) through 11 (亥).
type Branch int

// The twelve branches.
const (
	BranchZi Branch = iota // 子
	BranchChou             // 丑
	BranchYin              // 寅
	BranchMao              // 卯
	BranchChen             // 辰
	BranchSi               // 巳
	BranchWu               // 午
	BranchWei              // 未
	BranchShen             // 申
	BranchYou              // 酉
	BranchXu               // 戌
	BranchHai              // 亥
)

// NewBranch normalises any integer into the branch cycle.
func NewBranch(i int) Branch {
	return Branch(mod(i, BranchCount))
}

// ParseBranch looks up a branch by its kanji.
func ParseBranch(s string) (Branch, error) {
	for i, name := range branchNames {
		if name == s {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown branch %q", s)
}

// Index returns the 0-11 position.
func (b Branch) Index() int {
	return mod(int(b), BranchCount)
}

// String returns the kanji.
func (b Branch) String() string {
	return branchNames[b.Index()]
}

// Element returns the branch's own phase.
func (b Branch) Element() Element {
	return branchElements[b.Index()]
}

// Polarity reports yang for even-indexed branches.
func (b Branch) Polarity() Polarity {
	if b.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

// Add steps n positions around the branch cycle.
func (b Branch) Add(n int) Branch {
	return NewBranch(b.Index() + n)
}

// MarshalText encodes the branch as its kanji.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a branch from its kanji.
func (b *Branch) UnmarshalText(data []byte) error {
	v, err := ParseBranch(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
