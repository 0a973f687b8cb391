package ganzhi

import "fmt"

// StemCount is the length of the stem cycle.
const StemCount = 10

var stemNames = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Stem is a heavenly stem, 0 (甲) through 9 (癸).
type Stem int

// The ten stems.
const (
	StemJia Stem = iota // 甲
	StemYi              // 乙
	StemBing            // 丙
	StemDing            // 丁
	StemWu              // 戊
	StemJi              // 己
	StemGeng            // 庚
	StemXin             // 辛
	StemRen             // 壬
	StemGui             // 癸
)

// NewStem normalises any integer into the stem cycle, so -1 becomes 癸.
func NewStem(i int) Stem {
	return Stem(mod(i, StemCount))
}

// ParseStem looks up a stem by its kanji.
func ParseStem(s string) (Stem, error) {
	for i, name := range stemNames {
		if name == s {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stem %q", s)
}

// Index returns the 0-9 position.
func (s Stem) Index() int {
	return mod(int(s), StemCount)
}

// String returns the kanji.
func (s Stem) String() string {
	return stemNames[s.Index()]
}

// Element returns the stem's phase; stems come in pairs per element.
func (s Stem) Element() Element {
	return Element(s.Index() / 2)
}

// Polarity reports yang for even-indexed stems.
func (s Stem) Polarity() Polarity {
	if s.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

// IsYang reports whether the stem is yang.
func (s Stem) IsYang() bool {
	return s.Polarity() == Yang
}

// Forward reports the stem's direction through the twelve stages. Yang
// stems advance through the branches, yin stems retreat.
func (s Stem) Forward() bool {
	return s.IsYang()
}

// Add steps n positions around the stem cycle.
func (s Stem) Add(n int) Stem {
	return NewStem(s.Index() + n)
}

// MarshalText encodes the stem as its kanji.
func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a stem from its kanji.
func (s *Stem) UnmarshalText(b []byte) error {
	v, err := ParseStem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
