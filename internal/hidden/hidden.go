// Package hidden resolves the stems concealed inside each branch. A branch
// governs roughly a month; its span is divided among two or three stems,
// and the stem active on a given day depends on how many days have passed
// since the month's solar term.
package hidden

import (
	"fmt"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// Role tags an entry's position within its branch.
type Role int

const (
	// Initial is the residual stem carried over from the previous month.
	Initial Role = iota
	// Middle is the transitional stem of a three-stem branch.
	Middle
	// Main is the branch's principal stem, always the last entry.
	Main
)

var roleNames = [...]string{"initial", "middle", "main"}

var roleKanji = [...]string{"初元", "中元", "本元"}

// String returns the English tag.
func (r Role) String() string {
	if !r.valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Kanji returns the traditional label.
func (r Role) Kanji() string {
	if !r.valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleKanji[r]
}

func (r Role) valid() bool {
	return r >= Initial && r <= Main
}

// MarshalText encodes the role as its English tag.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Entry is one hidden stem and the number of days it governs.
type Entry struct {
	Stem ganzhi.Stem `json:"stem"`
	Days int         `json:"days"`
	Role Role        `json:"role"`
}

type span struct {
	stem ganzhi.Stem
	days int
}

// spans lists each branch's hidden stems in order, Main last. Every row
// sums to SpanTotal.
var spans = [ganzhi.BranchCount][]span{
	{{ganzhi.StemRen, 10}, {ganzhi.StemGui, 21}},                        // 子
	{{ganzhi.StemGui, 9}, {ganzhi.StemXin, 3}, {ganzhi.StemJi, 19}},     // 丑
	{{ganzhi.StemWu, 7}, {ganzhi.StemBing, 7}, {ganzhi.StemJia, 17}},    // 寅
	{{ganzhi.StemJia, 10}, {ganzhi.StemYi, 21}},                         // 卯
	{{ganzhi.StemYi, 9}, {ganzhi.StemGui, 3}, {ganzhi.StemWu, 19}},      // 辰
	{{ganzhi.StemWu, 5}, {ganzhi.StemGeng, 9}, {ganzhi.StemBing, 17}},   // 巳
	{{ganzhi.StemBing, 10}, {ganzhi.StemDing, 9}, {ganzhi.StemJi, 12}},  // 午
	{{ganzhi.StemDing, 9}, {ganzhi.StemYi, 3}, {ganzhi.StemJi, 19}},     // 未
	{{ganzhi.StemWu, 7}, {ganzhi.StemRen, 7}, {ganzhi.StemGeng, 17}},    // 申
	{{ganzhi.StemGeng, 10}, {ganzhi.StemXin, 21}},                       // 酉
	{{ganzhi.StemXin, 9}, {ganzhi.StemDing, 3}, {ganzhi.StemWu, 19}},    // 戌
	{{ganzhi.StemJia, 7}, {ganzhi.StemRen, 24}},                         // 亥
}

// SpanTotal is the number of days every branch's entries add up to.
const SpanTotal = 31

// Entries returns the branch's full candidate list in span order, Main
// last. The slice is freshly allocated.
func Entries(b ganzhi.Branch) []Entry {
	row := spans[b.Index()]
	out := make([]Entry, len(row))
	for i, s := range row {
		out[i] = Entry{Stem: s.stem, Days: s.days, Role: roleAt(i, len(row))}
	}
	return out
}

// Resolve returns the entry active elapsed days after the branch's solar
// term: the first entry whose cumulative span exceeds elapsed. Elapsed
// values past the span fall back to Main.
func Resolve(b ganzhi.Branch, elapsed int) Entry {
	entries := Entries(b)
	cum := 0
	for _, e := range entries {
		cum += e.Days
		if cum > elapsed {
			return e
		}
	}
	return entries[len(entries)-1]
}

// MainStem returns the branch's principal stem regardless of date.
func MainStem(b ganzhi.Branch) ganzhi.Stem {
	row := spans[b.Index()]
	return row[len(row)-1].stem
}

func roleAt(i, n int) Role {
	switch {
	case i == n-1:
		return Main
	case i == 0:
		return Initial
	default:
		return Middle
	}
}
