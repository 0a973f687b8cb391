package relation

import "github.com/papapumpkin/meishiki/internal/ganzhi"

// Category groups phase labels by their broad effect.
type Category string

// Phase categories.
const (
	CategoryHarmony Category = "harmony" // fusion: combinations and partnerships
	CategoryClash   Category = "clash"   // opposition
	CategorySpecial Category = "special" // notable special-case pairings
	CategoryCaution Category = "caution" // punishments, harms, breaks
)

// Kind identifies a phase relation.
type Kind string

// Phase kinds, named by their romanised reading.
const (
	KindTenkokuChichu Kind = "tenkoku_chichu" // 天剋地冲
	KindTaichu        Kind = "taichu"         // 対冲
	KindNacchin       Kind = "nacchin"        // 納音
	KindRicchin       Kind = "ricchin"        // 律音
	KindKangoShigo    Kind = "kango_shigo"    // 干合支合
	KindKangoShigai   Kind = "kango_shigai"   // 干合支害
	KindKango         Kind = "kango"          // 干合
	KindShigo         Kind = "shigo"          // 支合
	KindKei           Kind = "kei"            // 刑 (see Phase.Name for the variant)
	KindGai           Kind = "gai"            // 害
	KindHa            Kind = "ha"             // 破
	KindHankai        Kind = "hankai"         // 半会
)

// Phase is one label applied to a pillar pair.
type Phase struct {
	Kind     Kind     `json:"kind"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// harmPairs lists the 害 pairs by lower branch index.
var harmPairs = map[[2]int]bool{
	{0, 7}: true, {1, 6}: true, {2, 5}: true, {3, 4}: true, {8, 11}: true, {9, 10}: true,
}

// breakPairs lists the 破 pairs by lower branch index.
var breakPairs = map[[2]int]bool{
	{0, 9}: true, {1, 4}: true, {2, 11}: true, {3, 6}: true, {5, 8}: true, {7, 10}: true,
}

func ordered(a, b ganzhi.Branch) [2]int {
	x, y := a.Index(), b.Index()
	if x > y {
		x, y = y, x
	}
	return [2]int{x, y}
}

// BranchHarm reports whether two branches harm each other (害).
func BranchHarm(a, b ganzhi.Branch) bool {
	return harmPairs[ordered(a, b)]
}

// BranchBreak reports whether two branches break each other (破).
func BranchBreak(a, b ganzhi.Branch) bool {
	return breakPairs[ordered(a, b)]
}

// Punishment returns the name of the 刑 variant between two branches, or
// "" when they do not punish each other.
func Punishment(a, b ganzhi.Branch) string {
	x, y := a.Index(), b.Index()
	in := func(set ...ganzhi.Branch) bool {
		var hx, hy bool
		for _, s := range set {
			hx = hx || s.Index() == x
			hy = hy || s.Index() == y
		}
		return hx && hy && x != y
	}
	switch {
	case in(ganzhi.BranchZi, ganzhi.BranchMao):
		return "旺気刑"
	case in(ganzhi.BranchYin, ganzhi.BranchSi, ganzhi.BranchShen):
		return "生貴刑"
	case in(ganzhi.BranchChou, ganzhi.BranchXu, ganzhi.BranchWei):
		return "庫気刑"
	}
	if x == y {
		switch ganzhi.NewBranch(x) {
		case ganzhi.BranchChen, ganzhi.BranchWu, ganzhi.BranchYou, ganzhi.BranchHai:
			return "自刑"
		}
	}
	return ""
}

// Phases labels the relation between two pillars. Labels appear in a
// fixed order: clashes, same-stem specials, combinations, partnership,
// punishment, harm, break, half triad.
func Phases(a, b ganzhi.Pillar) []Phase {
	var out []Phase
	add := func(k Kind, name string, c Category) {
		out = append(out, Phase{Kind: k, Name: name, Category: c})
	}

	stemDiff := a.Stem.Index() - b.Stem.Index()
	if stemDiff < 0 {
		stemDiff = -stemDiff
	}
	sameStem := stemDiff == 0
	clash := BranchClash(a.Branch, b.Branch)
	partner := BranchPartnership(a.Branch, b.Branch).Matched
	harm := BranchHarm(a.Branch, b.Branch)

	switch {
	case clash && (stemDiff == 4 || stemDiff == 6):
		add(KindTenkokuChichu, "天剋地冲", CategoryClash)
	case clash:
		add(KindTaichu, "対冲", CategoryClash)
	}
	if sameStem && clash {
		add(KindNacchin, "納音", CategorySpecial)
	}
	if sameStem && a.Branch.Index() == b.Branch.Index() {
		add(KindRicchin, "律音", CategorySpecial)
	}

	kangoShigo := false
	kangoShigai := false
	if stemDiff == 5 {
		switch {
		case partner:
			add(KindKangoShigo, "干合支合", CategoryHarmony)
			kangoShigo = true
		case harm:
			add(KindKangoShigai, "干合支害", CategorySpecial)
			kangoShigai = true
		default:
			add(KindKango, "干合", CategoryHarmony)
		}
	}
	if partner && !kangoShigo {
		add(KindShigo, "支合", CategoryHarmony)
	}
	if name := Punishment(a.Branch, b.Branch); name != "" {
		add(KindKei, name, CategoryCaution)
	}
	if harm && !kangoShigai {
		add(KindGai, "害", CategoryCaution)
	}
	if BranchBreak(a.Branch, b.Branch) && !clash {
		add(KindHa, "破", CategoryCaution)
	}
	if sameTriad(a.Branch, b.Branch) {
		add(KindHankai, "半会", CategoryHarmony)
	}
	return out
}
