package hidden

import "github.com/papapumpkin/meishiki/internal/ganzhi"

// energyStems is the candidate set used by the energy score. It differs
// from the span table for the four cardinal branches (子卯午酉), which
// contribute only their dominant stems.
var energyStems = [ganzhi.BranchCount][]ganzhi.Stem{
	{ganzhi.StemGui},                                  // 子
	{ganzhi.StemGui, ganzhi.StemXin, ganzhi.StemJi},   // 丑
	{ganzhi.StemWu, ganzhi.StemBing, ganzhi.StemJia},  // 寅
	{ganzhi.StemYi},                                   // 卯
	{ganzhi.StemYi, ganzhi.StemGui, ganzhi.StemWu},    // 辰
	{ganzhi.StemWu, ganzhi.StemGeng, ganzhi.StemBing}, // 巳
	{ganzhi.StemJi, ganzhi.StemDing},                  // 午
	{ganzhi.StemDing, ganzhi.StemYi, ganzhi.StemJi},   // 未
	{ganzhi.StemWu, ganzhi.StemRen, ganzhi.StemGeng},  // 申
	{ganzhi.StemXin},                                  // 酉
	{ganzhi.StemXin, ganzhi.StemDing, ganzhi.StemWu},  // 戌
	{ganzhi.StemJia, ganzhi.StemRen},                  // 亥
}

// EnergyCandidates returns the stems a branch contributes to the energy
// score. The slice is freshly allocated.
func EnergyCandidates(b ganzhi.Branch) []ganzhi.Stem {
	return append([]ganzhi.Stem(nil), energyStems[b.Index()]...)
}
