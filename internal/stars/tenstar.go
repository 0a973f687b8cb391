// Package stars places the ten main stars and the twelve subsidiary stars
// on the body chart. Ten stars compare the day stem with another stem;
// twelve stars place a branch in the day stem's life-stage sequence.
package stars

import (
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/hidden"
)

// TenStar is one of the ten main stars. Its value is 2·distance plus 1
// when the polarities differ, where distance is the element step from the
// day stem to the target stem.
type TenStar int

var tenStarNames = [10]string{
	"貫索星", "石門星", // same element
	"鳳閣星", "調舒星", // day element generates
	"禄存星", "司禄星", // day element controls
	"車騎星", "牽牛星", // target controls day
	"龍高星", "玉堂星", // target generates day
}

// TenStarOf returns the star the target stem forms against the day stem.
func TenStarOf(day, target ganzhi.Stem) TenStar {
	dist := (target.Index()/2 - day.Index()/2 + 5) % 5
	star := dist * 2
	if day.Polarity() != target.Polarity() {
		star++
	}
	return TenStar(star)
}

// Index returns the star number normalised to 0..9.
func (s TenStar) Index() int {
	return (int(s)%10 + 10) % 10
}

// String returns the star's kanji name.
func (s TenStar) String() string {
	return tenStarNames[s.Index()]
}

// SamePolarity reports whether the star is the same-polarity member of
// its pair.
func (s TenStar) SamePolarity() bool {
	return s.Index()%2 == 0
}

// MarshalText encodes the star as its kanji name.
func (s TenStar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TenStarChart holds the five body positions.
type TenStarChart struct {
	Head      TenStar `json:"head"`
	Chest     TenStar `json:"chest"`
	Belly     TenStar `json:"belly"`
	RightHand TenStar `json:"rightHand"`
	LeftHand  TenStar `json:"leftHand"`
}

// PlaceTenStars fills the body positions. Chest and both hands read the
// hidden stem resolved for elapsed days since the birth month's solar term,
// the same elapsed value applied to every branch.
func PlaceTenStars(year, month, day ganzhi.Pillar, elapsed int) TenStarChart {
	d := day.Stem
	return TenStarChart{
		Head:      TenStarOf(d, year.Stem),
		Chest:     TenStarOf(d, hidden.Resolve(month.Branch, elapsed).Stem),
		Belly:     TenStarOf(d, month.Stem),
		RightHand: TenStarOf(d, hidden.Resolve(day.Branch, elapsed).Stem),
		LeftHand:  TenStarOf(d, hidden.Resolve(year.Branch, elapsed).Stem),
	}
}
