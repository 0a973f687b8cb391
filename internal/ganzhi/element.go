// Package ganzhi holds the sexagenary constants: the ten stems, the twelve
// branches, their five-element and yin-yang attributes, and pillars built
// from a stem/branch pair. Every value here is immutable and safe to share.
package ganzhi

import "fmt"

// Element is one of the five phases. The numeric order is also the fixed
// enumeration order used to break ties.
type Element int

// The five elements in enumeration order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// ElementCount is the number of elements.
const ElementCount = 5

var elementNames = [ElementCount]string{"wood", "fire", "earth", "metal", "water"}

var elementKanji = [ElementCount]string{"木", "火", "土", "金", "水"}

// Elements returns all five elements in enumeration order.
func Elements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// NewElement normalises i into the element cycle.
func NewElement(i int) Element {
	return Element(mod(i, ElementCount))
}

// String returns the lower-case English name.
func (e Element) String() string {
	return elementNames[mod(int(e), ElementCount)]
}

// Kanji returns the single-character name.
func (e Element) Kanji() string {
	return elementKanji[mod(int(e), ElementCount)]
}

// Generates returns the element that e produces in the generation cycle
// (wood→fire→earth→metal→water→wood).
func (e Element) Generates() Element {
	return NewElement(int(e) + 1)
}

// Controls returns the element that e overcomes (wood→earth, earth→water,
// water→fire, fire→metal, metal→wood).
func (e Element) Controls() Element {
	return NewElement(int(e) + 2)
}

// MarshalText encodes the element as its English name.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText accepts either the English name or the kanji.
func (e *Element) UnmarshalText(b []byte) error {
	s := string(b)
	for i := range ElementCount {
		if elementNames[i] == s || elementKanji[i] == s {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", s)
}

// Polarity distinguishes yang from yin.
type Polarity int

const (
	// Yang is the even-indexed, outward polarity.
	Yang Polarity = iota
	// Yin is the odd-indexed, inward polarity.
	Yin
)

// String returns "yang" or "yin".
func (p Polarity) String() string {
	if p == Yin {
		return "yin"
	}
	return "yang"
}

// MarshalText encodes the polarity as "yang" or "yin".
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// mod returns the non-negative remainder of i divided by n.
func mod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
