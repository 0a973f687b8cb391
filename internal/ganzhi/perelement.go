package ganzhi

import "encoding/json"

// Number is the value type a PerElement can hold.
type Number interface {
	~int | ~float64
}

// PerElement holds one value per element, indexed by Element.
type PerElement[T Number] [ElementCount]T

type perElementJSON[T Number] struct {
	Wood  T `json:"wood"`
	Fire  T `json:"fire"`
	Earth T `json:"earth"`
	Metal T `json:"metal"`
	Water T `json:"water"`
}

// Get returns the value for e.
func (p PerElement[T]) Get(e Element) T {
	return p[NewElement(int(e))]
}

// Sum returns the total over all five elements.
func (p PerElement[T]) Sum() T {
	var s T
	for _, v := range p {
		s += v
	}
	return s
}

// Max returns the element with the largest value. Ties go to the earliest
// element in enumeration order.
func (p PerElement[T]) Max() Element {
	best := Wood
	for _, e := range Elements() {
		if p[e] > p[best] {
			best = e
		}
	}
	return best
}

// Min returns the element with the smallest value. Ties go to the earliest
// element in enumeration order.
func (p PerElement[T]) Min() Element {
	best := Wood
	for _, e := range Elements() {
		if p[e] < p[best] {
			best = e
		}
	}
	return best
}

// MarshalJSON encodes the values as an object keyed by element name.
func (p PerElement[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(perElementJSON[T]{p[Wood], p[Fire], p[Earth], p[Metal], p[Water]})
}

// UnmarshalJSON decodes the object form written by MarshalJSON.
func (p *PerElement[T]) UnmarshalJSON(data []byte) error {
	var v perElementJSON[T]
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PerElement[T]{v.Wood, v.Fire, v.Earth, v.Metal, v.Water}
	return nil
}
