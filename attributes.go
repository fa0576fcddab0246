// Package crossterm provides the value types used to describe styled
// terminal text. The central type is [Attributes], a bitset tracking which
// styling attributes are enabled for a piece of text.
package crossterm

import (
	"iter"
	"math/bits"
	"strings"
)

// Attributes is a bitset over every [Attribute]. The zero value is the empty
// set.
//
// Attributes is a plain scalar with value semantics: copies are independent,
// the pure operations ([Attributes.With], [Attributes.Union], ...) return new
// values, and only the pointer-receiver operations ([Attributes.Set],
// [Attributes.Toggle], ...) modify the receiver. Because [Attribute] values
// are themselves bitmasks, converting one with Attributes(attr) yields the
// singleton set, and the native &, | and ^ operators between two Attributes
// values are exactly [Attributes.Intersection], [Attributes.Union] and
// [Attributes.SymmetricDifference].
type Attributes uint32

// AttrNone is the empty attribute set.
const AttrNone Attributes = 0

// NewAttributes returns the set containing the given attributes. Duplicates
// are harmless and order does not matter.
func NewAttributes(attrs ...Attribute) Attributes {
	var set Attributes
	for _, attr := range attrs {
		set.Set(attr)
	}
	return set
}

// With returns a copy of the set with the given attribute set. If it is
// already set, the result equals the receiver.
func (a Attributes) With(attr Attribute) Attributes {
	return a | Attributes(attr)
}

// Without returns a copy of the set with the given attribute unset. If it is
// not set, the result equals the receiver.
func (a Attributes) Without(attr Attribute) Attributes {
	return a &^ Attributes(attr)
}

// Set sets the attribute. If it is already set, this does nothing.
func (a *Attributes) Set(attr Attribute) {
	*a |= Attributes(attr)
}

// Unset unsets the attribute. If it is not set, this does nothing.
func (a *Attributes) Unset(attr Attribute) {
	*a &^= Attributes(attr)
}

// Toggle sets the attribute if it is unset, and unsets it if it is set.
func (a *Attributes) Toggle(attr Attribute) {
	*a ^= Attributes(attr)
}

// Extend sets every attribute present in other. It never unsets anything.
func (a *Attributes) Extend(other Attributes) {
	*a |= other
}

// Has reports whether the attribute is set.
func (a Attributes) Has(attr Attribute) bool {
	return a&Attributes(attr) != 0
}

// IsEmpty reports whether no attribute is set.
func (a Attributes) IsEmpty() bool {
	return a == 0
}

// Intersects reports whether the two sets share at least one attribute. It is
// always false when either set is empty.
func (a Attributes) Intersects(other Attributes) bool {
	return a&other != 0
}

// Contains reports whether every attribute in other is also in a.
func (a Attributes) Contains(other Attributes) bool {
	return a&other == other
}

// Intersection returns the attributes contained in both a and other.
//
// This is equivalent to using the & operator.
func (a Attributes) Intersection(other Attributes) Attributes {
	return a & other
}

// Union returns the combined attributes of a and other.
//
// This is equivalent to using the | operator.
func (a Attributes) Union(other Attributes) Attributes {
	return a | other
}

// Difference returns the attributes present in a that are not present in
// other.
func (a Attributes) Difference(other Attributes) Attributes {
	return a &^ other
}

// SymmetricDifference returns the attributes present in a or other, but not
// present in both.
//
// This is equivalent to using the ^ operator.
func (a Attributes) SymmetricDifference(other Attributes) Attributes {
	return a ^ other
}

// Len returns the number of attributes in the set.
func (a Attributes) Len() int {
	return bits.OnesCount32(uint32(a))
}

// Iter returns an iterator over the attributes in the set, in the order of
// [AllAttributes]. The iterator is rebuilt from the current value on every
// call, so it can be ranged over any number of times.
func (a Attributes) Iter() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, attr := range allAttributes {
			if a.Has(attr) && !yield(attr) {
				return
			}
		}
	}
}

// String returns the names of the set attributes joined by "|", or "AttrNone"
// for the empty set.
func (a Attributes) String() string {
	if a.IsEmpty() {
		return "AttrNone"
	}
	var sb strings.Builder
	for attr := range a.Iter() {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(attr.String())
	}
	return sb.String()
}
