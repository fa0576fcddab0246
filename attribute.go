package crossterm

import "strconv"

// Attribute is a single boolean text styling capability, such as bold or
// italic. Each attribute occupies its own bit, so any combination of them
// fits in an [Attributes] bitset.
//
// Terminal support for individual attributes varies widely.
type Attribute uint32

const (
	AttrReset Attribute = 1 << iota
	AttrBold
	AttrDim
	AttrItalic
	AttrUnderlined
	AttrDoubleUnderlined
	AttrUndercurled
	AttrUnderdotted
	AttrUnderdashed
	AttrSlowBlink
	AttrRapidBlink
	AttrReverse
	AttrHidden
	AttrCrossedOut
	AttrFraktur
	AttrNoBold
	AttrNormalIntensity
	AttrNoItalic
	AttrNoUnderline
	AttrNoBlink
	AttrNoReverse
	AttrNoHidden
	AttrNotCrossedOut
	AttrFramed
	AttrEncircled
	AttrOverLined
	AttrNotFramedOrEncircled
	AttrNotOverLined
)

// allAttributes holds every attribute in declaration order. It is the
// canonical enumeration behind [AllAttributes] and [Attributes.Iter].
var allAttributes = [...]Attribute{
	AttrReset,
	AttrBold,
	AttrDim,
	AttrItalic,
	AttrUnderlined,
	AttrDoubleUnderlined,
	AttrUndercurled,
	AttrUnderdotted,
	AttrUnderdashed,
	AttrSlowBlink,
	AttrRapidBlink,
	AttrReverse,
	AttrHidden,
	AttrCrossedOut,
	AttrFraktur,
	AttrNoBold,
	AttrNormalIntensity,
	AttrNoItalic,
	AttrNoUnderline,
	AttrNoBlink,
	AttrNoReverse,
	AttrNoHidden,
	AttrNotCrossedOut,
	AttrFramed,
	AttrEncircled,
	AttrOverLined,
	AttrNotFramedOrEncircled,
	AttrNotOverLined,
}

// AllAttributes returns every known attribute in a fixed, repeatable order.
// The order is stable across calls but carries no meaning beyond that.
func AllAttributes() []Attribute {
	attrs := make([]Attribute, len(allAttributes))
	copy(attrs, allAttributes[:])
	return attrs
}

// String returns the name of the attribute, for debugging. It is not an
// escape sequence.
func (a Attribute) String() string {
	switch a {
	case AttrReset:
		return "Reset"
	case AttrBold:
		return "Bold"
	case AttrDim:
		return "Dim"
	case AttrItalic:
		return "Italic"
	case AttrUnderlined:
		return "Underlined"
	case AttrDoubleUnderlined:
		return "DoubleUnderlined"
	case AttrUndercurled:
		return "Undercurled"
	case AttrUnderdotted:
		return "Underdotted"
	case AttrUnderdashed:
		return "Underdashed"
	case AttrSlowBlink:
		return "SlowBlink"
	case AttrRapidBlink:
		return "RapidBlink"
	case AttrReverse:
		return "Reverse"
	case AttrHidden:
		return "Hidden"
	case AttrCrossedOut:
		return "CrossedOut"
	case AttrFraktur:
		return "Fraktur"
	case AttrNoBold:
		return "NoBold"
	case AttrNormalIntensity:
		return "NormalIntensity"
	case AttrNoItalic:
		return "NoItalic"
	case AttrNoUnderline:
		return "NoUnderline"
	case AttrNoBlink:
		return "NoBlink"
	case AttrNoReverse:
		return "NoReverse"
	case AttrNoHidden:
		return "NoHidden"
	case AttrNotCrossedOut:
		return "NotCrossedOut"
	case AttrFramed:
		return "Framed"
	case AttrEncircled:
		return "Encircled"
	case AttrOverLined:
		return "OverLined"
	case AttrNotFramedOrEncircled:
		return "NotFramedOrEncircled"
	case AttrNotOverLined:
		return "NotOverLined"
	}
	return "Attribute(0x" + strconv.FormatUint(uint64(a), 16) + ")"
}
