package crossterm

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeBitmasks(t *testing.T) {
	seen := make(map[Attribute]bool)
	for _, attr := range AllAttributes() {
		assert.Equal(t, 1, bits.OnesCount32(uint32(attr)), "%s must occupy exactly one bit", attr)
		assert.False(t, seen[attr], "%s assigned twice", attr)
		seen[attr] = true
	}
	assert.Len(t, seen, len(allAttributes))
}

func TestAllAttributesStable(t *testing.T) {
	assert.Equal(t, AllAttributes(), AllAttributes())

	// Callers must not be able to corrupt the enumeration
	attrs := AllAttributes()
	attrs[0] = AttrBold
	assert.Equal(t, AttrReset, AllAttributes()[0])
}

func TestAttributeString(t *testing.T) {
	tests := []struct {
		attr Attribute
		name string
	}{
		{AttrReset, "Reset"},
		{AttrBold, "Bold"},
		{AttrDoubleUnderlined, "DoubleUnderlined"},
		{AttrUndercurled, "Undercurled"},
		{AttrNotFramedOrEncircled, "NotFramedOrEncircled"},
		{AttrNotOverLined, "NotOverLined"},
		{Attribute(1 << 31), "Attribute(0x80000000)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.name, test.attr.String())
		})
	}

	// every catalog entry has a real name
	for _, attr := range AllAttributes() {
		assert.NotContains(t, attr.String(), "Attribute(")
	}
}
