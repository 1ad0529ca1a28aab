package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageDefaults(t *testing.T) {
	p := ParsePage("", "")
	assert.Equal(t, 1, p.Num)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePageClampsNonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-3", "abc", "1.5"} {
		p := ParsePage(raw, "25")
		assert.Equal(t, 1, p.Num, "page %q should clamp to 1", raw)
		assert.Equal(t, 25, p.Size)
	}
}

func TestParsePageOffset(t *testing.T) {
	p := ParsePage("3", "20")
	assert.Equal(t, 40, p.Offset())
}

func TestParseSortAllowList(t *testing.T) {
	allowed := []string{"menuName", "price", "stock", "categoryId"}
	def := Sort{Field: "menuName", Direction: "ASC"}

	s := ParseSort("price", "desc", allowed, def)
	assert.Equal(t, "price", s.Field)
	assert.Equal(t, "DESC", s.Direction)

	// Unknown fields silently fall back to the default
	for _, junk := range []string{"menus.name; DROP TABLE menus", "__proto__", "id", ""} {
		s := ParseSort(junk, "", allowed, def)
		assert.Equal(t, "menuName", s.Field, "field %q must not pass the allow-list", junk)
		assert.Equal(t, "ASC", s.Direction)
	}
}

func TestParseSortDirectionCoercion(t *testing.T) {
	def := Sort{Field: "createdAt", Direction: "DESC"}
	assert.Equal(t, "ASC", ParseSort("", "asc", nil, def).Direction)
	assert.Equal(t, "DESC", ParseSort("", "sideways", nil, def).Direction)
}

func TestParseRangeDropsNonFinite(t *testing.T) {
	r := ParseRange("NaN", "Inf")
	assert.True(t, r.IsZero())

	r = ParseRange("abc", "")
	assert.True(t, r.IsZero())
}

func TestParseRangeKeepsFiniteBounds(t *testing.T) {
	r := ParseRange("10", "99.5")
	if assert.NotNil(t, r.Min) {
		assert.Equal(t, 10.0, *r.Min)
	}
	if assert.NotNil(t, r.Max) {
		assert.Equal(t, 99.5, *r.Max)
	}

	// One junk bound does not poison the other
	r = ParseRange("NaN", "50")
	assert.Nil(t, r.Min)
	if assert.NotNil(t, r.Max) {
		assert.Equal(t, 50.0, *r.Max)
	}
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("TRUE"))
	assert.True(t, ParseBool("1"))
	assert.True(t, ParseBool(" yes "))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("2"))
}
