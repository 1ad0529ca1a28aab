// Package query normalizes raw request parameters into the typed predicate
// set the repository list queries execute. Parsing is permissive: a filter
// value that cannot be coerced is dropped, never rejected — only write
// validation produces 400s.
package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page is a normalized pagination request. Num is always >= 1.
type Page struct {
	Num  int
	Size int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int { return (p.Num - 1) * p.Size }

// ParsePage parses page/pageSize strings. Invalid or missing values fall back
// to the defaults; non-positive page numbers are clamped to 1 so the offset
// can never go negative.
func ParsePage(page, size string) Page {
	p := Page{Num: DefaultPage, Size: DefaultPageSize}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Num = n
	}
	if n, err := strconv.Atoi(size); err == nil && n > 0 {
		p.Size = n
	}
	return p
}

// Sort is a validated sort request. Field is an API-level field name taken
// from an allow-list; Direction is exactly "ASC" or "DESC".
type Sort struct {
	Field     string
	Direction string
}

// ParseSort validates field against the allow-list, silently falling back to
// def when it is absent — this is what keeps arbitrary column expressions
// (and injection attempts) out of ORDER BY. Direction coerces
// case-insensitively; anything that is not DESC becomes ASC unless the
// entity default says otherwise.
func ParseSort(field, dir string, allowed []string, def Sort) Sort {
	s := def
	for _, f := range allowed {
		if field == f {
			s.Field = field
			break
		}
	}
	switch strings.ToUpper(dir) {
	case "ASC":
		s.Direction = "ASC"
	case "DESC":
		s.Direction = "DESC"
	}
	return s
}

// Range is a numeric filter interval. A nil bound means half-open on that
// side; both bounds present form an inclusive closed interval.
type Range struct {
	Min *float64
	Max *float64
}

// IsZero reports whether no bound survived parsing.
func (r Range) IsZero() bool { return r.Min == nil && r.Max == nil }

// ParseRange parses min/max with float semantics. A bound is kept only when
// it parses to a finite number; everything else is treated as absent.
func ParseRange(min, max string) Range {
	var r Range
	if v, err := strconv.ParseFloat(min, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		r.Min = &v
	}
	if v, err := strconv.ParseFloat(max, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		r.Max = &v
	}
	return r
}

// ParseBool recognizes the usual boolean-ish strings ("true", "1", "TRUE").
// Anything unrecognized is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
