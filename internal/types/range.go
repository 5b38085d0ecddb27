package types

import "fmt"

// RangeMode is the granularity a Range is read or written with.
type RangeMode int

const (
	RangeCharMode RangeMode = iota
	RangeLineMode
	RangeBlockMode
	RangeLineModeExclusive
	RangeBlockAndTailMode
)

func (m RangeMode) String() string {
	switch m {
	case RangeCharMode:
		return "char"
	case RangeLineMode:
		return "line"
	case RangeBlockMode:
		return "block"
	case RangeLineModeExclusive:
		return "line-exclusive"
	case RangeBlockAndTailMode:
		return "block-and-tail"
	}
	return fmt.Sprintf("RangeMode(%d)", int(m))
}

// Range is a span of document offsets. BeginPos <= EndPos always holds for
// ranges built with NewRange; argument order is not preserved.
type Range struct {
	BeginPos int
	EndPos   int
	Mode     RangeMode
}

// InvalidRange is the zero-information range.
var InvalidRange = Range{BeginPos: -1, EndPos: -1, Mode: RangeCharMode}

// NewRange builds a normalized range.
func NewRange(b, e int, mode RangeMode) Range {
	if b > e {
		b, e = e, b
	}
	return Range{BeginPos: b, EndPos: e, Mode: mode}
}

// IsValid reports whether both ends point into a document.
func (r Range) IsValid() bool {
	return r.BeginPos >= 0 && r.EndPos >= 0
}

// Len returns the number of offsets covered.
func (r Range) Len() int {
	return r.EndPos - r.BeginPos
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d (mode: %s)", r.BeginPos, r.EndPos, r.Mode)
}
