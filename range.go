package rxparse

import "fmt"

// Range is a half open interval of element positions within a Source
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Slice returns the elements of items covered by the range, clamped
// to the slice bounds
func Slice[S any](items []S, r Range) []S {
	start, end := max(r.Start, 0), min(r.End, len(items))
	if start >= end {
		return nil
	}
	return items[start:end]
}

// Ranged is a value paired with the absolute range of the source it
// was matched from
type Ranged[T any] struct {
	Range Range
	Value T
}

func (r Ranged[T]) String() string {
	return fmt.Sprintf("%v @ %s", r.Value, r.Range)
}
