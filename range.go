package reed

import "strconv"

// Range is the half-open byte interval [Start, End) a result covers
// in the text it was matched against.
type Range struct{ Start, End int }

func NewRange(start, end int) Range { return Range{Start: start, End: end} }

func (r Range) Len() int { return r.End - r.Start }

// String renders "3" for an empty range at offset 3 and "1..4"
// otherwise
func (r Range) String() string {
	if r.Len() == 0 {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + ".." + strconv.Itoa(r.End)
}

// Of slices the covered bytes out of `text`
func (r Range) Of(text string) string { return text[r.Start:r.End] }

// Covers tells whether `other` lies within the range
func (r Range) Covers(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}
