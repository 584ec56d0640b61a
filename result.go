package reed

// mismatch is the length sentinel for "this matcher doesn't apply at
// this position".  Any non-negative length is a match.
const mismatch = -1

// Result is the algebra every matcher returns.  The combinators are
// written once against it, so the same grammar can be instantiated
// with Length, which only counts units, or with Node, which builds a
// parse tree.
//
// The zero value of a Result is the empty match: it consumed nothing,
// and it is the identity of Add.  Mismatch and Span are factories and
// are meant to be called on the zero value.
type Result[R any] interface {
	// Len returns how many units were matched, or a negative
	// number for a mismatch
	Len() int

	// Mismatched reports whether the matcher didn't apply
	Mismatched() bool

	// Empty reports whether the matcher applied but consumed no
	// input.  An empty result is not a mismatch.
	Empty() bool

	// Add concatenates `other` after the receiver.  Adding an
	// empty result is the identity.  Implementations may reuse the
	// receiver's storage, so the receiver must not be used again.
	Add(other R) R

	// Mismatch returns the mismatch sentinel
	Mismatch() R

	// Span returns the result of a primitive that matched the
	// first `n` units of `in`
	Span(in Input, n int) R

	// Tag records that the result was produced by `rule`
	Tag(rule *RuleInfo) R
}

// Best returns the longest of `a` and `b`.  On a tie the first
// operand wins, which is what makes Choice prefer its left
// alternative.
func Best[R Result[R]](a, b R) R {
	if b.Len() > a.Len() {
		return b
	}
	return a
}

func mismatchOf[R Result[R]]() R {
	var zero R
	return zero.Mismatch()
}

func spanOf[R Result[R]](in Input, n int) R {
	var zero R
	return zero.Span(in, n)
}

// Length is the length-only Result.  It carries no tree and costs
// nothing beyond an int.
type Length int

func (l Length) Len() int                 { return int(l) }
func (l Length) Mismatched() bool         { return l < 0 }
func (l Length) Empty() bool              { return l == 0 }
func (Length) Mismatch() Length           { return mismatch }
func (Length) Span(_ Input, n int) Length { return Length(n) }
func (l Length) Tag(_ *RuleInfo) Length   { return l }

// Add sums the lengths; adding to or from a mismatch keeps the
// mismatch
func (l Length) Add(other Length) Length {
	if l < 0 || other < 0 {
		return mismatch
	}
	return l + other
}
