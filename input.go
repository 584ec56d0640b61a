package reed

// Input is an immutable view over the source text plus the offset
// where the view starts.  Matchers never mutate it: advancing the
// input means taking a shorter, shifted copy with Drop.
type Input struct {
	src string
	off int
}

// NewInput returns a view over the whole `text`
func NewInput(text string) Input {
	return Input{src: text}
}

// Len returns how many units are left in the view
func (in Input) Len() int { return len(in.src) - in.off }

// Empty reports whether all the input has been consumed
func (in Input) Empty() bool { return in.off >= len(in.src) }

// Offset returns the position of the view within the original text
func (in Input) Offset() int { return in.off }

// At returns the i-th unit of the view.  It panics if `i` is out of
// bounds, so callers check Len first.
func (in Input) At(i int) byte { return in.src[in.off+i] }

// HasPrefix reports whether the view starts with `s`
func (in Input) HasPrefix(s string) bool {
	return in.Len() >= len(s) && in.src[in.off:in.off+len(s)] == s
}

// Take returns the first `n` units of the view as a substring of the
// original text; it doesn't copy.
func (in Input) Take(n int) string { return in.src[in.off : in.off+n] }

// Rest returns everything left in the view
func (in Input) Rest() string { return in.src[in.off:] }

// Drop returns the view advanced by `n` units
func (in Input) Drop(n int) Input {
	return Input{src: in.src, off: in.off + n}
}
