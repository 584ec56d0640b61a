package reed

import (
	"fmt"
	"strconv"
	"strings"
)

// Primitive matchers are the only ones that read the input.  They
// all mismatch when there isn't enough input left.

type charRange[R Result[R]] struct{ low, high byte }

// CharRange matches one unit within the closed range [low, high]
func CharRange[R Result[R]](low, high byte) Matcher[R] {
	return charRange[R]{low: low, high: high}
}

func (c charRange[R]) Match(in Input) R {
	if in.Len() > 0 && c.low <= in.At(0) && in.At(0) <= c.high {
		return spanOf[R](in, 1)
	}
	return mismatchOf[R]()
}

func (c charRange[R]) String() string {
	return fmt.Sprintf("[%s-%s]", escapeByte(c.low), escapeByte(c.high))
}

// charSet is a bitmap with one bit per unit value, so membership is a
// single shift and mask.
type charSet[R Result[R]] struct{ bits [32]byte }

// CharSet matches one unit equal to any of `chars`
func CharSet[R Result[R]](chars ...byte) Matcher[R] {
	var cs charSet[R]
	for _, c := range chars {
		cs.bits[c>>3] |= 1 << (c & 7)
	}
	return cs
}

func (c charSet[R]) has(b byte) bool { return c.bits[b>>3]&(1<<(b&7)) != 0 }

func (c charSet[R]) Match(in Input) R {
	if in.Len() > 0 && c.has(in.At(0)) {
		return spanOf[R](in, 1)
	}
	return mismatchOf[R]()
}

func (c charSet[R]) String() string {
	var s strings.Builder
	s.WriteByte('[')
	for i := 0; i < 256; i++ {
		if c.has(byte(i)) {
			s.WriteString(escapeByte(byte(i)))
		}
	}
	s.WriteByte(']')
	return s.String()
}

type literalFixed[R Result[R]] struct{ chars []byte }

// LiteralFixed matches the units `chars` one position at a time.  It's
// meant for short prefixes known when the grammar is written, like
// operators.
func LiteralFixed[R Result[R]](chars ...byte) Matcher[R] {
	return literalFixed[R]{chars: append([]byte(nil), chars...)}
}

func (l literalFixed[R]) Match(in Input) R {
	if in.Len() < len(l.chars) {
		return mismatchOf[R]()
	}
	for i, c := range l.chars {
		if in.At(i) != c {
			return mismatchOf[R]()
		}
	}
	return spanOf[R](in, len(l.chars))
}

func (l literalFixed[R]) String() string { return strconv.Quote(string(l.chars)) }

type literal[R Result[R]] struct{ text string }

// Literal matches when the input starts with `text`
func Literal[R Result[R]](text string) Matcher[R] {
	return literal[R]{text: text}
}

func (l literal[R]) Match(in Input) R {
	if in.HasPrefix(l.text) {
		return spanOf[R](in, len(l.text))
	}
	return mismatchOf[R]()
}

func (l literal[R]) String() string { return strconv.Quote(l.text) }

type anyUnit[R Result[R]] struct{}

// Any matches any single unit, and mismatches at the end of the input
func Any[R Result[R]]() Matcher[R] { return anyUnit[R]{} }

func (anyUnit[R]) Match(in Input) R {
	if in.Empty() {
		return mismatchOf[R]()
	}
	return spanOf[R](in, 1)
}

func (anyUnit[R]) String() string { return "." }

type end[R Result[R]] struct{}

// End matches, without consuming anything, only where there is no
// input left.  Appending it to a grammar makes partial matches fail.
func End[R Result[R]]() Matcher[R] { return end[R]{} }

func (end[R]) Match(in Input) R {
	if in.Empty() {
		return spanOf[R](in, 0)
	}
	return mismatchOf[R]()
}

func (end[R]) String() string { return "$" }
