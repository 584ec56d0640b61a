package reed

import (
	"fmt"
	"strings"
)

type sequence[R Result[R]] struct{ items []Matcher[R] }

// Sequence matches `first`, then `then` (and any of `more`) on what
// is left of the input.  The whole sequence mismatches as soon as one
// of its items does; an item is never retried with a different
// length, so there is no backtracking within a sequence.
func Sequence[R Result[R]](first, then Matcher[R], more ...Matcher[R]) Matcher[R] {
	items := make([]Matcher[R], 0, 2+len(more))
	items = append(items, first, then)
	return &sequence[R]{items: append(items, more...)}
}

func (s *sequence[R]) Match(in Input) R {
	out := spanOf[R](in, 0)
	for _, item := range s.items {
		r := item.Match(in)
		if r.Mismatched() {
			return r
		}
		out = out.Add(r)
		in = in.Drop(r.Len())
	}
	return out
}

func (s *sequence[R]) String() string { return "(" + describeAll(s.items, " ") + ")" }

type choice[R Result[R]] struct{ items []Matcher[R] }

// Choice matches every alternative against the same input and returns
// the longest match.  When lengths are equal the earliest alternative
// wins.  All alternatives run even when one of them mismatches right
// away; this is longest-match, not PEG's first-match ordered choice.
func Choice[R Result[R]](a, b Matcher[R], more ...Matcher[R]) Matcher[R] {
	items := make([]Matcher[R], 0, 2+len(more))
	items = append(items, a, b)
	return &choice[R]{items: append(items, more...)}
}

func (c *choice[R]) Match(in Input) R {
	best := c.items[0].Match(in)
	for _, item := range c.items[1:] {
		best = Best(best, item.Match(in))
	}
	return best
}

func (c *choice[R]) String() string { return "(" + describeAll(c.items, " | ") + ")" }

type optional[R Result[R]] struct{ expr Matcher[R] }

// Optional matches `expr` or nothing.  It never mismatches: when
// `expr` doesn't apply the result is the empty match.
func Optional[R Result[R]](expr Matcher[R]) Matcher[R] {
	return &optional[R]{expr: expr}
}

func (o *optional[R]) Match(in Input) R {
	r := o.expr.Match(in)
	if r.Mismatched() {
		return spanOf[R](in, 0)
	}
	return r
}

func (o *optional[R]) String() string { return describe(o.expr) + "?" }

// repetition loops over `expr` at least `min` times and at most `max`
// times; a negative `max` means unbounded.
type repetition[R Result[R]] struct {
	expr     Matcher[R]
	min, max int
}

// AtLeast matches `expr` repeatedly until it mismatches.  It
// mismatches if fewer than `min` iterations succeeded.  An iteration
// that matches without consuming input ends the loop right away, so
// nullable expressions can't loop forever; it doesn't count towards
// `min`.
func AtLeast[R Result[R]](min int, expr Matcher[R]) Matcher[R] {
	return &repetition[R]{expr: expr, min: max(min, 0), max: -1}
}

// ZeroOrMore is AtLeast(0, expr); it never mismatches
func ZeroOrMore[R Result[R]](expr Matcher[R]) Matcher[R] { return AtLeast(0, expr) }

// OneOrMore is AtLeast(1, expr)
func OneOrMore[R Result[R]](expr Matcher[R]) Matcher[R] { return AtLeast(1, expr) }

// Between is AtLeast(min, expr) that stops after `max` successful
// iterations.  A `max` lower than `min` never matches.
func Between[R Result[R]](min, max int, expr Matcher[R]) Matcher[R] {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return &repetition[R]{expr: expr, min: min, max: max}
}

func (r *repetition[R]) Match(in Input) R {
	out := spanOf[R](in, 0)
	count := 0
	for ; r.max < 0 || count < r.max; count++ {
		item := r.expr.Match(in)
		if item.Mismatched() {
			break
		}
		if item.Empty() {
			break
		}
		out = out.Add(item)
		in = in.Drop(item.Len())
	}
	if count < r.min {
		return mismatchOf[R]()
	}
	return out
}

func (r *repetition[R]) String() string {
	expr := describe(r.expr)
	switch {
	case r.max < 0 && r.min == 0:
		return expr + "*"
	case r.max < 0 && r.min == 1:
		return expr + "+"
	case r.max < 0:
		return fmt.Sprintf("%s{%d,}", expr, r.min)
	}
	return fmt.Sprintf("%s{%d,%d}", expr, r.min, r.max)
}

type separated[R Result[R]] struct{ item, sep Matcher[R] }

// SeparatedBy matches one `item` followed by any number of `sep`
// `item` pairs.  A separator that isn't followed by an item is left
// unconsumed, and a pair in which both the separator and the item
// match empty ends the list.
func SeparatedBy[R Result[R]](item, sep Matcher[R]) Matcher[R] {
	return &separated[R]{item: item, sep: sep}
}

func (s *separated[R]) Match(in Input) R {
	first := s.item.Match(in)
	if first.Mismatched() {
		return first
	}
	out := spanOf[R](in, 0).Add(first)
	in = in.Drop(first.Len())
	for {
		sep := s.sep.Match(in)
		if sep.Mismatched() {
			return out
		}
		next := in.Drop(sep.Len())
		item := s.item.Match(next)
		if item.Mismatched() {
			return out
		}
		if sep.Empty() && item.Empty() {
			return out
		}
		out = out.Add(sep).Add(item)
		in = next.Drop(item.Len())
	}
}

func (s *separated[R]) String() string {
	return "(" + describe(s.item) + " % " + describe(s.sep) + ")"
}

type not[R Result[R]] struct{ expr Matcher[R] }

// Not succeeds with an empty match where `expr` mismatches, and
// mismatches where it applies.  It never consumes input.
func Not[R Result[R]](expr Matcher[R]) Matcher[R] { return &not[R]{expr: expr} }

func (n *not[R]) Match(in Input) R {
	if n.expr.Match(in).Mismatched() {
		return spanOf[R](in, 0)
	}
	return mismatchOf[R]()
}

func (n *not[R]) String() string { return "!" + describe(n.expr) }

type lookahead[R Result[R]] struct{ expr Matcher[R] }

// Lookahead succeeds with an empty match where `expr` applies, without
// consuming any input.
func Lookahead[R Result[R]](expr Matcher[R]) Matcher[R] { return &lookahead[R]{expr: expr} }

func (l *lookahead[R]) Match(in Input) R {
	if l.expr.Match(in).Mismatched() {
		return mismatchOf[R]()
	}
	return spanOf[R](in, 0)
}

func (l *lookahead[R]) String() string { return "&" + describe(l.expr) }

type lexeme[R Result[R]] struct{ expr Matcher[Length] }

// Lexeme runs the length-only `expr` and turns its length into a
// primitive result of the caller's mode.  Within a structured grammar
// it captures the matched text as a single literal without building
// nodes for the parts of `expr`.
func Lexeme[R Result[R]](expr Matcher[Length]) Matcher[R] {
	return &lexeme[R]{expr: expr}
}

func (l *lexeme[R]) Match(in Input) R {
	n := l.expr.Match(in)
	if n.Mismatched() {
		return mismatchOf[R]()
	}
	return spanOf[R](in, n.Len())
}

func (l *lexeme[R]) String() string { return "<" + describe(l.expr) + ">" }

func describeAll[R Result[R]](items []Matcher[R], sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = describe(item)
	}
	return strings.Join(parts, sep)
}
