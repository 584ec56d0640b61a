package reed

// Matcher tests whether a prefix of the input satisfies a grammar
// rule.  Matchers must be pure: matching the same input twice yields
// equal results.  Choice evaluates every alternative on the same
// input and relies on that.
type Matcher[R Result[R]] interface {
	Match(in Input) R
}

// MatcherFunc adapts an ordinary function to the Matcher interface
type MatcherFunc[R Result[R]] func(in Input) R

// Match calls f(in)
func (f MatcherFunc[R]) Match(in Input) R { return f(in) }

// Apply matches `m` against the beginning of `text`
func Apply[R Result[R]](m Matcher[R], text string) R {
	return m.Match(NewInput(text))
}
