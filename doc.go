// Package reed is a parser combinator library for grammars written
// directly in Go code.
//
// A grammar is a tree of matchers.  Each matcher tests whether a
// prefix of its input satisfies a rule and returns a Result.  Results
// come in two flavors that share every combinator:
//
//   - Length only counts the matched units.  It's the fast path for
//     recognizing input.
//   - Node builds a parse tree: primitive matches carry their literal
//     text, concatenations carry their parts and rule results point
//     back to the rule that produced them.
//
// The primitives are CharRange, CharSet, LiteralFixed, Literal, Any
// and Keywords.  They are combined with Sequence, Choice, Optional,
// AtLeast, ZeroOrMore, OneOrMore, Between, SeparatedBy, Not,
// Lookahead and Lexeme.  Recursive grammars reference a Rule before
// defining it:
//
//	letter := reed.Choice(reed.CharRange[reed.Node]('a', 'z'), reed.CharSet[reed.Node]('_'))
//	name := reed.NewRule[reed.Node]("name").Define(reed.OneOrMore(letter))
//	node := reed.Apply[reed.Node](name, "foo+bar")
//	fmt.Println(node.Len(), node.Text()) // 3 foo
//
// Matching works on bytes; there's no Unicode classification.  A
// mismatch is a value, never an error: a Result whose Mismatched
// method returns true.
//
// Choice evaluates all its alternatives and keeps the longest match,
// preferring the leftmost one on ties.  Sequences never backtrack.
// Nothing is memoized, so deeply nested choices can re-evaluate the
// same input many times, and left recursive rules recurse until the
// stack runs out.
package reed
