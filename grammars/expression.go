package grammars

import "github.com/eivinsam/reed"

// Expression matches arithmetic over names and numbers with the
// usual precedence of * and / over + and -.
//
//	expr     <- name / number / "(" sum ")"
//	prefixed <- [+-]? expr
//	term     <- prefixed % [*/]
//	sum      <- term % [+-]
//
// `sum` is referenced by `expr` before it's defined, which is what
// makes parenthesized sub-expressions possible.
func Expression[R reed.Result[R]]() Grammar[R] {
	n := name[R]()
	number := reed.NewRule[R]("number").Define(reed.Lexeme[R](decimal()))
	sum := reed.NewRule[R]("sum")
	group := reed.Sequence[R](reed.CharSet[R]('('), sum, reed.CharSet[R](')'))
	expr := reed.NewRule[R]("expr").Define(reed.Choice[R](n, number, group))
	prefixed := reed.NewRule[R]("prefixed").Define(reed.Sequence[R](
		reed.Optional(reed.CharSet[R]('+', '-')),
		expr,
	))
	term := reed.NewRule[R]("term").Define(reed.SeparatedBy[R](prefixed, reed.CharSet[R]('*', '/')))
	sum.Define(reed.SeparatedBy[R](term, reed.CharSet[R]('+', '-')))

	return Grammar[R]{
		Name:  "expression",
		Start: sum,
		Rules: []*reed.Rule[R]{sum, term, prefixed, expr, number, n},
	}
}

// decimal is [0-9]+ ("." [0-9]+)?
func decimal() reed.Matcher[reed.Length] {
	digits := reed.OneOrMore(digit[reed.Length]())
	return reed.Sequence(digits, reed.Optional(reed.Sequence(reed.CharSet[reed.Length]('.'), digits)))
}
