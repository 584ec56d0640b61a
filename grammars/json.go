package grammars

import "github.com/eivinsam/reed"

type length = reed.Length

// JSON matches a JSON document.  Strings, numbers and the literal
// keywords are lexemes: they come out as a single leaf in parse
// trees.
//
//	value   <- ws (object / array / string / number / keyword) ws
//	object  <- "{" (member % ",")? ws "}"
//	member  <- ws string ws ":" value
//	array   <- "[" (value % ",")? ws "]"
//	document <- value $
func JSON[R reed.Result[R]]() Grammar[R] {
	ws := reed.ZeroOrMore(reed.CharSet[R](' ', '\t', '\n', '\r'))

	str := reed.NewRule[R]("string").Define(reed.Lexeme[R](jsonString()))
	number := reed.NewRule[R]("number").Define(reed.Lexeme[R](jsonNumber()))
	keyword := reed.NewRule[R]("keyword").Define(reed.MustKeywords[R]("true", "false", "null"))

	value := reed.NewRule[R]("value")
	member := reed.NewRule[R]("member").Define(reed.Sequence[R](ws, str, ws, reed.CharSet[R](':'), value))
	object := reed.NewRule[R]("object").Define(reed.Sequence[R](
		reed.CharSet[R]('{'),
		reed.Optional(reed.SeparatedBy[R](member, reed.CharSet[R](','))),
		ws,
		reed.CharSet[R]('}'),
	))
	array := reed.NewRule[R]("array").Define(reed.Sequence[R](
		reed.CharSet[R]('['),
		reed.Optional(reed.SeparatedBy[R](value, reed.CharSet[R](','))),
		ws,
		reed.CharSet[R](']'),
	))
	value.Define(reed.Sequence[R](ws, reed.Choice[R](object, array, str, number, keyword), ws))
	document := reed.NewRule[R]("document").Define(reed.Sequence[R](value, reed.End[R]()))

	return Grammar[R]{
		Name:  "json",
		Start: document,
		Rules: []*reed.Rule[R]{document, value, object, member, array, str, number, keyword},
	}
}

// jsonString is "\"" (escape / !["\\\x00-\x1f] .)* "\""
func jsonString() reed.Matcher[length] {
	hex := reed.Choice(
		reed.CharRange[length]('0', '9'),
		reed.CharRange[length]('a', 'f'),
		reed.CharRange[length]('A', 'F'),
	)
	escape := reed.Sequence(reed.CharSet[length]('\\'), reed.Choice(
		reed.CharSet[length]('"', '\\', '/', 'b', 'f', 'n', 'r', 't'),
		reed.Sequence(reed.CharSet[length]('u'), reed.Between(4, 4, hex)),
	))
	plain := reed.Sequence(
		reed.Not(reed.Choice(reed.CharSet[length]('"', '\\'), reed.CharRange[length](0, 0x1f))),
		reed.Any[length](),
	)
	quote := reed.CharSet[length]('"')
	return reed.Sequence(quote, reed.ZeroOrMore(reed.Choice(escape, plain)), quote)
}

// jsonNumber is "-"? ("0" / [1-9] [0-9]*) ("." [0-9]+)? ([eE] [+-]? [0-9]+)?
func jsonNumber() reed.Matcher[length] {
	digits := reed.OneOrMore(digit[length]())
	integer := reed.Choice(
		reed.CharSet[length]('0'),
		reed.Sequence(reed.CharRange[length]('1', '9'), reed.ZeroOrMore(digit[length]())),
	)
	fraction := reed.Sequence(reed.CharSet[length]('.'), digits)
	exponent := reed.Sequence(
		reed.CharSet[length]('e', 'E'),
		reed.Optional(reed.CharSet[length]('+', '-')),
		digits,
	)
	return reed.Sequence(
		reed.Optional(reed.CharSet[length]('-')),
		integer,
		reed.Optional(fraction),
		reed.Optional(exponent),
	)
}
