// Package grammars holds example grammars built with reed.  Each one
// is generic over the result mode, so the same definition serves as a
// recognizer (reed.Length) and as a parser (reed.Node).
package grammars

import (
	"errors"
	"fmt"

	"github.com/eivinsam/reed"
)

// ErrUnknownGrammar is returned by Lookup for names not in Names
var ErrUnknownGrammar = errors.New("unknown grammar")

// Names lists the grammars Lookup knows about
var Names = []string{"identifier", "type", "expression", "json"}

// Grammar is a set of rules with a start rule
type Grammar[R reed.Result[R]] struct {
	Name  string
	Start *reed.Rule[R]
	Rules []*reed.Rule[R]
}

// Match applies the start rule to `text`
func (g Grammar[R]) Match(text string) R {
	return reed.Apply[R](g.Start, text)
}

// Rule returns the rule called `name`, or nil
func (g Grammar[R]) Rule(name string) *reed.Rule[R] {
	for _, r := range g.Rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Definitions renders every rule of the grammar, one per item
func (g Grammar[R]) Definitions() []string {
	defs := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		defs[i] = r.Definition()
	}
	return defs
}

// Lookup builds the grammar called `name`
func Lookup[R reed.Result[R]](name string) (Grammar[R], error) {
	switch name {
	case "identifier":
		return Identifier[R](), nil
	case "type":
		return Type[R](), nil
	case "expression":
		return Expression[R](), nil
	case "json":
		return JSON[R](), nil
	}
	return Grammar[R]{}, fmt.Errorf("%w %q", ErrUnknownGrammar, name)
}

func letter[R reed.Result[R]]() reed.Matcher[R] {
	return reed.Choice(reed.CharRange[R]('a', 'z'), reed.CharRange[R]('A', 'Z'))
}

func digit[R reed.Result[R]]() reed.Matcher[R] { return reed.CharRange[R]('0', '9') }

func name[R reed.Result[R]]() *reed.Rule[R] {
	underscore := reed.CharSet[R]('_')
	return reed.NewRule[R]("name").Define(reed.Sequence(
		reed.Choice(letter[R](), underscore),
		reed.ZeroOrMore(reed.Choice(letter[R](), digit[R](), underscore)),
	))
}

// Identifier matches a C style identifier: a letter or underscore
// followed by letters, digits and underscores.
//
//	name <- ([a-zA-Z] / "_") ([a-zA-Z] / [0-9] / "_")*
func Identifier[R reed.Result[R]]() Grammar[R] {
	n := name[R]()
	return Grammar[R]{Name: "identifier", Start: n, Rules: []*reed.Rule[R]{n}}
}

// Type matches a type name with an optional const qualifier.
//
//	type <- ("const" " "+)? name
func Type[R reed.Result[R]]() Grammar[R] {
	n := name[R]()
	qualifier := reed.NewRule[R]("qualifier").Define(reed.Sequence(
		reed.Literal[R]("const"),
		reed.OneOrMore(reed.CharSet[R](' ')),
	))
	typ := reed.NewRule[R]("type").Define(reed.Sequence[R](reed.Optional[R](qualifier), n))
	return Grammar[R]{Name: "type", Start: typ, Rules: []*reed.Rule[R]{typ, qualifier, n}}
}
