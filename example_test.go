package reed_test

import (
	"fmt"

	"github.com/eivinsam/reed"
)

func Example() {
	letter := reed.Choice(reed.CharRange[reed.Node]('a', 'z'), reed.CharSet[reed.Node]('_'))
	name := reed.NewRule[reed.Node]("name").Define(reed.OneOrMore(letter))

	node := reed.Apply[reed.Node](name, "foo+bar")
	fmt.Println(node.Len(), node.Text())
	// Output: 3 foo
}

func ExampleRule() {
	// sum <- term ("+" term)*
	// term <- [0-9] / "(" sum ")"
	sum := reed.NewRule[reed.Length]("sum")
	term := reed.NewRule[reed.Length]("term").Define(reed.Choice(
		reed.CharRange[reed.Length]('0', '9'),
		reed.Sequence[reed.Length](reed.CharSet[reed.Length]('('), sum, reed.CharSet[reed.Length](')')),
	))
	sum.Define(reed.SeparatedBy[reed.Length](term, reed.CharSet[reed.Length]('+')))

	fmt.Println(reed.Apply[reed.Length](sum, "1+(2+3)+"))
	fmt.Println(reed.Apply[reed.Length](sum, "+1"))
	fmt.Println(sum.Definition())
	// Output:
	// 7
	// -1
	// sum <- (term % [+])
}

func ExampleSeparatedBy() {
	item := reed.CharRange[reed.Length]('a', 'z')
	list := reed.SeparatedBy(item, reed.CharSet[reed.Length](','))
	fmt.Println(reed.Apply(list, "a,b,"))
	// Output: 3
}
