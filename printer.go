package reed

import (
	"fmt"
	"strings"
)

type FormatToken int

const (
	FormatToken_None FormatToken = iota
	FormatToken_Range
	FormatToken_Literal
	FormatToken_Rule
)

// FormatFunc decorates a piece of printed output, e.g. with terminal
// colors.  A nil FormatFunc prints the input unchanged.
type FormatFunc func(input string, token FormatToken) string

// ColorTheme maps format tokens to ANSI colors that read fine on
// both dark and light terminals
var ColorTheme = map[FormatToken]string{
	FormatToken_None:    "\033[0m",          // reset
	FormatToken_Range:   "\033[1;31;5;228m", // orange
	FormatToken_Literal: "\033[1;38;5;245m", // gray
	FormatToken_Rule:    "\033[1;38;5;99m",  // purple
}

// Colorize is a FormatFunc that uses ColorTheme
func Colorize(input string, token FormatToken) string {
	return ColorTheme[token] + input + ColorTheme[FormatToken_None]
}

// Format renders the node and its parts as a tree, one node per line
func (n Node) Format(format FormatFunc) string {
	if format == nil {
		format = func(input string, _ FormatToken) string { return input }
	}
	tp := treePrinter{format: format}
	tp.node(n, "")
	return tp.out.String()
}

// treePrinter draws a Node with box characters.  `pad` is what goes
// in front of the children of the node being printed.
type treePrinter struct {
	out    strings.Builder
	format FormatFunc
}

func (tp *treePrinter) node(n Node, pad string) {
	tp.label(n)
	for i, part := range n.Parts {
		branch, next := "├── ", "│   "
		if i == len(n.Parts)-1 {
			branch, next = "└── ", "    "
		}
		tp.out.WriteString("\n" + pad + branch)
		tp.node(part, pad+next)
	}
}

// label writes one line: the rule name (or Sequence for anonymous
// composites), the literal of leaves and the covered range
func (tp *treePrinter) label(n Node) {
	if n.Mismatched() {
		tp.out.WriteString(tp.format("Mismatch", FormatToken_Rule))
		return
	}
	var words []string
	switch {
	case n.Rule != nil:
		words = append(words, tp.format(n.Rule.Name, FormatToken_Rule))
	case n.Empty():
		words = append(words, tp.format("Empty", FormatToken_Rule))
	case !n.IsLeaf():
		words = append(words, tp.format("Sequence", FormatToken_Rule))
	}
	if n.IsLeaf() && !n.Empty() {
		words = append(words, tp.format(`"`+escapeLiteral(n.Literal)+`"`, FormatToken_Literal))
	}
	words = append(words, "("+tp.format(n.Range().String(), FormatToken_Range)+")")
	tp.out.WriteString(strings.Join(words, " "))
}

var literalSanitizer = strings.NewReplacer(
	`"`, `\"`,
	`\`, `\\`,
	string('\n'), `\n`,
	string('\r'), `\r`,
	string('\t'), `\t`,
)

func escapeLiteral(s string) string {
	return literalSanitizer.Replace(s)
}

// escapeByte renders a single unit for a character class
func escapeByte(c byte) string {
	switch {
	case c == ']' || c == '-' || c == '\\':
		return `\` + string(c)
	case c < 0x20 || c >= 0x7f:
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string(c)
}

// describe renders a matcher for String methods.  Matchers that
// don't implement fmt.Stringer, such as a MatcherFunc, print as a
// placeholder.
func describe(m any) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return "<func>"
}
