package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/eivinsam/reed"
	"github.com/eivinsam/reed/grammars"
)

type matchCmd struct {
	Grammar string   `short:"g" default:"expression" env:"REED_GRAMMAR" enum:"identifier,type,expression,json" help:"Grammar to match with: identifier, type, expression or json."`
	Tree    bool     `short:"t" help:"Print the parse tree of each input."`
	Dump    bool     `help:"Dump the parse tree as Go values."`
	Color   bool     `help:"Colorize the parse tree."`
	Full    bool     `short:"f" help:"Fail unless the whole input matches."`
	Input   []string `arg:"" help:"Inputs to match."`
}

func (m *matchCmd) Run(e *env) error {
	if m.Tree || m.Dump {
		return matchAll(e, m, func(n reed.Node) error {
			return m.printNode(e, n)
		})
	}
	return matchAll(e, m, func(l reed.Length) error {
		_, err := fmt.Fprintln(e.out, l.Len())
		return err
	})
}

func (m *matchCmd) printNode(e *env, n reed.Node) error {
	if m.Dump {
		_, err := fmt.Fprintln(e.out, repr.String(n, repr.Indent("  "), repr.OmitEmpty(true)))
		return err
	}
	var format reed.FormatFunc
	if m.Color {
		format = reed.Colorize
	}
	_, err := fmt.Fprintln(e.out, n.Format(format))
	return err
}

// matchAll matches every input in the mode picked by `R` and hands
// the results to `emit`.  It stops at the first input that fails.
func matchAll[R reed.Result[R]](e *env, m *matchCmd, emit func(R) error) error {
	g, err := grammars.Lookup[R](m.Grammar)
	if err != nil {
		return err
	}
	for _, input := range m.Input {
		e.log.Printf("matching %q with %s", input, g.Name)
		r := g.Match(input)
		if r.Mismatched() || (m.Full && r.Len() != len(input)) {
			return &MatchError{Grammar: g.Name, Input: input, Length: r.Len()}
		}
		e.log.Printf("matched %d of %d bytes", r.Len(), len(input))
		if err := emit(r); err != nil {
			return err
		}
	}
	return nil
}

type grammarsCmd struct {
	Names []string `arg:"" optional:"" help:"Grammars to describe; all of them by default."`
}

func (c *grammarsCmd) Run(e *env) error {
	names := c.Names
	if len(names) == 0 {
		names = grammars.Names
	}
	for i, name := range names {
		g, err := grammars.Lookup[reed.Length](name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(e.out)
		}
		fmt.Fprintf(e.out, "%s:\n  %s\n", g.Name, strings.Join(g.Definitions(), "\n  "))
	}
	return nil
}
