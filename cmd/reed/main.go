package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `short:"v" help:"Log what is being matched to stderr."`

	Match    matchCmd    `cmd:"" help:"Match inputs against one of the example grammars."`
	Grammars grammarsCmd `cmd:"" help:"List the example grammars and their rules."`
}

// env is what commands write to
type env struct {
	out io.Writer
	log *log.Logger
}

func newEnv(out, errOut io.Writer, verbose bool) *env {
	logOut := io.Discard
	if verbose {
		logOut = errOut
	}
	return &env{out: out, log: log.New(logOut, "reed: ", 0)}
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("reed"),
		kong.Description("Match text against grammars built with reed combinators."),
		kong.UsageOnError(),
	)
	err := ctx.Run(newEnv(os.Stdout, os.Stderr, c.Verbose))
	ctx.FatalIfErrorf(err)
}
