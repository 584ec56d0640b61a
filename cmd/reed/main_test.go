package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var c cli
	parser, err := kong.New(&c, kong.Name("reed"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	err = ctx.Run(newEnv(&out, &errOut, c.Verbose))
	return out.String(), errOut.String(), err
}

func TestMatch_Lengths(t *testing.T) {
	out, _, err := run(t, "match", "a*(b+c)", "a+")
	require.NoError(t, err)
	assert.Equal(t, "7\n1\n", out)

	out, _, err = run(t, "match", "-g", "identifier", "_foo", "bar baz")
	require.NoError(t, err)
	assert.Equal(t, "4\n3\n", out)
}

func TestMatch_Errors(t *testing.T) {
	_, _, err := run(t, "match", "-g", "identifier", "0f")
	var merr *MatchError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, -1, merr.Length)
	assert.EqualError(t, err, `identifier: "0f" doesn't match`)

	_, _, err = run(t, "match", "-g", "type", "--full", "cnost foo")
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 5, merr.Length)
	assert.EqualError(t, err, `type: "cnost foo" only matches up to offset 5`)

	out, _, err := run(t, "match", "-g", "type", "cnost foo")
	require.NoError(t, err, "partial matches are fine without --full")
	assert.Equal(t, "5\n", out)
}

func TestMatch_Tree(t *testing.T) {
	out, _, err := run(t, "match", "-g", "identifier", "--tree", "_f1")
	require.NoError(t, err)
	assert.Equal(t, `name (0..3)
├── "_" (0..1)
└── Sequence (1..3)
    ├── "f" (1..2)
    └── "1" (2..3)
`, out)

	out, _, err = run(t, "match", "-g", "identifier", "--dump", "x")
	require.NoError(t, err)
	assert.Contains(t, out, `Literal: "x"`)
	assert.Contains(t, out, `Name: "name"`)
}

func TestMatch_Verbose(t *testing.T) {
	_, logs, err := run(t, "-v", "match", "-g", "json", "[1]")
	require.NoError(t, err)
	assert.Contains(t, logs, `reed: matching "[1]" with json`)
	assert.Contains(t, logs, "reed: matched 3 of 3 bytes")

	_, logs, err = run(t, "match", "a+b")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestGrammars(t *testing.T) {
	out, _, err := run(t, "grammars", "identifier", "type")
	require.NoError(t, err)
	assert.Equal(t, `identifier:
  name <- ((([a-z] | [A-Z]) | [_]) (([a-z] | [A-Z]) | [0-9] | [_])*)

type:
  type <- (qualifier? name)
  qualifier <- ("const" [ ]+)
  name <- ((([a-z] | [A-Z]) | [_]) (([a-z] | [A-Z]) | [0-9] | [_])*)
`, out)

	_, _, err = run(t, "grammars", "cobol")
	assert.EqualError(t, err, `unknown grammar "cobol"`)
}
