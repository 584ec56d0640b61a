package reed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		matcher  Matcher[Length]
		input    string
		expected Length
	}{
		{"range first", CharRange[Length]('a', 'z'), "abc", 1},
		{"range last", CharRange[Length]('a', 'z'), "z", 1},
		{"range below", CharRange[Length]('b', 'z'), "a", mismatch},
		{"range above", CharRange[Length]('a', 'y'), "z", mismatch},
		{"range empty input", CharRange[Length]('a', 'z'), "", mismatch},
		{"set member", CharSet[Length]('+', '-'), "-1", 1},
		{"set non member", CharSet[Length]('+', '-'), "*", mismatch},
		{"set high byte", CharSet[Length](0xff), "\xff", 1},
		{"set empty input", CharSet[Length]('+'), "", mismatch},
		{"fixed match", LiteralFixed[Length]('<', '='), "<=1", 2},
		{"fixed partial", LiteralFixed[Length]('<', '='), "<1", mismatch},
		{"fixed short input", LiteralFixed[Length]('<', '='), "<", mismatch},
		{"fixed nothing", LiteralFixed[Length](), "abc", 0},
		{"literal match", Literal[Length]("const"), "const x", 5},
		{"literal misspelled", Literal[Length]("const"), "cnost x", mismatch},
		{"literal short input", Literal[Length]("const"), "con", mismatch},
		{"literal empty", Literal[Length](""), "abc", 0},
		{"any", Any[Length](), "x", 1},
		{"any empty input", Any[Length](), "", mismatch},
		{"end", End[Length](), "", 0},
		{"end with input left", End[Length](), "x", mismatch},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Apply(test.matcher, test.input))
		})
	}
}

func TestPrimitives_NodeLiteral(t *testing.T) {
	in := NewInput("x<=y").Drop(1)

	n := LiteralFixed[Node]('<', '=').Match(in)
	require.False(t, n.Mismatched())
	assert.Equal(t, "<=", n.Literal)
	assert.Equal(t, NewRange(1, 3), n.Range())
	assert.Empty(t, n.Parts)

	assert.True(t, Literal[Node]("=>").Match(in).Mismatched())
}

func TestPrimitives_String(t *testing.T) {
	assert.Equal(t, "[a-z]", CharRange[Length]('a', 'z').(interface{ String() string }).String())
	assert.Equal(t, `[+\-_]`, describe(CharSet[Length]('_', '-', '+')))
	assert.Equal(t, `[\x00-\x1f]`, describe(CharRange[Length](0, 0x1f)))
	assert.Equal(t, `"<="`, describe(LiteralFixed[Length]('<', '=')))
	assert.Equal(t, `"const"`, describe(Literal[Length]("const")))
	assert.Equal(t, ".", describe(Any[Length]()))
	assert.Equal(t, "$", describe(End[Length]()))
}

func TestKeywords(t *testing.T) {
	kw, err := Keywords[Length]("in", "interface", "int", "if")
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected Length
	}{
		{"interfaces", 9},
		{"int x", 3},
		{"in x", 2},
		{"intern", 3},
		{"if", 2},
		{"i", mismatch},
		{"x int", mismatch},
		{"", mismatch},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, Apply(kw, test.input))
		})
	}

	t.Run("node mode captures the keyword", func(t *testing.T) {
		n := Apply(MustKeywords[Node]("true", "false", "null"), "false]")
		assert.Equal(t, "false", n.Literal)
	})

	t.Run("words inside other words", func(t *testing.T) {
		inner := MustKeywords[Length]("b", "abc")
		assert.Equal(t, Length(3), Apply(inner, "abcd"))
		assert.Equal(t, Length(1), Apply(inner, "bc"))
		assert.Equal(t, Length(mismatch), Apply(inner, "ab"))
	})

	t.Run("describes longest first", func(t *testing.T) {
		assert.Equal(t, `("interface" | "int" | "in" | "if")`, describe(kw))
	})

	t.Run("construction errors", func(t *testing.T) {
		_, err := Keywords[Length]()
		require.ErrorIs(t, err, ErrNoKeywords)

		_, err = Keywords[Length]("a", "")
		require.ErrorIs(t, err, ErrEmptyKeyword)

		assert.Panics(t, func() { MustKeywords[Node]() })
	})
}
