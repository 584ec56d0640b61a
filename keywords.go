package reed

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/ahocorasick"
)

// keywords matches the longest of a fixed set of words.  The words
// are added to the automaton longest first, so its leftmost-first
// search reports the longest word found at the start of the input.
type keywords[R Result[R]] struct {
	words   []string
	longest int
	auto    *ahocorasick.Automaton
}

// Keywords matches the longest word among `words` that is a prefix
// of the input.  It is equivalent to a Choice of Literal matchers
// but looks at the input once, which pays off for large sets such
// as the reserved words of a language.
func Keywords[R Result[R]](words ...string) (Matcher[R], error) {
	if len(words) == 0 {
		return nil, ErrNoKeywords
	}
	sorted := slices.Clone(words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	builder := ahocorasick.NewBuilder()
	for _, w := range sorted {
		if w == "" {
			return nil, fmt.Errorf("keywords %q: %w", words, ErrEmptyKeyword)
		}
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("can't build keyword automaton: %w", err)
	}
	return &keywords[R]{words: sorted, longest: len(sorted[0]), auto: auto}, nil
}

// MustKeywords is like Keywords but panics on error.  It simplifies
// initializing grammars held in package variables.
func MustKeywords[R Result[R]](words ...string) Matcher[R] {
	m, err := Keywords[R](words...)
	if err != nil {
		panic(err)
	}
	return m
}

func (k *keywords[R]) Match(in Input) R {
	window := min(in.Len(), k.longest)
	if window == 0 {
		return mismatchOf[R]()
	}
	m := k.auto.Find([]byte(in.Take(window)), 0)
	if m == nil {
		return mismatchOf[R]()
	}
	n := mismatch
	if m.Start == 0 {
		n = m.End
	}
	// only words longer than the reported one could still win
	for _, w := range k.words {
		if len(w) <= n {
			break
		}
		if in.HasPrefix(w) {
			n = len(w)
			break
		}
	}
	if n < 0 {
		return mismatchOf[R]()
	}
	return spanOf[R](in, n)
}

func (k *keywords[R]) String() string {
	quoted := make([]string, len(k.words))
	for i, w := range k.words {
		quoted[i] = strconv.Quote(w)
	}
	return "(" + strings.Join(quoted, " | ") + ")"
}
