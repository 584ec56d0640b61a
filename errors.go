package reed

import "errors"

var (
	// ErrNoKeywords is returned when building a Keywords matcher
	// without any word to match
	ErrNoKeywords = errors.New("no keywords")

	// ErrEmptyKeyword is returned when one of the words of a
	// Keywords matcher is the empty string.  Use Optional instead.
	ErrEmptyKeyword = errors.New("empty keyword")
)
