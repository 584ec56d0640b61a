package main

import "fmt"

// MatchError is returned when an input doesn't match, or when only a
// prefix of it matches and the whole input was required
type MatchError struct {
	Grammar string
	Input   string
	Length  int
}

func (e *MatchError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("%s: %q doesn't match", e.Grammar, e.Input)
	}
	return fmt.Sprintf("%s: %q only matches up to offset %d", e.Grammar, e.Input, e.Length)
}
