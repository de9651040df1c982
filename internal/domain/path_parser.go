package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "ldform.dev/pkg/ldform/internal/model"
)

// ParsePath splits a dotted/bracket path such as "mainEntity[0].question"
// into typed segments.
//
// Tokens are separated by '.' and by bracketed digit runs; empty tokens are
// dropped. A token made only of ASCII digits is an index, so "a.0" and
// "a[0]" are the same path. A '[' that does not start a "[digits]" group is
// part of the key.
func ParsePath(s string) (m.Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var (
		path  m.Path
		token strings.Builder
	)

	flush := func() error {
		if token.Len() == 0 {
			return nil
		}

		seg, err := classify(token.String())
		token.Reset()

		if err != nil {
			return err
		}

		path = append(path, seg)

		return nil
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if err := flush(); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPath, s, err)
			}
		case '[':
			end := bracketEnd(s, i)
			if end < 0 {
				token.WriteByte(c)
				continue
			}

			if err := flush(); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPath, s, err)
			}

			token.WriteString(s[i+1 : end])

			if err := flush(); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPath, s, err)
			}

			i = end
		default:
			token.WriteByte(c)
		}
	}

	if err := flush(); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPath, s, err)
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %q has no segments", ErrInvalidPath, s)
	}

	if path[0].IsIndex() {
		return nil, fmt.Errorf("%w: %q starts with an index", ErrInvalidPath, s)
	}

	return path, nil
}

// bracketEnd returns the position of the ']' closing a "[digits]" group that
// opens at s[start], or -1.
func bracketEnd(s string, start int) int {
	j := start + 1
	for j < len(s) && isDigit(s[j]) {
		j++
	}

	if j == start+1 || j >= len(s) || s[j] != ']' {
		return -1
	}

	return j
}

func classify(token string) (m.Segment, error) {
	for i := 0; i < len(token); i++ {
		if !isDigit(token[i]) {
			return m.Key(token), nil
		}
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return m.Segment{}, fmt.Errorf("index %s out of range", token)
	}

	return m.Index(n), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
