// Package charset picks the narrowest safe character encoding for a body
// part. The default policy tries US-ASCII, then ISO-8859-1, then UTF-8 —
// a best-effort minimal-encoding heuristic, not a correctness guarantee
// for exotic scripts.
package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrNoEncoding indicates no candidate in the policy can represent the
// content. It is reported explicitly instead of silently defaulting.
var ErrNoEncoding = errors.New("no candidate encoding fits content")

// Candidate is one encoding a Policy may pick. Encode transcodes a Go
// string into the candidate's byte representation; nil means the UTF-8
// bytes already are that representation.
type Candidate struct {
	Name   string
	Fits   func(s string) bool
	Encode func(s string) (string, error)
}

// Policy is an ordered list of candidate encodings, narrowest first.
type Policy []Candidate

// Default returns the US-ASCII -> ISO-8859-1 -> UTF-8 fallback policy.
func Default() Policy {
	return Policy{
		{Name: "US-ASCII", Fits: fitsASCII},
		{Name: "ISO-8859-1", Fits: fitsLatin1, Encode: encodeLatin1},
		{Name: "UTF-8", Fits: utf8.ValidString},
	}
}

// Choose returns the first candidate that can represent s.
func (p Policy) Choose(s string) (Candidate, error) {
	for _, c := range p {
		if c.Fits(s) {
			return c, nil
		}
	}
	return Candidate{}, fmt.Errorf("%w (%d candidates tried)", ErrNoEncoding, len(p))
}

func fitsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func fitsLatin1(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	_, err := charmap.ISO8859_1.NewEncoder().String(s)
	return err == nil
}

func encodeLatin1(s string) (string, error) {
	return charmap.ISO8859_1.NewEncoder().String(s)
}
