// Package generator produces random replacement passwords.
// Randomness comes from an injected io.Reader; production code passes
// SecureSource, tests may pass a seeded stream.
package generator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars

	// SuggestionLength is the length of suggested passwords.
	SuggestionLength = 16

	minLength   = 4
	maxAttempts = 1000
)

// ErrExhausted is returned when no candidate was accepted.
var ErrExhausted = errors.New("no acceptable password generated")

// Generator produces random passwords from its source.
type Generator struct {
	src io.Reader
}

// New creates a generator reading randomness from src.
func New(src io.Reader) *Generator {
	return &Generator{src: src}
}

// Password generates a password of the given length containing at least
// one character from each class (lower, upper, digit, symbol).
func (g *Generator) Password(length int) (string, error) {
	if length < minLength {
		length = minLength
	}

	buf := make([]byte, length)

	// guarantee one from each class
	for i, class := range []string{lowerChars, upperChars, digitChars, symbolChars} {
		b, err := g.pickByte(class)
		if err != nil {
			return "", err
		}
		buf[i] = b
	}

	for i := minLength; i < length; i++ {
		b, err := g.pickByte(allPassChars)
		if err != nil {
			return "", err
		}
		buf[i] = b
	}

	// shuffle using Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j, err := g.randIntn(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// Suggest generates SuggestionLength passwords until accept approves one.
func (g *Generator) Suggest(accept func(string) bool) (string, error) {
	for range maxAttempts {
		pw, err := g.Password(SuggestionLength)
		if err != nil {
			return "", err
		}
		if accept == nil || accept(pw) {
			return pw, nil
		}
	}
	return "", fmt.Errorf("suggest: %w after %d attempts", ErrExhausted, maxAttempts)
}

// pickByte returns a random byte from a string.
func (g *Generator) pickByte(s string) (byte, error) {
	i, err := g.randIntn(len(s))
	if err != nil {
		return 0, err
	}
	return s[i], nil
}

// randIntn returns a uniform random int in [0, n) drawn from the source.
// Values past the largest multiple of n are rejected to avoid modulo bias.
func (g *Generator) randIntn(n int) (int, error) {
	limit := math.MaxUint32 - math.MaxUint32%uint32(n)
	var b [4]byte
	for {
		if _, err := io.ReadFull(g.src, b[:]); err != nil {
			return 0, fmt.Errorf("random source: %w", err)
		}
		if v := binary.BigEndian.Uint32(b[:]); v < limit {
			return int(v % uint32(n)), nil
		}
	}
}
