package strength

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// character class sizes used for the alphabet estimate
const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 32

	fullAlphabet = lowerSize + upperSize + digitSize + symbolSize
)

// Profile records which character classes a password draws from.
type Profile struct {
	Lower  bool `json:"lower"`
	Upper  bool `json:"upper"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`
}

// ProfileOf computes the class profile in a single pass.
func ProfileOf(password string) Profile {
	var p Profile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.Lower = true
		case unicode.IsUpper(r):
			p.Upper = true
		case unicode.IsDigit(r):
			p.Digit = true
		case unicode.IsGraphic(r) && !unicode.IsSpace(r):
			p.Symbol = true
		}
	}
	return p
}

// Classes returns how many of the four classes are present.
func (p Profile) Classes() int {
	n := 0
	for _, ok := range []bool{p.Lower, p.Upper, p.Digit, p.Symbol} {
		if ok {
			n++
		}
	}
	return n
}

// AlphabetSize returns the combined size of the classes present.
func (p Profile) AlphabetSize() int {
	n := 0
	if p.Lower {
		n += lowerSize
	}
	if p.Upper {
		n += upperSize
	}
	if p.Digit {
		n += digitSize
	}
	if p.Symbol {
		n += symbolSize
	}
	return n
}

// Entropy returns length × log2(alphabet size) in bits.
// An empty password or an empty alphabet yields 0.
func Entropy(password string, p Profile) float64 {
	n := p.AlphabetSize()
	if password == "" || n == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(n))
}

// MaxEntropy returns the entropy a password of the given length would have
// if it drew from all four classes.
func MaxEntropy(length int) float64 {
	if length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(fullAlphabet)
}
