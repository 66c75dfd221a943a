package letterhuffman

import (
	"github.com/chronos-tachyon/assert"
)

// Frequencies holds the number of occurrences of each letter, indexed by
// Symbol.  Spaces are not counted.
type Frequencies [NumLetters]int

// CountFrequencies tabulates the letters in text.
//
// The text must consist only of the letters 'A' through 'Z' and spaces; use
// Filter to clean up arbitrary input first.  Spaces are skipped.  Any other
// byte is a programming error and causes a panic.
//
func CountFrequencies(text string) Frequencies {
	var freqs Frequencies
	for i := 0; i < len(text); i++ {
		sym := SymbolOf(text[i])
		assert.Assertf(sym != InvalidSymbol, "byte %q at offset %d is not an uppercase letter or space", text[i], i)
		if sym == Space {
			continue
		}
		freqs[sym]++
	}
	return freqs
}

// Total returns the total number of letters counted.
func (freqs Frequencies) Total() int {
	var total int
	for _, freq := range freqs {
		total += freq
	}
	return total
}

// Distinct returns the number of letters with a non-zero count.
func (freqs Frequencies) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Max returns the highest count of any single letter.
func (freqs Frequencies) Max() int {
	var most int
	for _, freq := range freqs {
		if freq > most {
			most = freq
		}
	}
	return most
}
