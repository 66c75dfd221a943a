package letterhuffman

import (
	"strconv"
)

// Symbol represents a symbol in the 27-symbol alphabet.  The letters 'A'
// through 'Z' are symbols 0 through 25, and the space character is Space.
// Negative symbols are not valid.
type Symbol int32

const (
	// NumLetters is the number of letter symbols in the alphabet.
	NumLetters = 26

	// NumSymbols is the total number of symbols in the alphabet.
	NumSymbols = NumLetters + 1

	// Space is the symbol for the space character.
	Space = Symbol(NumLetters)

	// InvalidSymbol is returned by some functions to clearly indicate that
	// no symbol is being returned.
	InvalidSymbol = Symbol(-1)
)

// SymbolOf returns the Symbol for the given byte, or InvalidSymbol if the
// byte is not part of the alphabet.
func SymbolOf(ch byte) Symbol {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return Symbol(ch - 'A')
	case ch == ' ':
		return Space
	default:
		return InvalidSymbol
	}
}

// IsValid returns true iff this Symbol is a member of the alphabet.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym < NumSymbols
}

// IsLetter returns true iff this Symbol is one of the letters A..Z.
func (sym Symbol) IsLetter() bool {
	return sym >= 0 && sym < NumLetters
}

// Byte returns the character represented by this Symbol.  Panics if the
// Symbol is not valid.
func (sym Symbol) Byte() byte {
	switch {
	case sym.IsLetter():
		return 'A' + byte(sym)
	case sym == Space:
		return ' '
	default:
		panic("letterhuffman: Byte called on invalid Symbol " + strconv.Itoa(int(sym)))
	}
}

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	if !sym.IsValid() {
		return "Symbol(" + strconv.Itoa(int(sym)) + ")"
	}
	return strconv.QuoteRune(rune(sym.Byte()))
}
