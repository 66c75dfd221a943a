package letterhuffman

import (
	"testing"
)

func TestSymbolOf(t *testing.T) {
	type testRow struct {
		ch     byte
		sym    Symbol
		str    string
		letter bool
	}

	testData := [...]testRow{
		{ch: 'A', sym: 0, str: "'A'", letter: true},
		{ch: 'M', sym: 12, str: "'M'", letter: true},
		{ch: 'Z', sym: 25, str: "'Z'", letter: true},
		{ch: ' ', sym: Space, str: "' '", letter: false},
		{ch: 'a', sym: InvalidSymbol, str: "Symbol(-1)", letter: false},
		{ch: '@', sym: InvalidSymbol, str: "Symbol(-1)", letter: false},
		{ch: '[', sym: InvalidSymbol, str: "Symbol(-1)", letter: false},
	}
	for _, row := range testData {
		t.Run(string(rune(row.ch)), func(t *testing.T) {
			sym := SymbolOf(row.ch)
			if sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if str := sym.String(); str != row.str {
				t.Errorf("expected string %s, got %s", row.str, str)
			}
			if letter := sym.IsLetter(); letter != row.letter {
				t.Errorf("expected IsLetter %v, got %v", row.letter, letter)
			}
			if sym.IsValid() && sym.Byte() != row.ch {
				t.Errorf("expected byte %q, got %q", row.ch, sym.Byte())
			}
		})
	}
}

func TestSymbol_Byte_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	_ = Symbol(NumSymbols).Byte()
}
