package letterhuffman

import (
	"fmt"
	"strings"
)

// Encode maps each character of text to its Code in table.
//
// If any character has no Code in table, either because it is outside the
// alphabet or because it never appeared when the tree was built,
// ErrUnknownSymbol is returned.  No characters are skipped.
//
func Encode(text string, table Table) ([]Code, error) {
	out := make([]Code, 0, len(text))
	for i := 0; i < len(text); i++ {
		hc, err := lookupByte(table, text, i)
		if err != nil {
			return nil, err
		}
		out = append(out, hc)
	}
	return out, nil
}

// EncodeString is like Encode, but concatenates the Codes into a single
// string of '0' and '1' characters.
func EncodeString(text string, table Table) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		hc, err := lookupByte(table, text, i)
		if err != nil {
			return "", err
		}
		hc.appendTo(&sb)
	}
	return sb.String(), nil
}

func lookupByte(table Table, text string, i int) (Code, error) {
	ch := text[i]
	hc, found := table.Lookup(SymbolOf(ch))
	if !found {
		return Code{}, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, ch, i)
	}
	return hc, nil
}
