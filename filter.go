package letterhuffman

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Filter reduces arbitrary text to the alphabet accepted by
// CountFrequencies: letters are folded to uppercase, accents and other
// compatibility decorations are stripped, and everything that is neither a
// letter A..Z nor a space is dropped.
//
//     Filter("Café, straße!")  →  "CAFE STRASSE"
//
func Filter(input string) string {
	// Casers are stateful, so each call gets its own.
	upper := cases.Upper(language.Und).String(norm.NFKD.String(input))

	var sb strings.Builder
	sb.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		if ch := upper[i]; SymbolOf(ch) != InvalidSymbol {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
