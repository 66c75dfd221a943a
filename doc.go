// Package letterhuffman implements a static Huffman code over a 27-symbol
// alphabet: the uppercase letters A through Z plus the space character.
//
// The pipeline runs strictly forward:
//
//     text → Frequencies → forest → tree → Table → encoded bits
//
// and decoding walks the tree directly, independent of the Table.  Trees and
// Tables are never mutated after construction and may be shared freely
// between goroutines.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package letterhuffman
