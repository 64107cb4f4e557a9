// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

// codebook is the fixed compression vocabulary: 254 patterns of 1-7 bytes,
// chosen by offline frequency analysis of English text and HTML/URL corpora.
// A pattern's position is its wire code, so both content and order are part
// of the wire contract; reordering or editing an entry breaks compatibility
// with every previously encoded stream. This table matches the reference
// smaz dictionary exactly.
var codebook = [codebookSize]string{
	" ", "the", "e", "t", "a", "of", "o", "and", "i", "n", "s", "e ", "r", " th",
	" t", "in", "he", "th", "h", "he ", "to", "\r\n", "l", "s ", "d", " a", "an",
	"er", "c", " o", "d ", "on", " of", "re", "of ", "t ", ", ", "is", "u", "at",
	"   ", "n ", "or", "which", "f", "m", "as", "it", "that", "\n", "was", "en", "  ",
	" w", "es", " an", " i", "\r", "f ", "g", "p", "nd", " s", "nd ", "ed ", "w",
	"ed", "http://", "for", "te", "ing", "y ", "The", " c", "ti", "r ", "his", "st",
	" in", "ar", "nt", ",", " to", "y", "ng", " h", "with", "le", "al", "to ", "b",
	"ou", "be", "were", " b", "se", "o ", "ent", "ha", "ng ", "their", "\"", "hi",
	"from", " f", "in ", "de", "ion", "me", "v", ".", "ve", "all", "re ", "ri", "ro",
	"is ", "co", "f t", "are", "ea", ". ", "her", " m", "er ", " p", "es ", "by",
	"they", "di", "ra", "ic", "not", "s, ", "d t", "at ", "ce", "la", "h ", "ne",
	"as ", "tio", "on ", "n t", "io", "we", " a ", "om", ", a", "s o", "ur", "li",
	"ll", "ch", "had", "this", "e t", "g ", "e\r\n", " wh", "ere", " co", "e o", "a ",
	"us", " d", "ss", "\n\r\n", "\r\n\r", "=\"", " be", " e", "s a", "ma", "one",
	"t t", "or ", "but", "el", "so", "l ", "e s", "s,", "no", "ter", " wa", "iv",
	"ho", "e a", " r", "hat", "s t", "ns", "ch ", "wh", "tr", "ut", "/", "have",
	"ly ", "ta", " ha", " on", "tha", "-", " l", "ati", "en ", "pe", " re", "there",
	"ass", "si", " fo", "wa", "ec", "our", "who", "its", "z", "fo", "rs", ">", "ot",
	"un", "<", "im", "th ", "nc", "ate", "><", "ver", "ad", " we", "ly", "ee", " n",
	"id", " cl", "ac", "il", "</", "rt", " wi", "div", "e, ", " it", "whi", " ma",
	"ge", "x", "e c", "men", ".com",
}

// codebookIndex maps pattern bytes to their code. It is built once before
// first use and never written afterwards, so it is safe for unbounded
// concurrent readers. Insertion follows codebook order: should the table ever
// carry duplicate patterns, the later code wins, which is what byte-compatible
// encoders must do.
var codebookIndex = buildCodebookIndex()

func buildCodebookIndex() map[string]byte {
	index := make(map[string]byte, codebookSize)
	for i, pattern := range codebook {
		index[pattern] = byte(i)
	}

	return index
}
