// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

// Compress encodes src as a smaz token stream. It never fails: bytes that
// match no codebook pattern are carried behind verbatim escapes, so any
// input, including binary data, is encodable. Empty input yields an empty
// stream. The returned slice is newly allocated; src is not modified.
func Compress(src []byte) []byte {
	out := make([]byte, 0, len(src)/2+1)
	verbatim := make([]byte, 0, maxPatternLen)
	pos := 0

	for pos < len(src) {
		window := min(maxPatternLen, len(src)-pos)
		matched := false

		// Longest match first; length 0 can never encode (the empty string
		// is not a codebook pattern), which keeps the cursor advancing.
		for n := window; n > 0; n-- {
			code, ok := codebookIndex[string(src[pos:pos+n])]
			if !ok {
				continue
			}

			if len(verbatim) > 0 {
				out = appendVerbatim(out, verbatim)
				verbatim = verbatim[:0]
			}

			out = append(out, code)
			pos += n
			matched = true

			break
		}

		if matched {
			continue
		}

		verbatim = append(verbatim, src[pos])
		pos++

		// A single run token carries at most maxVerbatimRun bytes (its
		// length byte is run-1), so flush mid-stream at the cap.
		if len(verbatim) == maxVerbatimRun {
			out = appendVerbatim(out, verbatim)
			verbatim = verbatim[:0]
		}
	}

	if len(verbatim) > 0 {
		out = appendVerbatim(out, verbatim)
	}

	return out
}

// appendVerbatim appends one escape token carrying lit.
// lit must hold 1..maxVerbatimRun bytes.
func appendVerbatim(out, lit []byte) []byte {
	if len(lit) > 1 {
		out = append(out, tagVerbatimRun, byte(len(lit)-1))
	} else {
		out = append(out, tagVerbatimByte)
	}

	return append(out, lit...)
}
