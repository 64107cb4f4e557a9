// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

// Decompress decodes a smaz token stream produced by Compress (or any
// structurally valid stream) back to the original bytes.
// Returns ErrMalformedStream when the stream ends inside a multi-byte token;
// on error no partial output is returned. Empty input yields empty output.
func Decompress(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*3)
	pos := 0

	for pos < len(src) {
		switch tag := src[pos]; tag {
		case tagVerbatimByte:
			if pos+1 >= len(src) {
				return nil, ErrMalformedStream
			}

			out = append(out, src[pos+1])
			pos += 2

		case tagVerbatimRun:
			if pos+1 >= len(src) {
				return nil, ErrMalformedStream
			}

			// The length byte declares run-1; the token spans the tag, the
			// length byte and the run, so its last byte sits at pos+2+L.
			runLen := int(src[pos+1]) + 1
			if pos+2+runLen > len(src) {
				return nil, ErrMalformedStream
			}

			out = append(out, src[pos+2:pos+2+runLen]...)
			pos += 2 + runLen

		default:
			out = append(out, codebook[tag]...)
			pos++
		}
	}

	return out, nil
}
