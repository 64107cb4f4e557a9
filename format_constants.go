// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

// smaz wire-format constants: escape tags and framing bounds.

// Escape tags. Byte values 0..253 reference the codebook directly; the two
// remaining values frame verbatim data.
const (
	tagVerbatimByte = 254 // followed by exactly 1 raw byte
	tagVerbatimRun  = 255 // followed by a length byte L, then L+1 raw bytes
)

// Framing bounds.
const (
	codebookSize   = 254 // codes 0..253
	maxPatternLen  = 7   // longest codebook pattern; bounds the encoder's match window
	maxVerbatimRun = 256 // longest run one tag-255 token can carry (length byte is L = run-1)
)
