// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

/*
Package smaz implements the smaz compression algorithm for short strings.

smaz trades generality for zero per-stream overhead: instead of learning a
model from the input, it ships a fixed 254-entry codebook of substrings that
are frequent in English text, punctuation and HTML/URL fragments, and encodes
the input by greedily replacing the longest codebook match at each position
with a single-byte code. Bytes that match nothing are carried verbatim behind
a short escape. This makes smaz effective on inputs of a few bytes to a few
hundred bytes, exactly where general-purpose compressors cost more in framing
than they save.

# Wire format

The encoded stream is a flat sequence of tokens, dispatched on the first byte:

  - 0..253: codebook reference; expands to the pattern at that index (1-7 bytes).
  - 254: one verbatim byte follows.
  - 255: a length byte L follows, then L+1 verbatim bytes (runs of 1-256).

The codebook content and order are part of the wire contract: two
implementations interoperate only if they share the exact table. The table in
this package matches the reference smaz dictionary byte for byte.

# When to use

Short, mostly-English or markup-like strings: log fields, URLs, chat
messages, cache keys. Typical savings on such inputs are 20-50%. smaz is not
a general-purpose compressor: large inputs, binary data and non-English text
compress poorly or expand (worst case roughly 2x for isolated literals).

# Compress

Compression never fails; any byte sequence, including binary, is encodable:

	encoded := smaz.Compress([]byte("the end"))

# Decompress

Decompression validates structural well-formedness: a stream that ends in the
middle of a verbatim token yields ErrMalformedStream.

	decoded, err := smaz.Decompress(encoded)

To decode from an io.Reader (the whole stream is read first; smaz is not a
streaming format):

	decoded, err := smaz.DecompressFromReader(r)
*/
package smaz
