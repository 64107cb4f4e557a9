// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own: smaz has no streaming form, the whole encoded
// buffer is needed before any token can be trusted to be complete.
func DecompressFromReader(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decompress(src)
}
