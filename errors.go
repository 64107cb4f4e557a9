// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

import "errors"

// Sentinel errors for decompression. Compression has no error path.
var (
	// ErrMalformedStream is returned when the encoded stream ends inside a
	// multi-byte token: a dangling verbatim tag with no payload byte, or a
	// verbatim run whose declared length demands more bytes than remain.
	// Callers can match it with errors.Is(err, smaz.ErrMalformedStream).
	ErrMalformedStream = errors.New("malformed compressed stream")
)
