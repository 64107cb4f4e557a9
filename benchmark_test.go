// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"short-sentence": []byte("this is an example of what works very well with smaz"),
		"url":            []byte("http://programming.reddit.com"),
		"log-line":       []byte(`GET /index.html HTTP/1.1 200 "Mozilla/5.0 (compatible)"`),
		"binary-300":     bytes.Repeat([]byte{0x00, 0x7F, 0xFF}, 100),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Compress(inputData)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		compressedData := Compress(inputData)
		if _, err := Decompress(compressedData); err != nil {
			b.Fatalf("setup Decompress failed for %s: %v", inputName, err)
		}

		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decompress(compressedData); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := []byte("Nothing is more difficult, and therefore more precious, than to be able to decide")
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decompress(Compress(inputData)); err != nil {
			b.Fatalf("round trip failed: %v", err)
		}
	}
}
