// SPDX-License-Identifier: MIT
// Source: github.com/silentsokolov/go-smaz

package smaz

import (
	"fmt"
)

func Example() {
	encoded := Compress([]byte("this is an example of what works very well with smaz"))
	decoded, err := Decompress(encoded)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(decoded))
	// Output:
	// this is an example of what works very well with smaz
}

func ExampleCompress() {
	encoded := Compress([]byte("the end"))
	fmt.Println(len(encoded))
	// Output:
	// 3
}
