package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based airport index to its code. It must be pure.
type IDFn func(idx int) string

// maxAirportCode is the number of distinct three-letter codes.
const maxAirportCode = 26 * 26 * 26

// AirportCode returns a three-letter code in base 26: 0→"AAA", 1→"AAB",
// 26→"ABA", 17575→"ZZZ". Panics outside [0, 17575].
func AirportCode(idx int) string {
	if idx < 0 || idx >= maxAirportCode {
		panic(fmt.Sprintf("AirportCode: idx must be in [0,%d], got %d", maxAirportCode-1, idx))
	}
	b := [3]byte{'A', 'A', 'A'}
	for i := 2; i >= 0; i-- {
		b[i] += byte(idx % 26)
		idx /= 26
	}

	return string(b[:])
}

// PrefixedID returns an IDFn producing prefix + decimal index, e.g. "X0".
func PrefixedID(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
