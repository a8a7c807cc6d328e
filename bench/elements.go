// File: bench/elements.go
// Author: momentics <momentics@gmail.com>
//
// Harness element types, one per size class. Touch writes a byte so the
// compiler cannot elide the allocation under measurement.

package bench

// Size classes selectable in a profile.
const (
	Size1KiB  = "1kb"
	Size64KiB = "64kb"
	Size1MiB  = "1mb"
)

// sizeClassBytes maps size class names to payload bytes.
var sizeClassBytes = map[string]int{
	Size1KiB:  1 << 10,
	Size64KiB: 1 << 16,
	Size1MiB:  1 << 20,
}

type block1K struct {
	payload [1 << 10]byte
}

func (b *block1K) Reset() { b.payload[0] = 0 }
func (b *block1K) Touch() { b.payload[0]++ }

type block64K struct {
	payload [1 << 16]byte
}

func (b *block64K) Reset() { b.payload[0] = 0 }
func (b *block64K) Touch() { b.payload[0]++ }

type block1M struct {
	payload [1 << 20]byte
}

func (b *block1M) Reset() { b.payload[0] = 0 }
func (b *block1M) Touch() { b.payload[0]++ }
