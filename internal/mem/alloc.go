package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of returned storage (one cache line).
const Alignment = 64

const wordBytes = 8

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedWords allocates n zeroed uint64 words with 64-byte alignment.
func AllocAlignedWords(n int) []uint64 {
	if n <= 0 {
		return nil
	}

	b := AllocAligned(n * wordBytes)
	ptr := unsafe.Pointer(&b[0])           //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first word of buf starts on an Alignment boundary.
func IsAligned(buf []uint64) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
