package align

import "unsafe"

// Make returns a zeroed slice of n elements whose first element sits at an
// address that is a multiple of align.
//
// Make allocates slightly more memory than requested; the returned slice
// keeps the whole allocation alive. Returns nil for n <= 0.
func Make[T any](n int, align uintptr) []T {
	if n <= 0 {
		return nil
	}
	if !IsPow2(align) {
		panic("align: alignment is not a power of two")
	}

	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		panic("align: zero-sized element type")
	}

	// The aligned start is at most align-size bytes past the allocation start.
	pad := int((align + size - 1) / size)
	buf := make([]T, n+pad)

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := RoundUp(addr, align) - addr
	if off%size != 0 {
		panic("align: alignment is unreachable for this element size")
	}

	i := int(off / size)
	return buf[i : i+n : i+n]
}

// MakeOffset returns a slice of n elements that starts offset elements past an
// align-aligned address. It is used to reproduce misaligned inputs.
func MakeOffset[T any](n, offset int, align uintptr) []T {
	if n <= 0 {
		return nil
	}
	if offset < 0 {
		panic("align: negative offset")
	}
	buf := Make[T](n+offset, align)
	return buf[offset : offset+n : offset+n]
}
