// Package align splits scalar slices around vector-aligned address boundaries.
//
// Split reinterprets the aligned middle of a slice as a slice of wider
// vector elements without copying. All returned views alias the input and
// must not outlive it.
//
// The functions in this package only check the layout of the type pair they
// are instantiated with; they trust the caller to pass genuine, contiguous
// slices. Exported packages must only instantiate Split with fixed,
// compatible scalar/vector pairs and never with caller-chosen types.
package align

import "unsafe"

// IsPow2 reports whether k is a non-zero power of two.
func IsPow2(k uintptr) bool {
	return k != 0 && k&(k-1) == 0
}

// RoundUp returns n rounded up to the nearest multiple of k.
// k must be a power of two.
func RoundUp(n, k uintptr) uintptr {
	return (n + k - 1) &^ (k - 1)
}

// RoundDown returns n rounded down to the nearest multiple of k.
// k must be a power of two.
func RoundDown(n, k uintptr) uintptr {
	return n &^ (k - 1)
}

// IsAligned reports whether p is a multiple of k.
// k must be a power of two.
func IsAligned(p unsafe.Pointer, k uintptr) bool {
	return uintptr(p)&(k-1) == 0
}

// Split partitions s into an unaligned head, a body of V elements starting at
// an address that is a multiple of align, and an unaligned tail.
//
// Concatenating head, the bytes of body and tail reproduces s exactly. When
// the size of V equals align, head and tail are each shorter than one V.
// When no complete aligned V fits inside s, Split returns (s, nil, nil).
//
// Split panics if the layout of the pair is unusable: S or V zero-sized,
// align not a power of two, the size of V not a multiple of the size of S or
// of align, or align not a multiple of the size of S.
func Split[V, S any](s []S, align uintptr) (head []S, body []V, tail []S) {
	var (
		zs S
		zv V
	)
	sizeS := unsafe.Sizeof(zs)
	sizeV := unsafe.Sizeof(zv)
	checkLayout(sizeS, sizeV, align)

	if len(s) == 0 {
		return s, nil, nil
	}

	base := unsafe.Pointer(unsafe.SliceData(s))
	start := uintptr(base)
	if start%sizeS != 0 {
		panic("align: slice data is not aligned to its element size")
	}
	end := start + uintptr(len(s))*sizeS

	bodyStart := RoundUp(start, align)
	bodyEnd := RoundDown(end, align)
	if bodyStart >= bodyEnd {
		return s, nil, nil
	}

	// V may span several alignment units; keep whole vectors only.
	n := (bodyEnd - bodyStart) / sizeV
	if n == 0 {
		return s, nil, nil
	}
	bodyEnd = bodyStart + n*sizeV

	nHead := int((bodyStart - start) / sizeS)
	nTail := int((end - bodyEnd) / sizeS)

	head = s[:nHead:nHead]
	body = unsafe.Slice((*V)(unsafe.Add(base, bodyStart-start)), int(n))
	tail = s[len(s)-nTail : len(s) : len(s)]
	return head, body, tail
}

func checkLayout(sizeS, sizeV, align uintptr) {
	switch {
	case sizeS == 0 || sizeV == 0:
		panic("align: zero-sized element type")
	case !IsPow2(align):
		panic("align: alignment is not a power of two")
	case sizeV%sizeS != 0:
		panic("align: vector size is not a multiple of the scalar size")
	case align%sizeS != 0:
		panic("align: alignment is not a multiple of the scalar size")
	case sizeV%align != 0:
		panic("align: vector size is not a multiple of the alignment")
	}
}
