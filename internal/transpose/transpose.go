// Package transpose implements a cache-oblivious out-of-place matrix
// transpose over raw byte buffers.
//
// The source is an n×p row-major matrix of fixed-size elements and the
// destination is its p×n transpose. The recursion halves the longer of the
// two remaining extents until a single element is left, so at every scale
// the working set of both buffers fits whatever cache level is present
// without knowing its size.
package transpose

import "fmt"

// Transpose writes the transpose of the n×p matrix src into dst. Elements
// are size bytes wide. dst and src must not overlap.
func Transpose(dst, src []byte, n, p, size int) {
	total := n * p * size
	if n < 0 || p < 0 || size <= 0 || len(src) < total || len(dst) < total {
		panic(fmt.Sprintf("transpose: bad arguments n=%d p=%d size=%d len(src)=%d len(dst)=%d",
			n, p, size, len(src), len(dst)))
	}
	if n == 0 || p == 0 {
		return
	}
	t := &job{dst: dst, src: src, n: n, p: p, size: size}
	t.run(0, n, 0, p)
}

type job struct {
	dst, src []byte
	n, p     int
	size     int
}

// run transposes the block of rows [x, x+dx) and columns [y, y+dy).
func (t *job) run(x, dx, y, dy int) {
	for dx > 1 || dy > 1 {
		if dx >= dy {
			half := dx / 2
			t.run(x, half, y, dy)
			x += half
			dx -= half
		} else {
			half := dy / 2
			t.run(x, dx, y, half)
			y += half
			dy -= half
		}
	}
	in := (x*t.p + y) * t.size
	out := (y*t.n + x) * t.size
	copy(t.dst[out:out+t.size], t.src[in:in+t.size])
}
