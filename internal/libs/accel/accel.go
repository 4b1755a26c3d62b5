// Package accel provides utilities for batched bulk writes.
package accel

// DefaultSize is used when a non-positive batch size is requested
const DefaultSize = 100

// Batch splits work into fixed-size chunks
type Batch struct {
	size int
}

// NewBatch creates a new batch processor with the given size
func NewBatch(size int) *Batch {
	if size <= 0 {
		size = DefaultSize
	}
	return &Batch{size: size}
}

// Size returns the batch size
func (b *Batch) Size() int {
	return b.size
}

// Ranges returns the [start, end) bounds covering n items in order
func (b *Batch) Ranges(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	out := make([][2]int, 0, (n+b.size-1)/b.size)
	for start := 0; start < n; start += b.size {
		end := start + b.size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// Each calls fn for every chunk of n items, stopping at the first error
func (b *Batch) Each(n int, fn func(start, end int) error) error {
	for _, r := range b.Ranges(n) {
		if err := fn(r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}
