package sortedlist

import "math"

// Capacity bounds.
const (
	// MinCapacity is the smallest backing capacity a list may have.
	MinCapacity = 2

	// MaxCapacity leaves headroom below the largest 32-bit size so doubling
	// never overflows.
	MaxCapacity = math.MaxInt32 - 50
)

// GrowthPolicy decides how the backing capacity of a List changes.
type GrowthPolicy interface {
	// Grow returns the capacity to use when a list of the given capacity is full.
	// The result is clamped to [MinCapacity, limit] by the caller.
	Grow(capacity int) int

	// ShouldShrink reports whether a list should shrink after a deletion.
	ShouldShrink(size, capacity int) bool

	// Shrink returns the reduced capacity. The caller never lets it drop
	// below the current size or MinCapacity.
	Shrink(capacity int) int
}

// DefaultPolicy doubles when full and halves once fewer than a third of the
// slots are in use.
type DefaultPolicy struct{}

// Grow doubles the capacity.
func (DefaultPolicy) Grow(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return capacity * 2
}

// ShouldShrink is true when size*3 < capacity.
func (DefaultPolicy) ShouldShrink(size, capacity int) bool {
	return size*3 < capacity
}

// Shrink halves the capacity.
func (DefaultPolicy) Shrink(capacity int) int {
	return capacity / 2
}
