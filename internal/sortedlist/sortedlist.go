// Package sortedlist provides a growable array that keeps its elements in
// ascending order.
//
// Unlike a plain slice, a List manages its own backing capacity: it doubles
// when full and halves when mostly empty, following a GrowthPolicy.
package sortedlist

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"sort"
)

// Errors returned by List operations.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCapacityExhausted = errors.New("capacity upper bound reached")
	ErrOutOfOrder        = errors.New("value does not fit sorted position")
)

// Container is an ordered collection addressed by position.
// Positions are only valid until the next mutating call.
type Container[T any] interface {
	Len() int
	Cap() int
	Insert(v T) error
	Get(i int) (T, error)
	ReplaceAt(i int, v T) (bool, error)
	InsertAt(i int, v T) error
	DeleteAt(i int) (T, error)
	All() iter.Seq2[int, T]
}

// ResizeFunc is called after the backing capacity changes.
type ResizeFunc func(oldCap, newCap, size int)

// Stats counts capacity changes since creation.
type Stats struct {
	Grows   int
	Shrinks int
}

// List is a sorted dynamic array. Elements in [0, Len) are in non-descending
// order per the comparator; slots in [Len, Cap) hold zero values.
// A List is not safe for concurrent use.
type List[T any] struct {
	data     []T // len(data) is the capacity
	size     int
	cmp      func(a, b T) int
	policy   GrowthPolicy
	limit    int
	onResize ResizeFunc
	stats    Stats
}

var _ Container[int] = (*List[int])(nil)

// Option configures a List.
type Option func(*options)

type options struct {
	capacity int
	policy   GrowthPolicy
	limit    int
	onResize ResizeFunc
}

// WithCapacity sets the initial capacity. It must be at least MinCapacity.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithPolicy replaces the default doubling/halving policy.
func WithPolicy(p GrowthPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithMaxCapacity lowers the capacity upper bound. Mostly useful in tests.
func WithMaxCapacity(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithResizeHook registers fn to observe capacity changes.
func WithResizeHook(fn ResizeFunc) Option {
	return func(o *options) { o.onResize = fn }
}

// New creates an empty List ordered by cmp.
// Returns ErrInvalidArgument if cmp is nil or the capacity settings are invalid.
func New[T any](cmp func(a, b T) int, opts ...Option) (*List[T], error) {
	o := options{
		capacity: MinCapacity,
		policy:   DefaultPolicy{},
		limit:    MaxCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cmp == nil {
		return nil, fmt.Errorf("%w: comparator is nil", ErrInvalidArgument)
	}
	if o.capacity < MinCapacity {
		return nil, fmt.Errorf("%w: capacity must be at least %d, got %d", ErrInvalidArgument, MinCapacity, o.capacity)
	}
	if o.limit < o.capacity || o.limit > MaxCapacity {
		return nil, fmt.Errorf("%w: max capacity %d outside [%d, %d]", ErrInvalidArgument, o.limit, o.capacity, MaxCapacity)
	}
	if o.policy == nil {
		o.policy = DefaultPolicy{}
	}

	return &List[T]{
		data:     make([]T, o.capacity),
		cmp:      cmp,
		policy:   o.policy,
		limit:    o.limit,
		onResize: o.onResize,
	}, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the backing capacity.
func (l *List[T]) Cap() int { return len(l.data) }

// Stats returns capacity change counters.
func (l *List[T]) Stats() Stats { return l.stats }

// Insert adds v at its sorted position. Equal elements keep insertion order.
func (l *List[T]) Insert(v T) error {
	if isNil(v) {
		return fmt.Errorf("cannot insert: %w: nil value", ErrInvalidArgument)
	}
	if err := l.ensureRoom(); err != nil {
		return fmt.Errorf("cannot insert: %w", err)
	}

	// First slot whose element is strictly greater than v.
	pos := sort.Search(l.size, func(i int) bool {
		return l.cmp(l.data[i], v) > 0
	})
	l.insertAt(pos, v)
	return nil
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if err := l.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return l.data[i], nil
}

// ReplaceAt overwrites the element at i with v if v still sorts between its
// neighbours. A missing neighbour at either end is no constraint. Returns
// false, with the list untouched, when v would break the order.
func (l *List[T]) ReplaceAt(i int, v T) (bool, error) {
	if err := l.checkIndex(i); err != nil {
		return false, err
	}
	if isNil(v) {
		return false, fmt.Errorf("cannot replace: %w: nil value", ErrInvalidArgument)
	}
	if !l.fits(i, i+1, v) {
		return false, nil
	}
	l.data[i] = v
	return true, nil
}

// InsertAt places v at index i, shifting later elements right. i may equal
// Len to append. The caller is expected to have picked the sorted position;
// ErrOutOfOrder is returned when it did not.
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, i, l.size)
	}
	if isNil(v) {
		return fmt.Errorf("cannot insert: %w: nil value", ErrInvalidArgument)
	}
	if !l.fits(i, i, v) {
		return fmt.Errorf("cannot insert at %d: %w", i, ErrOutOfOrder)
	}
	if err := l.ensureRoom(); err != nil {
		return fmt.Errorf("cannot insert: %w", err)
	}
	l.insertAt(i, v)
	return nil
}

// DeleteAt removes and returns the element at i, shrinking the backing array
// when the policy asks for it.
func (l *List[T]) DeleteAt(i int) (T, error) {
	var zero T
	if err := l.checkIndex(i); err != nil {
		return zero, err
	}

	removed := l.data[i]
	copy(l.data[i:l.size-1], l.data[i+1:l.size])
	l.data[l.size-1] = zero
	l.size--

	if l.policy.ShouldShrink(l.size, len(l.data)) {
		l.ShrinkCapacity()
	}
	return removed, nil
}

// GrowCapacity enlarges the backing array per the policy, capped at the
// upper bound. Returns false only when already at the bound.
func (l *List[T]) GrowCapacity() bool {
	old := len(l.data)
	if old >= l.limit {
		return false
	}
	newCap := min(max(l.policy.Grow(old), MinCapacity), l.limit)
	if newCap <= old {
		newCap = min(old+1, l.limit)
	}
	l.resize(newCap)
	l.stats.Grows++
	return true
}

// ShrinkCapacity reduces the backing array per the policy, never below
// MinCapacity or the current size. Returns false when nothing changed.
func (l *List[T]) ShrinkCapacity() bool {
	old := len(l.data)
	if old <= MinCapacity || old == l.size {
		return false
	}
	newCap := max(l.policy.Shrink(old), MinCapacity, l.size)
	if newCap >= old {
		return false
	}
	l.resize(newCap)
	l.stats.Shrinks++
	return true
}

// All yields index/element pairs in ascending order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in order.
func (l *List[T]) Slice() []T {
	out := make([]T, l.size)
	copy(out, l.data[:l.size])
	return out
}

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, l.size)
	}
	return nil
}

// fits reports whether v may sit after data[prev-1] and before data[next].
func (l *List[T]) fits(prev, next int, v T) bool {
	if prev > 0 && l.cmp(l.data[prev-1], v) > 0 {
		return false
	}
	if next < l.size && l.cmp(v, l.data[next]) > 0 {
		return false
	}
	return true
}

func (l *List[T]) ensureRoom() error {
	if l.size < len(l.data) {
		return nil
	}
	if !l.GrowCapacity() {
		return fmt.Errorf("%w (%d)", ErrCapacityExhausted, l.limit)
	}
	return nil
}

func (l *List[T]) insertAt(i int, v T) {
	copy(l.data[i+1:l.size+1], l.data[i:l.size])
	l.data[i] = v
	l.size++
}

func (l *List[T]) resize(newCap int) {
	old := len(l.data)
	data := make([]T, newCap)
	copy(data, l.data[:l.size])
	l.data = data
	if l.onResize != nil {
		l.onResize(old, newCap, l.size)
	}
}

// isNil reports whether v is a nil pointer, interface, map, slice, chan or func.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
