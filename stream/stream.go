// Package stream defines single-pass lazy value sequences and the combinators
// used by the sentence generator: buffered replay, fair pair and tuple
// interleaving, and canonical labelling enumeration.
//
// All iteration is pull-based and single-threaded. Streams are generally not
// safe for concurrent use; a consumer that stops pulling simply drops the
// stream.
package stream

// Stream is a single-pass sequence of values.
// Next returns the next value until the sequence is exhausted.
type Stream[T any] interface {
	Next() (T, bool)
}

// Func adapts a function to the Stream interface.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) {
	return f()
}

type sliceStream[T any] struct {
	items []T
	pos   int
}

// Of returns a stream over the given values.
func Of[T any](items ...T) Stream[T] {
	return &sliceStream[T]{items: items}
}

func (s *sliceStream[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}

	v := s.items[s.pos]
	s.pos++
	return v, true
}

type mapStream[A, B any] struct {
	src Stream[A]
	f   func(A) B
}

// Map returns a stream applying f to every value of src.
func Map[A, B any](src Stream[A], f func(A) B) Stream[B] {
	return &mapStream[A, B]{src, f}
}

func (m *mapStream[A, B]) Next() (B, bool) {
	v, ok := m.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return m.f(v), true
}

// Take pulls up to n values from s and returns them as a slice.
func Take[T any](s Stream[T], n int) []T {
	result := make([]T, 0, n)
	for len(result) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	return result
}

// Buffered wraps a single-pass stream so it can be read repeatedly:
// values are memoized on first pull, indexed access and any number of
// independent replay iterators see the same sequence.
// Buffered mutates its cache on read and is not safe for concurrent use.
type Buffered[T any] struct {
	src   Stream[T]
	items []T
	done  bool
}

func NewBuffered[T any](src Stream[T]) *Buffered[T] {
	return &Buffered[T]{src: src}
}

// Get returns the i-th value of the underlying stream, pulling and memoizing
// values as needed. Returns false if the stream ends before index i.
func (b *Buffered[T]) Get(i int) (T, bool) {
	for !b.done && i >= len(b.items) {
		v, ok := b.src.Next()
		if !ok {
			b.done = true
			break
		}
		b.items = append(b.items, v)
	}

	if i < len(b.items) {
		return b.items[i], true
	}
	var zero T
	return zero, false
}

// Known returns the number of values memoized so far.
func (b *Buffered[T]) Known() int {
	return len(b.items)
}

// Iter returns a fresh iterator over the buffered stream starting at position 0.
func (b *Buffered[T]) Iter() Stream[T] {
	return &replay[T]{buf: b}
}

type replay[T any] struct {
	buf *Buffered[T]
	pos int
}

func (r *replay[T]) Next() (T, bool) {
	v, ok := r.buf.Get(r.pos)
	if ok {
		r.pos++
	}
	return v, ok
}
