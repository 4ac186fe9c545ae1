package stream

// Pair is an element of a product of two streams.
type Pair[A, B any] struct {
	First  A
	Second B
}

// EveryCombination yields every pair of values drawn from left and right,
// in a diagonal order that reaches every pair in a finite number of steps
// even when both streams are infinite: each new left value is combined with
// all previously seen right values, then each new right value with all left
// values seen so far, frontier by frontier. If one stream ends, the sweep
// keeps producing the remaining cross pairs from the other.
//
// Both inputs are buffered internally; memory grows with the number of
// distinct values pulled. Replayability is what makes the order fair.
func EveryCombination[A, B any](left Stream[A], right Stream[B]) Stream[Pair[A, B]] {
	return &combination[A, B]{left: NewBuffered(left), right: NewBuffered(right)}
}

const (
	phasePullLeft = iota
	phaseSweepRight
	phasePullRight
	phaseSweepLeft
)

type combination[A, B any] struct {
	left      *Buffered[A]
	right     *Buffered[B]
	m, i      int
	phase     int
	leftDone  bool
	rightDone bool
}

func (c *combination[A, B]) Next() (Pair[A, B], bool) {
	var zero Pair[A, B]
	for {
		switch c.phase {
		case phasePullLeft:
			if c.leftDone {
				c.phase = phasePullRight
				break
			}
			if _, ok := c.left.Get(c.m); !ok {
				c.leftDone = true
				if c.left.Known() == 0 {
					return zero, false
				}
				c.phase = phasePullRight
				break
			}
			c.i = 0
			c.phase = phaseSweepRight

		case phaseSweepRight:
			if c.i >= c.m {
				c.phase = phasePullRight
				break
			}
			r, ok := c.right.Get(c.i)
			if !ok {
				c.phase = phasePullRight
				break
			}
			l, _ := c.left.Get(c.m)
			c.i++
			return Pair[A, B]{l, r}, true

		case phasePullRight:
			if c.rightDone {
				if c.leftDone {
					return zero, false
				}
				c.advance()
				break
			}
			if _, ok := c.right.Get(c.m); !ok {
				c.rightDone = true
				if c.right.Known() == 0 || c.leftDone {
					return zero, false
				}
				c.advance()
				break
			}
			c.i = 0
			c.phase = phaseSweepLeft

		case phaseSweepLeft:
			if c.i > c.m {
				c.advance()
				break
			}
			l, ok := c.left.Get(c.i)
			if !ok {
				c.advance()
				break
			}
			r, _ := c.right.Get(c.m)
			c.i++
			return Pair[A, B]{l, r}, true
		}
	}
}

func (c *combination[A, B]) advance() {
	c.m++
	c.phase = phasePullLeft
}

// EveryCombinationMany yields every ordered tuple drawn from the given
// streams, one component per stream, with the same fairness as
// EveryCombination. An empty stream list yields exactly one empty tuple.
// Yielded slices are fresh and may be retained by the caller.
func EveryCombinationMany[T any](streams []Stream[T]) Stream[[]T] {
	switch len(streams) {
	case 0:
		return Of([]T{})

	case 1:
		return Map(streams[0], func(v T) []T {
			return []T{v}
		})
	}

	rest := EveryCombinationMany(streams[1:])
	return Map(EveryCombination(streams[0], rest), func(p Pair[T, []T]) []T {
		tuple := make([]T, 0, len(p.Second)+1)
		tuple = append(tuple, p.First)
		return append(tuple, p.Second...)
	})
}
