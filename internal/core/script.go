package core

// Script is a Source that replays fixed draw sequences. Each method consumes
// its own queue; an exhausted queue repeats its last value, and an empty one
// yields zero. It exists so tests can force particular throws, bounces and
// step sizes.
type Script struct {
	Ints   []int
	Floats []float64
	Heavy  []float64

	ints, floats, heavy int
}

// IntN returns the next scripted int folded into [0, n).
func (s *Script) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := next(s.Ints, &s.ints)
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted uniform value.
func (s *Script) Float64() float64 { return next(s.Floats, &s.floats) }

// LogNormal returns the next scripted heavy-tailed value.
func (s *Script) LogNormal() float64 { return next(s.Heavy, &s.heavy) }

// Consumed reports how many values each queue has handed out.
func (s *Script) Consumed() (ints, floats, heavy int) {
	return s.ints, s.floats, s.heavy
}

func next[T int | float64](q []T, pos *int) T {
	var zero T
	if len(q) == 0 {
		*pos++
		return zero
	}
	i := *pos
	if i >= len(q) {
		i = len(q) - 1
	}
	*pos++
	return q[i]
}
