package game

// splitmix64 mixes a sparse seed into a well-distributed 64-bit state.
func splitmix64(x uint64) uint64 {
	z := x + 0x9E3779B97F4A7C15
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB
	return z ^ z>>31
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func lerpU8(a, b uint8, t float64) uint8 {
	t = clampF(t, 0, 1)
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
	}
}

// Rand is a small deterministic xorshift64* generator. The whole
// simulation draws from one instance, so a fixed seed replays a session.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1 // xorshift state must be nonzero
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns a value in [min, max] inclusive.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) / (1 << 53)
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Pick returns a uniformly chosen element of vals.
func (r *Rand) Pick(vals []int) int {
	return vals[r.Intn(len(vals))]
}
