package services

// RNG is a deterministic stream of floats in [0,1) derived from a string
// seed. The hash and generator below are fixed as part of the public
// contract: same seed, same sequence, forever. All arithmetic is 32-bit
// unsigned with the exact constants listed here.
type RNG func() float64

// seedHash is a 32-bit mix-and-avalanche hash over the seed string.
// Successive calls to the returned function yield further 32-bit words,
// which is how the generator state is filled.
func seedHash(s string) func() uint32 {
	h := uint32(1779033703) ^ uint32(len(s))
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * 3432918353
		h = h<<13 | h>>19
	}
	return func() uint32 {
		h ^= h >> 16
		h *= 2246822507
		h ^= h >> 13
		h *= 3266489909
		h ^= h >> 16
		return h
	}
}

// sfc32 is a small fast counter generator over four 32-bit words
func sfc32(a, b, c, d uint32) RNG {
	return func() float64 {
		t := a + b
		a = b ^ (b >> 9)
		b = c + (c << 3)
		c = c<<21 | c>>11
		d++
		t += d
		c += t
		return float64(t) / 4294967296.0
	}
}

// NewRNG builds a deterministic generator from a string seed
func NewRNG(seed string) RNG {
	h := seedHash(seed)
	return sfc32(h(), h(), h(), h())
}

// Pick returns a uniformly drawn element of list, or the zero value and
// false when the list is empty
func Pick[T any](rng RNG, list []T) (T, bool) {
	if len(list) == 0 {
		var zero T
		return zero, false
	}
	idx := int(rng() * float64(len(list)))
	if idx >= len(list) {
		idx = len(list) - 1
	}
	return list[idx], true
}

// PickN samples up to min(n, len(list)) elements without replacement.
// Order is draw order, not a stable sort of the original order. An empty
// list yields an empty result, never an error.
func PickN[T any](rng RNG, list []T, n int) []T {
	out := []T{}
	if n <= 0 || len(list) == 0 {
		return out
	}
	pool := make([]T, len(list))
	copy(pool, list)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		idx := int(rng() * float64(len(pool)))
		if idx >= len(pool) {
			idx = len(pool) - 1
		}
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}
