// Package random provides unbiased shuffling and sampling over slices.
// Every function takes its random source explicitly so callers can replay
// a sequence from a fixed seed.
package random

import "math/rand"

// Shuffle returns a uniformly random permutation of items.
// The input slice is left untouched.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	// Fisher-Yates: walk from the last index down to 1 and swap each
	// position with a uniformly chosen index in [0, i].
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Sample returns count distinct elements of items in random order.
// It returns fewer elements when count exceeds len(items).
func Sample[T any](r *rand.Rand, items []T, count int) []T {
	if count <= 0 {
		return []T{}
	}

	shuffled := Shuffle(r, items)
	if count > len(shuffled) {
		count = len(shuffled)
	}

	return shuffled[:count]
}

// PickExcluding samples count elements whose key is not in exclude.
func PickExcluding[T any](r *rand.Rand, items []T, count int, key func(T) string, exclude ...string) []T {
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	candidates := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := skip[key(it)]; ok {
			continue
		}
		candidates = append(candidates, it)
	}

	return Sample(r, candidates, count)
}

// Pick returns one uniformly chosen element and false when items is empty.
func Pick[T any](r *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.Intn(len(items))], true
}
