package random

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestShuffleKeepsElementsAndInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	orig := append([]string(nil), in...)

	out := Shuffle(newRand(1), in)

	assert.Equal(t, orig, in, "input must not be mutated")
	assert.ElementsMatch(t, in, out)
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	r := newRand(2)
	assert.Empty(t, Shuffle(r, []int{}))
	assert.Equal(t, []int{7}, Shuffle(r, []int{7}))
}

func TestShuffleIsUniform(t *testing.T) {
	const trials = 60000
	r := newRand(42)
	counts := make(map[string]int)

	for i := 0; i < trials; i++ {
		p := Shuffle(r, []string{"a", "b", "c"})
		counts[strings.Join(p, "")]++
	}

	require.Len(t, counts, 6, "all permutations of three elements should appear")

	expected := float64(trials) / 6
	for perm, n := range counts {
		deviation := (float64(n) - expected) / expected
		assert.InDeltaf(t, 0, deviation, 0.05, "permutation %s seen %d times", perm, n)
	}
}

func TestShuffleIsReproducible(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, Shuffle(newRand(9), in), Shuffle(newRand(9), in))
}

func TestSample(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	r := newRand(3)

	got := Sample(r, in, 3)
	require.Len(t, got, 3)
	assert.Subset(t, in, got)

	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestSampleMoreThanAvailable(t *testing.T) {
	got := Sample(newRand(4), []int{1, 2}, 5)
	assert.ElementsMatch(t, []int{1, 2}, got)
}

func TestSampleZero(t *testing.T) {
	assert.Empty(t, Sample(newRand(5), []int{1, 2}, 0))
	assert.Empty(t, Sample(newRand(5), []int{1, 2}, -1))
}

func TestPickExcluding(t *testing.T) {
	in := []string{"ferrari", "porsche", "mclaren", "bugatti", "pagani"}
	key := func(s string) string { return s }
	r := newRand(6)

	for i := 0; i < 200; i++ {
		got := PickExcluding(r, in, 3, key, "ferrari", "pagani")
		require.Len(t, got, 3)
		assert.NotContains(t, got, "ferrari")
		assert.NotContains(t, got, "pagani")
	}
}

func TestPickExcludingShortPool(t *testing.T) {
	key := func(s string) string { return s }
	got := PickExcluding(newRand(7), []string{"a", "b"}, 3, key, "a")
	assert.Equal(t, []string{"b"}, got)
}

func TestPick(t *testing.T) {
	_, ok := Pick(newRand(8), []int{})
	assert.False(t, ok)

	v, ok := Pick(newRand(8), []int{5, 6})
	assert.True(t, ok)
	assert.Contains(t, []int{5, 6}, v)
}
