package util

import (
	"math/rand"
	"time"
)

// Shuffle returns a uniformly random permutation of items using the
// Fisher-Yates algorithm. The input slice is never mutated.
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// Sample shuffles items and returns the first min(k, len(items)) elements.
func Sample[T any](items []T, k int) []T {
	shuffled := Shuffle(items)

	if k < 0 {
		k = 0
	}
	if k > len(shuffled) {
		k = len(shuffled)
	}

	return shuffled[:k]
}
