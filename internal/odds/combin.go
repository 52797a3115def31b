package odds

import (
	"math/bits"

	"github.com/lox/jokerpoker/poker"
)

// Binomial returns C(n, k), and 0 when k < 0 or k > n.
func Binomial(n, k int64) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := int64(1); i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// ForEachCombination calls fn with every k-card subset of cards, in
// lexicographic index order, until fn returns false. k = 0 yields the
// empty hand once.
func ForEachCombination(cards []poker.Card, k int, fn func(poker.Hand) bool) {
	n := len(cards)
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		var h poker.Hand
		for _, i := range idx {
			h |= poker.Hand(cards[i])
		}
		if !fn(h) {
			return
		}

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// forEachSubmask calls fn with every submask of mask that has exactly k bits.
func forEachSubmask(mask uint16, k int, fn func(uint16)) {
	for sub := mask; sub != 0; sub = (sub - 1) & mask {
		if bits.OnesCount16(sub) == k {
			fn(sub)
		}
	}
}
