package poker

import (
	"math/bits"
	"slices"
)

// RoyalWindow is the index of the Ace-high window in StraightWindows.
const RoyalWindow = 9

// StraightWindows holds the rank masks of the ten 5-rank straights, from
// A-2-3-4-5 (index 0) to 10-J-Q-K-A (RoyalWindow). The Ace sits at bit 0
// and closes the last window.
var StraightWindows = func() [10]uint16 {
	var windows [10]uint16
	for low := range 9 {
		windows[low] = 0x1F << low
	}
	windows[RoyalWindow] = 0xF<<Ten | 1<<Ace
	return windows
}()

// Classify returns the payout category of a hand of up to five cards.
// Hands with fewer than three cards never pay.
func Classify(h Hand) Category {
	n := h.CountCards()
	if n < 3 {
		return Lose
	}

	joker := h.HasJoker()
	natural := n
	if joker {
		natural--
	}
	rankMask := h.GetRankMask()

	if n == 5 && bits.OnesCount16(rankMask) == natural {
		suited := sameSuit(h, natural)
		window, straight := StraightWindow(rankMask)
		switch {
		case straight && suited && window == RoyalWindow:
			return RoyalStraightFlush
		case straight && suited:
			return StraightFlush
		case suited:
			return Flush
		case straight:
			return Straight
		}
	}

	return profileCategory(Profile(h), joker)
}

// StraightWindow returns the highest straight window containing every
// rank of mask. A set of ranks that fits the window either way (such as
// 10-J-Q-K) reports the Ace-high window.
func StraightWindow(mask uint16) (int, bool) {
	for w := RoyalWindow; w >= 0; w-- {
		if mask&^StraightWindows[w] == 0 {
			return w, true
		}
	}
	return 0, false
}

func sameSuit(h Hand, natural int) bool {
	for suit := range uint8(NumSuits) {
		if bits.OnesCount16(h.GetSuitMask(suit)) == natural {
			return true
		}
	}
	return false
}

// Profile returns the rank multiplicity profile of the non-Joker cards,
// sorted from most to least repeated.
func Profile(h Hand) []int {
	counts := h.RankCounts()
	profile := make([]int, 0, 5)
	for _, c := range counts {
		if c > 0 {
			profile = append(profile, c)
		}
	}
	slices.SortFunc(profile, func(a, b int) int { return b - a })
	return profile
}

// profileKey packs a sorted profile into decimal digits: {3,1,1} is 311.
type profileKey uint32

func keyOf(profile []int) profileKey {
	var k profileKey
	for _, c := range profile {
		k = k*10 + profileKey(c)
	}
	return k
}

// Profiles of ordinary cards. Anything missing loses.
var plainProfiles = map[profileKey]Category{
	4:   FourOfAKind,
	41:  FourOfAKind,
	32:  FullHouse,
	3:   ThreeOfAKind,
	31:  ThreeOfAKind,
	311: ThreeOfAKind,
	22:  TwoPair,
	221: TwoPair,
}

// Profiles of the non-Joker cards when the Joker is held; the Joker is
// counted as one more card of the most repeated rank.
var jokerProfiles = map[profileKey]Category{
	4:   FiveOfAKind,
	3:   FourOfAKind,
	31:  FourOfAKind,
	22:  FullHouse,
	2:   ThreeOfAKind,
	21:  ThreeOfAKind,
	211: ThreeOfAKind,
}

func profileCategory(profile []int, joker bool) Category {
	table := plainProfiles
	if joker {
		table = jokerProfiles
	}
	return table[keyOf(profile)]
}
