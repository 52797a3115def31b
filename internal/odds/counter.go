// Package odds counts how a five-card hand can be completed from a known
// remaining deck: in closed form for the empty hold and single-card holds,
// and by enumeration or sampling for everything else.
package odds

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lox/jokerpoker/poker"
)

var (
	// ErrJokerRequired is returned when the Joker is passed as the
	// required card; that case is only handled by enumeration.
	ErrJokerRequired = errors.New("closed-form counting does not support a held joker")
	// ErrRequiredInDeck is returned when the required card is still in the deck.
	ErrRequiredInDeck = errors.New("required card is still in the deck")
	// ErrDeckTooSmall is returned when the deck cannot complete a hand.
	ErrDeckTooSmall = errors.New("deck too small to complete a hand")
)

// fourRuns are the 4-rank runs that sit inside two adjacent straight
// windows: 2-3-4-5 up to 10-J-Q-K. A Joker completes each of them at
// both ends, so window sums count them twice.
var fourRuns = func() [9]uint16 {
	var runs [9]uint16
	for i := range runs {
		runs[i] = 0xF << (i + 1)
	}
	return runs
}()

// Count returns the exact category counts over every 5-card hand that
// can be drawn from deck.
func Count(deck poker.Hand) (Tally, error) {
	if deck.CountCards() < 5 {
		return Tally{}, fmt.Errorf("count %d cards: %w", deck.CountCards(), ErrDeckTooSmall)
	}
	p := newPool(deck)
	return p.tally(Binomial(int64(deck.CountCards()), 5)), nil
}

// CountRequired returns the exact category counts over every 5-card hand
// made of the required card plus four cards drawn from deck.
func CountRequired(deck poker.Hand, required poker.Card) (Tally, error) {
	switch {
	case required.IsJoker():
		return Tally{}, ErrJokerRequired
	case !required.Valid():
		return Tally{}, fmt.Errorf("required %s: %w", required, poker.ErrInvalidCard)
	case deck.HasCard(required):
		return Tally{}, fmt.Errorf("required %s: %w", required, ErrRequiredInDeck)
	case deck.CountCards() < 4:
		return Tally{}, fmt.Errorf("count %d cards: %w", deck.CountCards(), ErrDeckTooSmall)
	}
	p := newPool(deck)
	p.pin(required)
	return p.tally(Binomial(int64(deck.CountCards()), 4)), nil
}

// pool tabulates what the deck can supply. When a card is pinned, every
// hand must contain it: ways() treats it as already chosen and the covers
// checks drop any pattern that leaves it out.
type pool struct {
	ranks    [poker.NumRanks]int64
	suits    [poker.NumSuits]int64
	suitMask [poker.NumSuits]uint16
	joker    int64

	pinned  bool
	pinRank uint8
	pinSuit uint8
}

func newPool(deck poker.Hand) *pool {
	p := &pool{}
	counts := deck.RankCounts()
	for r, n := range counts {
		p.ranks[r] = int64(n)
	}
	for suit := range uint8(poker.NumSuits) {
		p.suitMask[suit] = deck.GetSuitMask(suit)
		p.suits[suit] = int64(bits.OnesCount16(p.suitMask[suit]))
	}
	if deck.HasJoker() {
		p.joker = 1
	}
	return p
}

func (p *pool) pin(c poker.Card) {
	p.pinned = true
	p.pinRank = c.Rank()
	p.pinSuit = c.Suit()
}

// ways returns the number of ways to end with exactly k cards of rank.
func (p *pool) ways(rank int, k int) int64 {
	if p.pinned && uint8(rank) == p.pinRank {
		return Binomial(p.ranks[rank], int64(k-1))
	}
	return Binomial(p.ranks[rank], int64(k))
}

// suitWays returns the number of ways to end with exactly k cards of suit.
func (p *pool) suitWays(suit uint8, k int) int64 {
	if p.pinned && suit == p.pinSuit {
		return Binomial(p.suits[suit], int64(k-1))
	}
	return Binomial(p.suits[suit], int64(k))
}

func (p *pool) covers(ranks ...int) bool {
	if !p.pinned {
		return true
	}
	for _, r := range ranks {
		if uint8(r) == p.pinRank {
			return true
		}
	}
	return false
}

func (p *pool) coversMask(mask uint16) bool {
	return !p.pinned || mask&(1<<p.pinRank) != 0
}

// runWays returns the number of ways to hold exactly one card of every
// rank in mask, suits unrestricted.
func (p *pool) runWays(mask uint16) int64 {
	if !p.coversMask(mask) {
		return 0
	}
	ways := int64(1)
	for rest := mask; rest != 0; rest &= rest - 1 {
		ways *= p.ways(bits.TrailingZeros16(rest), 1)
	}
	return ways
}

// suitedRunWays is 1 when every rank of mask is available in suit.
func (p *pool) suitedRunWays(suit uint8, mask uint16) int64 {
	present := p.suitMask[suit]
	if p.pinned {
		if suit != p.pinSuit || mask&(1<<p.pinRank) == 0 {
			return 0
		}
		present |= 1 << p.pinRank
	}
	if mask&^present != 0 {
		return 0
	}
	return 1
}

// windowWays counts the hands filling a straight window with the given
// run counter: all five ranks, or any four of them plus the Joker.
func (p *pool) windowWays(window uint16, run func(uint16) int64) int64 {
	total := run(window)
	if p.joker == 0 {
		return total
	}
	forEachSubmask(window, 4, func(sub uint16) {
		total += run(sub)
	})
	return total
}

func (p *pool) tally(draws int64) Tally {
	t := Tally{Draws: draws}
	t.Counts[poker.FiveOfAKind] = p.fiveOfAKind()
	t.Counts[poker.FourOfAKind] = p.fourOfAKind()
	t.Counts[poker.FullHouse] = p.fullHouse()
	t.Counts[poker.ThreeOfAKind] = p.threeOfAKind()
	t.Counts[poker.TwoPair] = p.twoPair()

	royal := p.royalFlush()
	straightFlush := p.straightFlush()
	t.Counts[poker.RoyalStraightFlush] = royal
	t.Counts[poker.StraightFlush] = straightFlush
	t.Counts[poker.Straight] = p.straight() - straightFlush - royal
	t.Counts[poker.Flush] = p.flush() - straightFlush - royal

	t.Counts[poker.Lose] = draws - t.Wins()
	return t
}

// Joker plus four of a rank.
func (p *pool) fiveOfAKind() int64 {
	var n int64
	for r := range poker.NumRanks {
		if p.covers(r) {
			n += p.joker * p.ways(r, 4)
		}
	}
	return n
}

// 4+1, or Joker with 3+1.
func (p *pool) fourOfAKind() int64 {
	var n int64
	for a := range poker.NumRanks {
		for b := range poker.NumRanks {
			if a == b || !p.covers(a, b) {
				continue
			}
			n += (p.ways(a, 4) + p.joker*p.ways(a, 3)) * p.ways(b, 1)
		}
	}
	return n
}

// 3+2, or Joker with 2+2.
func (p *pool) fullHouse() int64 {
	var n int64
	for a := range poker.NumRanks {
		for b := range poker.NumRanks {
			if a == b || !p.covers(a, b) {
				continue
			}
			n += p.ways(a, 3) * p.ways(b, 2)
			if a < b {
				n += p.joker * p.ways(a, 2) * p.ways(b, 2)
			}
		}
	}
	return n
}

// 3+1+1, or Joker with 2+1+1.
func (p *pool) threeOfAKind() int64 {
	var n int64
	for a := range poker.NumRanks {
		trips := p.ways(a, 3) + p.joker*p.ways(a, 2)
		if trips == 0 {
			continue
		}
		for b := range poker.NumRanks {
			for c := b + 1; c < poker.NumRanks; c++ {
				if b == a || c == a || !p.covers(a, b, c) {
					continue
				}
				n += trips * p.ways(b, 1) * p.ways(c, 1)
			}
		}
	}
	return n
}

// 2+2+1; with the Joker the same cards make a full house instead.
func (p *pool) twoPair() int64 {
	var n int64
	for a := range poker.NumRanks {
		for b := a + 1; b < poker.NumRanks; b++ {
			pairs := p.ways(a, 2) * p.ways(b, 2)
			if pairs == 0 {
				continue
			}
			for c := range poker.NumRanks {
				if c == a || c == b || !p.covers(a, b, c) {
					continue
				}
				n += pairs * p.ways(c, 1)
			}
		}
	}
	return n
}

func (p *pool) royalFlush() int64 {
	var n int64
	for suit := range uint8(poker.NumSuits) {
		n += p.windowWays(poker.StraightWindows[poker.RoyalWindow], func(mask uint16) int64 {
			return p.suitedRunWays(suit, mask)
		})
	}
	return n
}

// Straight flushes below the royal. With the Joker each 4-rank run is
// reached from two windows; the 10-J-Q-K run belongs to the royal, so
// its single appearance (in the 9-K window) is removed as well.
func (p *pool) straightFlush() int64 {
	var n int64
	for suit := range uint8(poker.NumSuits) {
		suited := func(mask uint16) int64 { return p.suitedRunWays(suit, mask) }
		for _, window := range poker.StraightWindows[:poker.RoyalWindow] {
			n += p.windowWays(window, suited)
		}
		for _, run := range fourRuns {
			n -= p.joker * suited(run)
		}
	}
	return n
}

// Straights of any suits, straight flushes and royals included.
func (p *pool) straight() int64 {
	var n int64
	for _, window := range poker.StraightWindows {
		n += p.windowWays(window, p.runWays)
	}
	for _, run := range fourRuns {
		n -= p.joker * p.runWays(run)
	}
	return n
}

// Flushes of any ranks, straight flushes and royals included.
func (p *pool) flush() int64 {
	var n int64
	for suit := range uint8(poker.NumSuits) {
		if p.pinned && suit != p.pinSuit {
			continue
		}
		n += p.suitWays(suit, 5) + p.joker*p.suitWays(suit, 4)
	}
	return n
}
