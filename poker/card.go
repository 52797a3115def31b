package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs][joker]
type Card uint64

// Suit constants
const (
	Spades   uint8 = 0
	Hearts   uint8 = 1
	Diamonds uint8 = 2
	Clubs    uint8 = 3
)

// Rank constants (Ace is low, 0-12 for A-K)
const (
	Ace   uint8 = 0
	Two   uint8 = 1
	Three uint8 = 2
	Four  uint8 = 3
	Five  uint8 = 4
	Six   uint8 = 5
	Seven uint8 = 6
	Eight uint8 = 7
	Nine  uint8 = 8
	Ten   uint8 = 9
	Jack  uint8 = 10
	Queen uint8 = 11
	King  uint8 = 12
)

const (
	NumRanks = 13
	NumSuits = 4

	// AceHigh is the straight position of an Ace played above the King.
	AceHigh uint8 = 13

	jokerBit = NumRanks * NumSuits
	// NoRank and NoSuit are returned for the Joker and for invalid cards.
	NoRank uint8 = 255
	NoSuit uint8 = 255
)

// Joker is the single wild card of the 53-card deck.
const Joker Card = 1 << jokerBit

var (
	// ErrInvalidCard is returned when a card encoding cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
)

const (
	rankChars = "A23456789TJQK"
	suitChars = "shdc"
)

var suitNames = [NumSuits]string{"Spades", "Hearts", "Diamonds", "Clubs"}
var rankNames = [NumRanks]string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	offset := suit*NumRanks + rank
	return Card(1) << offset
}

// GetBitPosition returns which bit position this card occupies (0-52)
func (c Card) GetBitPosition() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Valid reports whether c is exactly one of the 53 cards.
func (c Card) Valid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.GetBitPosition() <= jokerBit
}

// IsJoker reports whether c is the Joker.
func (c Card) IsJoker() bool {
	return c == Joker
}

// Rank returns the rank of the card (0-12), NoRank for the Joker
func (c Card) Rank() uint8 {
	pos := c.GetBitPosition()
	if pos >= jokerBit {
		return NoRank
	}
	return pos % NumRanks
}

// Suit returns the suit of the card (0-3), NoSuit for the Joker
func (c Card) Suit() uint8 {
	pos := c.GetBitPosition()
	if pos >= jokerBit {
		return NoSuit
	}
	return pos / NumRanks
}

// String returns the short representation (e.g., "As", "Th", "Jk")
func (c Card) String() string {
	if c.IsJoker() {
		return "Jk"
	}
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// Name returns the long form, e.g. "Ace of Spades" or "Joker".
func (c Card) Name() string {
	if c.IsJoker() {
		return "Joker"
	}
	if !c.Valid() {
		return "Unknown"
	}
	return rankNames[c.Rank()] + " of " + suitNames[c.Suit()]
}

// MarshalText implements encoding.TextMarshaler so cards serialize as "As".
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: bit pattern %#x", ErrInvalidCard, uint64(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses a string like "As" or "Jk" into a Card
func ParseCard(s string) (Card, error) {
	switch s {
	case "Jk", "JK", "jk", "X", "x":
		return Joker, nil
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("%w: invalid rank %q", ErrInvalidCard, s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("%w: invalid suit %q", ErrInvalidCard, s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a list of cards separated by spaces or commas
// ("As Kh Jk"), or concatenated two characters at a time ("AsKh").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) > 2 {
		joined := fields[0]
		if len(joined)%2 != 0 {
			return nil, fmt.Errorf("%w: odd length card list %q", ErrInvalidCard, joined)
		}
		fields = fields[:0]
		for i := 0; i < len(joined); i += 2 {
			fields = append(fields, joined[i:i+2])
		}
	}

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// wireJoker is the suit and rank the capture layer uses for the Joker.
const wireJoker = 99

// ParseWireCard parses the capture layer's "suit_rank" encoding, where
// both indices are 1-based (suit 1-4, rank 1-13 with Ace=1) and the
// Joker is "99_99".
func ParseWireCard(s string) (Card, error) {
	suitStr, rankStr, ok := strings.Cut(s, "_")
	if !ok {
		return 0, fmt.Errorf("%w: wire card %q has no separator", ErrInvalidCard, s)
	}
	suit, err := strconv.Atoi(suitStr)
	if err != nil {
		return 0, fmt.Errorf("%w: wire card %q: %v", ErrInvalidCard, s, err)
	}
	rank, err := strconv.Atoi(rankStr)
	if err != nil {
		return 0, fmt.Errorf("%w: wire card %q: %v", ErrInvalidCard, s, err)
	}

	if suit == wireJoker && rank == wireJoker {
		return Joker, nil
	}
	if suit < 1 || suit > NumSuits || rank < 1 || rank > NumRanks {
		return 0, fmt.Errorf("%w: wire card %q out of range", ErrInvalidCard, s)
	}
	return NewCard(uint8(rank-1), uint8(suit-1)), nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
