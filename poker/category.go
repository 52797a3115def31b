package poker

// Category enumerates the payout categories ordered from weakest to strongest.
type Category uint8

const (
	Lose Category = iota
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	RoyalStraightFlush

	NumCategories = int(RoyalStraightFlush) + 1
)

var multipliers = [NumCategories]int64{
	Lose:               0,
	TwoPair:            1,
	ThreeOfAKind:       1,
	Straight:           3,
	Flush:              4,
	FullHouse:          10,
	FourOfAKind:        20,
	StraightFlush:      25,
	FiveOfAKind:        60,
	RoyalStraightFlush: 250,
}

var categoryNames = [NumCategories]string{
	Lose:               "Lose",
	TwoPair:            "Two Pair",
	ThreeOfAKind:       "Three of a Kind",
	Straight:           "Straight",
	Flush:              "Flush",
	FullHouse:          "Full House",
	FourOfAKind:        "Four of a Kind",
	StraightFlush:      "Straight Flush",
	FiveOfAKind:        "Five of a Kind",
	RoyalStraightFlush: "Royal Straight Flush",
}

// Multiplier returns the chip multiplier paid for the category.
func (c Category) Multiplier() int64 {
	if int(c) >= NumCategories {
		return 0
	}
	return multipliers[c]
}

// IsWin reports whether the category pays anything.
func (c Category) IsWin() bool {
	return c != Lose
}

// String returns a human-readable category name.
func (c Category) String() string {
	if int(c) >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Categories returns every category from weakest to strongest.
func Categories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}
