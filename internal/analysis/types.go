package analysis

import "fmt"

// Stat identifies a player stat category.
type Stat string

const (
	StatPoints   Stat = "points"
	StatRebounds Stat = "rebounds"
	StatAssists  Stat = "assists"
	StatThrees   Stat = "threes"
	StatSteals   Stat = "steals"
	StatBlocks   Stat = "blocks"
)

// Direction is the side of an over/under market.
type Direction string

const (
	Over  Direction = "over"
	Under Direction = "under"
)

// Opposite returns the other side of the market.
func (d Direction) Opposite() Direction {
	if d == Over {
		return Under
	}
	return Over
}

// Book identifies a sportsbook.
type Book string

const (
	BookDraftKings Book = "draftkings"
	BookFanDuel    Book = "fanduel"
	BookESPNBet    Book = "espnbet"
	BookBetMGM     Book = "betmgm"
	BookCaesars    Book = "caesars"
	BookPointsBet  Book = "pointsbet"
)

// Prediction is a model's point estimate for one player stat.
// StdDev of 0 means the model supplied no uncertainty and a per-stat
// default is derived at generation time.
type Prediction struct {
	Player string
	Stat   Stat
	Value  float64
	StdDev float64
}

// MarketLine is one sportsbook quote: a threshold and American odds for one
// side of a player prop. Treated as an immutable snapshot per generation run.
type MarketLine struct {
	Player    string
	Stat      Stat
	Direction Direction
	Line      float64
	Odds      int
	Book      Book
}

// Recommendation is one priced, sized bet. Created once per generation run
// and never mutated afterwards.
type Recommendation struct {
	Player      string
	Stat        Stat
	Direction   Direction
	Line        float64
	Odds        int
	Probability float64 // model probability the bet wins, in (0, 1)
	EV          float64 // expected profit per unit staked
	FairValue   int     // American odds implied by Probability
	Units       float64 // fractional-Kelly stake, 1u = 1% of bankroll
	Book        Book
	MarketProb  float64 // vig-free market probability, 0 if one-sided quote
	IsMainline  bool
	IsLongshot  bool
}

// Diagnostic records why a single prediction or quote was excluded from a
// run's output. A bad record never fails the whole batch.
type Diagnostic struct {
	Player    string
	Stat      Stat
	Direction Direction
	Book      Book
	Err       error
}

func (d Diagnostic) String() string {
	if d.Book != "" {
		return fmt.Sprintf("%s %s %s @ %s: %v", d.Player, d.Direction, d.Stat, d.Book, d.Err)
	}
	return fmt.Sprintf("%s %s: %v", d.Player, d.Stat, d.Err)
}
