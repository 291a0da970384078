// Package day02 scores a rock-paper-scissors strategy guide.
package day02

import (
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Move values double as their shape score.
type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// Outcome values double as their round score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Beats returns the move m defeats.
func (m Move) Beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the move that defeats m.
func (m Move) LosesTo() Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Play returns the outcome for us.
func Play(us, them Move) Outcome {
	switch {
	case us == them:
		return Draw
	case us.Beats() == them:
		return Win
	default:
		return Lose
	}
}

// Respond picks our move so that the round ends with want.
func Respond(them Move, want Outcome) Move {
	switch want {
	case Lose:
		return them.Beats()
	case Win:
		return them.LosesTo()
	default:
		return them
	}
}

// Round is one guide line: their move and our column code (X, Y or Z).
type Round struct {
	Them Move
	Code byte
}

// Parse reads lines of the form "A Y".
func Parse(lines []string) ([]Round, error) {
	rounds := make([]Round, 0, len(lines))
	for i, l := range lines {
		if len(l) != 3 || l[1] != ' ' {
			return nil, parse.Errorf(i, l, "want \"<A|B|C> <X|Y|Z>\"")
		}
		them, ok := theirMove(l[0])
		if !ok {
			return nil, parse.Errorf(i, l, "unknown move %q", l[0])
		}
		if l[2] < 'X' || l[2] > 'Z' {
			return nil, parse.Errorf(i, l, "unknown code %q", l[2])
		}
		rounds = append(rounds, Round{Them: them, Code: l[2]})
	}
	return rounds, nil
}

func theirMove(b byte) (Move, bool) {
	switch b {
	case 'A':
		return Rock, true
	case 'B':
		return Paper, true
	case 'C':
		return Scissors, true
	}
	return 0, false
}

// ScoreAsMoves reads X, Y, Z as Rock, Paper, Scissors.
func ScoreAsMoves(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		us := Move(r.Code-'X') + Rock
		total += int(Play(us, r.Them)) + int(us)
	}
	return total
}

// ScoreAsOutcomes reads X, Y, Z as lose, draw, win.
func ScoreAsOutcomes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		want := [...]Outcome{Lose, Draw, Win}[r.Code-'X']
		total += int(want) + int(Respond(r.Them, want))
	}
	return total
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 2 }
func (*Puzzle) Title() string { return "Rock Paper Scissors" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	rounds, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(ScoreAsMoves(rounds)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	rounds, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(ScoreAsOutcomes(rounds)), nil
}
