package explore

import (
	"testing"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

func profile(rating, maxRating, solved, contribution int) CombinedProfile {
	return CombinedProfile{
		User: codeforces.User{
			Rating:       rating,
			MaxRating:    maxRating,
			Contribution: contribution,
		},
		Solved: solved,
	}
}

func TestCompare(t *testing.T) {
	a := profile(1900, 2100, 500, 10)
	b := profile(1850, 2150, 500, -3)

	got := Compare(a, b)
	want := Comparison{
		Rating:       OutcomeFirst,
		MaxRating:    OutcomeSecond,
		Solved:       OutcomeEven,
		Contribution: OutcomeFirst,
		Overall:      OutcomeFirst,
	}
	if got != want {
		t.Errorf("Compare() = %+v, want %+v", got, want)
	}
}

func TestCompareTie(t *testing.T) {
	a := profile(1500, 1700, 300, 5)
	got := Compare(a, a)
	want := Comparison{
		Rating:       OutcomeEven,
		MaxRating:    OutcomeEven,
		Solved:       OutcomeEven,
		Contribution: OutcomeEven,
		Overall:      OutcomeEven,
	}
	if got != want {
		t.Errorf("Compare(a, a) = %+v, want all even", got)
	}
}

func TestCompareSymmetric(t *testing.T) {
	a := profile(2400, 2500, 900, 50)
	b := profile(1200, 1300, 100, 0)

	forward := Compare(a, b)
	backward := Compare(b, a)

	flip := func(o Outcome) Outcome {
		switch o {
		case OutcomeFirst:
			return OutcomeSecond
		case OutcomeSecond:
			return OutcomeFirst
		}
		return o
	}
	if backward.Rating != flip(forward.Rating) ||
		backward.MaxRating != flip(forward.MaxRating) ||
		backward.Solved != flip(forward.Solved) ||
		backward.Contribution != flip(forward.Contribution) ||
		backward.Overall != flip(forward.Overall) {
		t.Errorf("Compare is not symmetric: %+v vs %+v", forward, backward)
	}
}
