package explore

import "github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"

// CombinedProfile is a user profile plus the solved count derived
// from their submissions, as shown on the comparison page.
type CombinedProfile struct {
	codeforces.User
	Solved int `json:"solved"`
}

// Outcome says which side of a comparison wins a metric.
type Outcome string

const (
	OutcomeFirst  Outcome = "first"
	OutcomeSecond Outcome = "second"
	OutcomeEven   Outcome = "even"
)

// Comparison holds the per-metric verdicts for two users. Overall
// follows current rating alone.
type Comparison struct {
	Rating       Outcome `json:"rating"`
	MaxRating    Outcome `json:"maxRating"`
	Solved       Outcome `json:"solved"`
	Contribution Outcome `json:"contribution"`
	Overall      Outcome `json:"overall"`
}

// Compare evaluates two profiles metric by metric. A metric is won
// only by a strictly greater value.
func Compare(a, b CombinedProfile) Comparison {
	return Comparison{
		Rating:       outcome(a.Rating, b.Rating),
		MaxRating:    outcome(a.MaxRating, b.MaxRating),
		Solved:       outcome(a.Solved, b.Solved),
		Contribution: outcome(a.Contribution, b.Contribution),
		Overall:      outcome(a.Rating, b.Rating),
	}
}

func outcome(a, b int) Outcome {
	switch {
	case a > b:
		return OutcomeFirst
	case b > a:
		return OutcomeSecond
	default:
		return OutcomeEven
	}
}
