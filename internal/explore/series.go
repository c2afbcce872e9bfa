package explore

import (
	"time"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

// RatingPoint is one contest on the rating chart.
type RatingPoint struct {
	Index       int    `json:"index"`
	ContestID   int    `json:"contestId"`
	ContestName string `json:"contestName"`
	Date        string `json:"date"`
	OldRating   int    `json:"oldRating"`
	NewRating   int    `json:"newRating"`
	Delta       int    `json:"delta"`
	Rank        int    `json:"rank"`
}

// BuildRatingSeries turns a rating history into chart points,
// preserving the chronological order the API returns.
func BuildRatingSeries(changes []codeforces.RatingChange) []RatingPoint {
	points := make([]RatingPoint, 0, len(changes))
	for i, c := range changes {
		points = append(points, RatingPoint{
			Index:       i + 1,
			ContestID:   c.ContestID,
			ContestName: c.ContestName,
			Date:        time.Unix(c.RatingUpdateTimeSeconds, 0).Format("Jan 2, 2006"),
			OldRating:   c.OldRating,
			NewRating:   c.NewRating,
			Delta:       c.NewRating - c.OldRating,
			Rank:        c.Rank,
		})
	}
	return points
}

// SeriesSummary is the headline numbers above the rating chart.
type SeriesSummary struct {
	CurrentRating int `json:"currentRating"`
	MaxRating     int `json:"maxRating"`
	MinRating     int `json:"minRating"`
	TotalChange   int `json:"totalChange"`
	Contests      int `json:"contests"`
}

// SummarizeSeries computes aggregate stats over a rating series. The
// second return is false when the user has no rated contests.
func SummarizeSeries(points []RatingPoint) (SeriesSummary, bool) {
	if len(points) == 0 {
		return SeriesSummary{}, false
	}
	first := points[0]
	last := points[len(points)-1]
	s := SeriesSummary{
		CurrentRating: last.NewRating,
		MaxRating:     first.NewRating,
		MinRating:     first.NewRating,
		TotalChange:   last.NewRating - first.OldRating,
		Contests:      len(points),
	}
	for _, p := range points {
		if p.NewRating > s.MaxRating {
			s.MaxRating = p.NewRating
		}
		if p.NewRating < s.MinRating {
			s.MinRating = p.NewRating
		}
	}
	return s, true
}
