package models

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// RatingColumns is the header of the scored ratings table.
var RatingColumns = []string{
	"id", "positive", "negative", "total",
	"net_score", "average_score", "ratio_score", "lower_bound",
}

// RankColumns is the header of the rank columns appended to the ratings table.
var RankColumns = []string{
	"rank_net_score", "rank_average_score", "rank_ratio_score", "rank_lower_bound",
}

// Rating is one synthetic item with its thumbs-up and thumbs-down counts.
type Rating struct {
	ID       string
	Positive int
	Negative int
}

// ScoredRating is a Rating with the four scores derived from its counts.
type ScoredRating struct {
	Rating
	Total      int
	Net        int
	Average    float64
	Ratio      float64
	LowerBound float64
}

// Fields renders the row in RatingColumns order.
func (s *ScoredRating) Fields() []string {
	return []string{
		s.ID,
		strconv.Itoa(s.Positive),
		strconv.Itoa(s.Negative),
		strconv.Itoa(s.Total),
		strconv.Itoa(s.Net),
		formatFloat(s.Average),
		formatFloat(s.Ratio),
		formatFloat(s.LowerBound),
	}
}

// Ranks holds the fractional rank of each score within the whole dataset.
type Ranks struct {
	Net        float64
	Average    float64
	Ratio      float64
	LowerBound float64
}

// RankedRating is one row of the final table: scores plus their ranks.
type RankedRating struct {
	ScoredRating
	Ranks Ranks
}

// Fields renders the row in RatingColumns + RankColumns order.
func (r *RankedRating) Fields() []string {
	return append(r.ScoredRating.Fields(),
		formatFloat(r.Ranks.Net),
		formatFloat(r.Ranks.Average),
		formatFloat(r.Ranks.Ratio),
		formatFloat(r.Ranks.LowerBound),
	)
}

// LowerBoundCheck compares a row's stored lower bound with a direct call
// on the same counts.
type LowerBoundCheck struct {
	ID       string
	Positive int
	Total    int
	Row      float64
	Direct   float64
	Equal    bool
}

// Report holds everything the experiment prints.
type Report struct {
	SampleSize int
	Confidence float64
	Seed       uint64

	Rows        []*RankedRating
	Labels      []string
	Correlation *mat.SymDense
	Check       LowerBoundCheck
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
