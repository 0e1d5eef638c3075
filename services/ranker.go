package services

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"rating-rank/models"
	"rating-rank/utils"
)

// FractionalRank returns the 1-based ascending rank of every value. Tied
// values share the mean of the positions they occupy, so {10, 20, 20, 30}
// ranks as {1, 2.5, 2.5, 4}.
func FractionalRank(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	order := make([]int, len(values))
	floats.Argsort(sorted, order)

	ranks := make([]float64, len(values))
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		// Positions i+1 .. j.
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avg
		}
		i = j
	}
	return ranks
}

// Ranker attaches per-column fractional ranks to scored ratings.
type Ranker struct {
	logger *utils.Logger
}

// NewRanker creates a Ranker with the given logger.
func NewRanker(logger *utils.Logger) *Ranker {
	return &Ranker{logger: logger}
}

// Rank ranks each score column over the whole dataset and returns rows
// aligned with the input.
func (r *Ranker) Rank(scored []*models.ScoredRating) []*models.RankedRating {
	net := FractionalRank(lo.Map(scored, func(s *models.ScoredRating, _ int) float64 { return float64(s.Net) }))
	avg := FractionalRank(lo.Map(scored, func(s *models.ScoredRating, _ int) float64 { return s.Average }))
	ratio := FractionalRank(lo.Map(scored, func(s *models.ScoredRating, _ int) float64 { return s.Ratio }))
	lb := FractionalRank(lo.Map(scored, func(s *models.ScoredRating, _ int) float64 { return s.LowerBound }))

	rows := lo.Map(scored, func(s *models.ScoredRating, i int) *models.RankedRating {
		return &models.RankedRating{
			ScoredRating: *s,
			Ranks: models.Ranks{
				Net:        net[i],
				Average:    avg[i],
				Ratio:      ratio[i],
				LowerBound: lb[i],
			},
		}
	})

	r.logger.Info("[ranker] Ranked %d rows across %d score columns", len(rows), len(models.RankColumns))
	return rows
}
