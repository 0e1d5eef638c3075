package services

import (
	"errors"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"rating-rank/models"
	"rating-rank/utils"
)

// ScoreLabels names the rows and columns of the correlation matrix.
var ScoreLabels = []string{"net_score", "average_score", "ratio_score", "lower_bound"}

var ErrEmptyDataset = errors.New("correlation: no rows to correlate")

// CorrelationService computes Spearman rank correlations between score columns.
type CorrelationService struct {
	logger *utils.Logger
}

// NewCorrelationService creates a CorrelationService with the given logger.
func NewCorrelationService(logger *utils.Logger) *CorrelationService {
	return &CorrelationService{logger: logger}
}

// Spearman returns the symmetric matrix of Pearson correlations between the
// rank columns of rows, ordered as ScoreLabels. The diagonal is exactly 1.
// A pair involving a constant rank column has no defined correlation and is
// reported as 0.
func (s *CorrelationService) Spearman(rows []*models.RankedRating) (*mat.SymDense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	cols := rankColumns(rows)
	m := mat.NewSymDense(len(cols), nil)

	for i := range cols {
		m.SetSym(i, i, 1)
		for j := i + 1; j < len(cols); j++ {
			r := stat.Correlation(cols[i], cols[j], nil)
			if math.IsNaN(r) {
				s.logger.Warn("[correlation] %s vs %s is undefined (constant ranks over %d rows), using 0",
					ScoreLabels[i], ScoreLabels[j], len(rows))
				r = 0
			}
			m.SetSym(i, j, math.Max(-1, math.Min(1, r)))
		}
	}

	s.logger.Info("[correlation] Computed %dx%d Spearman matrix over %d rows", len(cols), len(cols), len(rows))
	return m, nil
}

func rankColumns(rows []*models.RankedRating) [][]float64 {
	return [][]float64{
		lo.Map(rows, func(r *models.RankedRating, _ int) float64 { return r.Ranks.Net }),
		lo.Map(rows, func(r *models.RankedRating, _ int) float64 { return r.Ranks.Average }),
		lo.Map(rows, func(r *models.RankedRating, _ int) float64 { return r.Ranks.Ratio }),
		lo.Map(rows, func(r *models.RankedRating, _ int) float64 { return r.Ranks.LowerBound }),
	}
}
