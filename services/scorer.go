package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/distuv"

	"rating-rank/models"
	"rating-rank/utils"
)

// ZeroDenominatorScore is returned by AverageScore and RatioScore when their
// denominator is zero.
const ZeroDenominatorScore = 0.0

var (
	ErrInvalidConfidence = errors.New("confidence must lie strictly between 0 and 1")
	ErrInvalidCounts     = errors.New("counts must satisfy 0 <= pos <= n")
)

// NetScore is positive minus negative votes.
func NetScore(pos, neg int) int {
	return pos - neg
}

// AverageScore is the share of positive votes, or ZeroDenominatorScore when
// there are no votes at all.
func AverageScore(pos, neg int) float64 {
	if pos+neg == 0 {
		return ZeroDenominatorScore
	}
	return float64(pos) / float64(pos+neg)
}

// RatioScore is positive votes per negative vote, or ZeroDenominatorScore
// when there are no negative votes.
func RatioScore(pos, neg int) float64 {
	if neg == 0 {
		return ZeroDenominatorScore
	}
	return float64(pos) / float64(neg)
}

// WilsonLowerBound returns the lower bound of the Wilson score interval for
// pos successes out of n trials at the given two-sided confidence level.
// It returns 0 when n is 0.
func WilsonLowerBound(pos, n int, confidence float64) (float64, error) {
	z, err := zScore(confidence)
	if err != nil {
		return 0, err
	}
	if pos < 0 || n < 0 || pos > n {
		return 0, fmt.Errorf("%w: pos=%d n=%d", ErrInvalidCounts, pos, n)
	}
	return wilson(pos, n, z), nil
}

// LowerBoundScore is WilsonLowerBound over pos+neg trials.
func LowerBoundScore(pos, neg int, confidence float64) (float64, error) {
	return WilsonLowerBound(pos, pos+neg, confidence)
}

func zScore(confidence float64) (float64, error) {
	// Written as a negated range check so NaN is rejected too.
	if !(confidence > 0 && confidence < 1) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidConfidence, confidence)
	}
	return distuv.UnitNormal.Quantile(1 - (1-confidence)/2), nil
}

func wilson(pos, n int, z float64) float64 {
	if n == 0 {
		return 0
	}
	// The formula is exactly 0 here, but rounding leaves a residue of about 1e-17.
	if pos == 0 {
		return 0
	}
	nf := float64(n)
	phat := float64(pos) / nf
	return (phat + z*z/(2*nf) - z*math.Sqrt((phat*(1-phat)+z*z/(4*nf))/nf)) / (1 + z*z/nf)
}

// Scorer derives the four scores for every rating at a fixed confidence level.
type Scorer struct {
	confidence float64
	z          float64
	logger     *utils.Logger
}

// NewScorer validates confidence and precomputes its normal quantile.
func NewScorer(confidence float64, logger *utils.Logger) (*Scorer, error) {
	z, err := zScore(confidence)
	if err != nil {
		return nil, err
	}
	return &Scorer{confidence: confidence, z: z, logger: logger}, nil
}

// Confidence returns the level the scorer was built with.
func (s *Scorer) Confidence() float64 { return s.confidence }

// Z returns the standard normal quantile used for the lower bound.
func (s *Scorer) Z() float64 { return s.z }

// Score maps each rating to a new ScoredRating. The input is not modified.
func (s *Scorer) Score(ratings []*models.Rating) []*models.ScoredRating {
	scored := lo.Map(ratings, func(r *models.Rating, _ int) *models.ScoredRating {
		total := r.Positive + r.Negative
		return &models.ScoredRating{
			Rating:     *r,
			Total:      total,
			Net:        NetScore(r.Positive, r.Negative),
			Average:    AverageScore(r.Positive, r.Negative),
			Ratio:      RatioScore(r.Positive, r.Negative),
			LowerBound: wilson(r.Positive, total, s.z),
		}
	})

	noVotes := lo.CountBy(scored, func(r *models.ScoredRating) bool { return r.Total == 0 })
	noNegatives := lo.CountBy(scored, func(r *models.ScoredRating) bool { return r.Negative == 0 })
	if noVotes > 0 || noNegatives > 0 {
		s.logger.Debug("[scorer] Zero denominators: %d without votes, %d without negative votes",
			noVotes, noNegatives)
	}

	s.logger.Info("[scorer] Scored %d ratings (confidence %.2f, z %.4f)",
		len(scored), s.confidence, s.z)
	return scored
}
