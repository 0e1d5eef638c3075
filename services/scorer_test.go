package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rating-rank/models"
	"rating-rank/utils"
)

func TestNetScore(t *testing.T) {
	assert.Equal(t, 404, NetScore(1000, 596))
	assert.Equal(t, -7, NetScore(3, 10))
	assert.Equal(t, 0, NetScore(0, 0))
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		pos, neg int
		want     float64
	}{
		{1, 1, 0.5},
		{3, 1, 0.75},
		{0, 5, 0},
		{5, 0, 1},
		{0, 0, ZeroDenominatorScore},
	}

	for _, tt := range tests {
		got := AverageScore(tt.pos, tt.neg)
		assert.False(t, math.IsNaN(got), "AverageScore(%d, %d) is NaN", tt.pos, tt.neg)
		assert.Equal(t, tt.want, got, "AverageScore(%d, %d)", tt.pos, tt.neg)
	}
}

func TestRatioScore(t *testing.T) {
	tests := []struct {
		pos, neg int
		want     float64
	}{
		{10, 5, 2},
		{1, 4, 0.25},
		{0, 4, 0},
		{7, 0, ZeroDenominatorScore},
		{0, 0, ZeroDenominatorScore},
	}

	for _, tt := range tests {
		got := RatioScore(tt.pos, tt.neg)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "RatioScore(%d, %d) = %v", tt.pos, tt.neg, got)
		assert.Equal(t, tt.want, got, "RatioScore(%d, %d)", tt.pos, tt.neg)
	}
}

func TestWilsonLowerBoundKnownValues(t *testing.T) {
	tests := []struct {
		pos, n int
		want   float64
	}{
		{1000, 1596, 0.6025577515861189},
		{10, 10, 0.7224672001371109},
		{5, 10, 0.23659309051256402},
		{1, 1, 0.2065493143772375},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got, err := WilsonLowerBound(tt.pos, tt.n, 0.95)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "wlb(%d, %d)", tt.pos, tt.n)
	}
}

func TestWilsonLowerBoundZeroPositives(t *testing.T) {
	for _, n := range []int{1, 10, 1000} {
		got, err := WilsonLowerBound(0, n, 0.95)
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-12, "n=%d", n)
		assert.GreaterOrEqual(t, got, 0.0)
	}
}

func TestWilsonLowerBoundAllPositivesBelowOne(t *testing.T) {
	prev := 0.0
	for _, pos := range []int{1, 10, 100, 1000} {
		got, err := LowerBoundScore(pos, 0, 0.95)
		require.NoError(t, err)
		assert.Less(t, got, AverageScore(pos, 0), "pos=%d", pos)
		assert.Greater(t, got, prev, "bound should tighten as votes grow")
		prev = got
	}
}

func TestWilsonLowerBoundRejectsConfidence(t *testing.T) {
	for _, c := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := WilsonLowerBound(5, 10, c)
		assert.ErrorIs(t, err, ErrInvalidConfidence, "confidence %v", c)
	}

	_, err := NewScorer(1, utils.NewNopLogger())
	assert.ErrorIs(t, err, ErrInvalidConfidence)
}

func TestWilsonLowerBoundRejectsCounts(t *testing.T) {
	for _, c := range [][2]int{{-1, 5}, {3, -1}, {6, 5}} {
		_, err := WilsonLowerBound(c[0], c[1], 0.95)
		assert.ErrorIs(t, err, ErrInvalidCounts, "pos=%d n=%d", c[0], c[1])
	}
}

func TestLowerBoundWithinUnitIntervalAndBelowAverage(t *testing.T) {
	for _, conf := range []float64{0.5, 0.8, 0.95, 0.99} {
		for pos := 0; pos <= 60; pos += 3 {
			for neg := 0; neg <= 60; neg += 4 {
				lb, err := LowerBoundScore(pos, neg, conf)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, lb, 0.0)
				assert.LessOrEqual(t, lb, 1.0)
				if pos+neg > 0 {
					assert.LessOrEqual(t, lb, AverageScore(pos, neg),
						"lb(%d, %d, %v) above average", pos, neg, conf)
				}
			}
		}
	}
}

func TestHigherConfidenceLowersBound(t *testing.T) {
	lo, err := LowerBoundScore(70, 30, 0.99)
	require.NoError(t, err)
	hi, err := LowerBoundScore(70, 30, 0.80)
	require.NoError(t, err)

	assert.Less(t, lo, hi)
}

func TestScorerRowMatchesDirectCall(t *testing.T) {
	scorer, err := NewScorer(0.95, utils.NewNopLogger())
	require.NoError(t, err)

	scored := scorer.Score([]*models.Rating{{ID: "check", Positive: 1000, Negative: 596}})
	require.Len(t, scored, 1)

	direct, err := WilsonLowerBound(1000, 1596, 0.95)
	require.NoError(t, err)

	assert.Equal(t, 1596, scored[0].Total)
	assert.Equal(t, direct, scored[0].LowerBound)
}

func TestScorerScore(t *testing.T) {
	scorer, err := NewScorer(0.95, utils.NewNopLogger())
	require.NoError(t, err)

	in := []*models.Rating{
		{ID: "a", Positive: 30, Negative: 10},
		{ID: "b", Positive: 0, Negative: 0},
		{ID: "c", Positive: 12, Negative: 0},
	}
	scored := scorer.Score(in)
	require.Len(t, scored, len(in))

	assert.Equal(t, models.ScoredRating{
		Rating:     *in[0],
		Total:      40,
		Net:        20,
		Average:    0.75,
		Ratio:      3,
		LowerBound: scored[0].LowerBound,
	}, *scored[0])
	assert.Greater(t, scored[0].LowerBound, 0.0)

	assert.Equal(t, ZeroDenominatorScore, scored[1].Average)
	assert.Equal(t, ZeroDenominatorScore, scored[1].Ratio)
	assert.Equal(t, 0.0, scored[1].LowerBound)

	assert.Equal(t, 1.0, scored[2].Average)
	assert.Equal(t, ZeroDenominatorScore, scored[2].Ratio)

	// Inputs stay untouched.
	assert.Equal(t, &models.Rating{ID: "a", Positive: 30, Negative: 10}, in[0])
}

func TestScorerZ(t *testing.T) {
	scorer, err := NewScorer(0.95, utils.NewNopLogger())
	require.NoError(t, err)

	assert.InDelta(t, 1.959963984540054, scorer.Z(), 1e-9)
	assert.Equal(t, 0.95, scorer.Confidence())
}
