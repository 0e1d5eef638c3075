package generator

import (
	"math/rand/v2"
	"strings"

	"rating-rank/config"
	"rating-rank/models"
	"rating-rank/utils"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces synthetic thumbs-up/thumbs-down ratings.
type Generator struct {
	cfg    *config.Config
	logger *utils.Logger
	rng    *rand.Rand
}

// NewRand returns a PCG-backed source. The same seed always yields the same stream.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates a Generator drawing from rng.
func New(cfg *config.Config, logger *utils.Logger, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, logger: logger, rng: rng}
}

// Generate returns cfg.SampleSize ratings with counts uniform in [0, cfg.MaxVotes].
// IDs are random and may repeat.
func (g *Generator) Generate() []*models.Rating {
	g.logger.Info("[generator] Generating %d ratings, votes in [0, %d]",
		g.cfg.SampleSize, g.cfg.MaxVotes)

	ratings := make([]*models.Rating, 0, g.cfg.SampleSize)
	for i := 0; i < g.cfg.SampleSize; i++ {
		ratings = append(ratings, &models.Rating{
			ID:       g.randomID(),
			Positive: g.rng.IntN(g.cfg.MaxVotes + 1),
			Negative: g.rng.IntN(g.cfg.MaxVotes + 1),
		})
	}

	g.logger.Debug("[generator] Generated %d ratings", len(ratings))
	return ratings
}

func (g *Generator) randomID() string {
	var b strings.Builder
	b.Grow(g.cfg.IDLength)
	for i := 0; i < g.cfg.IDLength; i++ {
		b.WriteByte(idAlphabet[g.rng.IntN(len(idAlphabet))])
	}
	return b.String()
}
