package services

import (
	"fmt"

	"rating-rank/config"
	"rating-rank/generator"
	"rating-rank/models"
	"rating-rank/utils"
)

// Experiment wires generation, scoring, ranking and correlation into one run.
type Experiment struct {
	cfg    *config.Config
	logger *utils.Logger
}

func NewExperiment(cfg *config.Config, logger *utils.Logger) *Experiment {
	return &Experiment{cfg: cfg, logger: logger}
}

// Run executes the whole pipeline with a generator seeded by seed.
func (e *Experiment) Run(seed uint64) (*models.Report, error) {
	scorer, err := NewScorer(e.cfg.Confidence, e.logger)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	ratings := generator.New(e.cfg, e.logger, generator.NewRand(seed)).Generate()
	scored := scorer.Score(ratings)
	rows := NewRanker(e.logger).Rank(scored)

	corr, err := NewCorrelationService(e.logger).Spearman(rows)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	return NewReportService(e.cfg, e.logger).Generate(rows, corr, seed)
}
