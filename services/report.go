package services

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"rating-rank/config"
	"rating-rank/models"
	"rating-rank/utils"
)

type ReportService struct {
	cfg    *config.Config
	logger *utils.Logger
}

func NewReportService(cfg *config.Config, logger *utils.Logger) *ReportService {
	return &ReportService{cfg: cfg, logger: logger}
}

// Generate assembles the report and re-checks the first row's lower bound
// against a direct WilsonLowerBound call on the same counts.
func (s *ReportService) Generate(rows []*models.RankedRating, corr *mat.SymDense, seed uint64) (*models.Report, error) {
	report := &models.Report{
		SampleSize:  len(rows),
		Confidence:  s.cfg.Confidence,
		Seed:        seed,
		Rows:        rows,
		Labels:      ScoreLabels,
		Correlation: corr,
	}

	if len(rows) == 0 {
		return report, nil
	}

	first := rows[0]
	direct, err := WilsonLowerBound(first.Positive, first.Total, s.cfg.Confidence)
	if err != nil {
		return nil, fmt.Errorf("report: direct lower bound: %w", err)
	}
	report.Check = models.LowerBoundCheck{
		ID:       first.ID,
		Positive: first.Positive,
		Total:    first.Total,
		Row:      first.LowerBound,
		Direct:   direct,
		Equal:    direct == first.LowerBound,
	}
	if !report.Check.Equal {
		s.logger.Warn("[report] Row %s lower bound %v differs from direct call %v",
			first.ID, first.LowerBound, direct)
	}

	return report, nil
}

func (s *ReportService) Print(w io.Writer, r *models.Report) {
	sep := strings.Repeat("═", 72)
	thin := strings.Repeat("─", 72)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  RANKING FORMULA COMPARISON\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Ratings generated : \033[1m%d\033[0m\n", r.SampleSize)
	fmt.Fprintf(w, "  Confidence        : \033[1m%.4g\033[0m\n", r.Confidence)
	fmt.Fprintf(w, "  Seed              : \033[1m%d\033[0m\n", r.Seed)
	fmt.Fprintln(w)

	// Preview
	preview := r.Rows
	if len(preview) > s.cfg.PreviewRows {
		preview = preview[:s.cfg.PreviewRows]
	}
	fmt.Fprintf(w, "\033[1;33m  Final data (first %d of %d rows)\033[0m\n", len(preview), len(r.Rows))
	fmt.Fprintf(w, "  %s\n", thin)
	if len(preview) == 0 {
		fmt.Fprintf(w, "  No rows to show\n")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		header := append(append([]string{}, models.RatingColumns...), models.RankColumns...)
		fmt.Fprintf(tw, "%s\t\n", strings.Join(header, "\t"))
		for _, row := range preview {
			fmt.Fprintf(tw, "%s\t\n", strings.Join(previewFields(row), "\t"))
		}
		_ = tw.Flush()
	}
	fmt.Fprintln(w)

	// Correlation
	fmt.Fprintf(w, "\033[1;33m  Spearman rank-order correlation\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.Correlation == nil {
		fmt.Fprintf(w, "  Not computed\n")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "\t%s\t\n", strings.Join(r.Labels, "\t"))
		n := r.Correlation.SymmetricDim()
		for i := 0; i < n; i++ {
			cells := make([]string, n)
			for j := 0; j < n; j++ {
				cells[j] = fmt.Sprintf("%.6f", r.Correlation.At(i, j))
			}
			fmt.Fprintf(tw, "%s\t%s\t\n", r.Labels[i], strings.Join(cells, "\t"))
		}
		_ = tw.Flush()
	}
	fmt.Fprintln(w)

	// Lower bound check
	if len(r.Rows) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Lower bound check\033[0m\n")
		fmt.Fprintf(w, "  %s\n", thin)
		status := "\033[1;32mequal\033[0m"
		if !r.Check.Equal {
			status = "\033[1;31mDIFFERENT\033[0m"
		}
		fmt.Fprintf(w, "  wlb(pos=%d, n=%d) direct : %.12f\n", r.Check.Positive, r.Check.Total, r.Check.Direct)
		fmt.Fprintf(w, "  row %-20s : %.12f (%s)\n", r.Check.ID, r.Check.Row, status)
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func previewFields(r *models.RankedRating) []string {
	return []string{
		r.ID,
		fmt.Sprintf("%d", r.Positive),
		fmt.Sprintf("%d", r.Negative),
		fmt.Sprintf("%d", r.Total),
		fmt.Sprintf("%d", r.Net),
		fmt.Sprintf("%.4f", r.Average),
		fmt.Sprintf("%.4f", r.Ratio),
		fmt.Sprintf("%.4f", r.LowerBound),
		fmt.Sprintf("%.1f", r.Ranks.Net),
		fmt.Sprintf("%.1f", r.Ranks.Average),
		fmt.Sprintf("%.1f", r.Ranks.Ratio),
		fmt.Sprintf("%.1f", r.Ranks.LowerBound),
	}
}
