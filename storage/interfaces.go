package storage

import "rating-rank/models"

// TableWriter is the interface any export backend must satisfy.
type TableWriter interface {
	Write(rows []*models.RankedRating) error
	Close() error
}
