package port

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type StatsRepository interface {
	// HotCategories counts available products per category, most stocked first.
	HotCategories(ctx context.Context) ([]domain.CategoryCount, error)

	// PriceDistribution buckets available products by price range.
	PriceDistribution(ctx context.Context) ([]domain.PriceBucket, error)

	// TableStats returns row counts per table and the product status histogram.
	TableStats(ctx context.Context) (*domain.TableStats, error)
}
