package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type StatsAdapter struct {
	db *sql.DB
}

func NewStatsAdapter(db *sql.DB) *StatsAdapter {
	return &StatsAdapter{db: db}
}

func (a *StatsAdapter) HotCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT c.category_name, COUNT(p.product_id) AS count
		FROM category c
		LEFT JOIN product p ON c.category_id = p.category_id AND p.status = 1
		GROUP BY c.category_id, c.category_name
		ORDER BY count DESC`,
	)
	if err != nil {
		return nil, classify("query hot categories", err)
	}
	defer rows.Close()

	counts := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, classify("scan hot category", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate hot categories", err)
	}
	return counts, nil
}

func (a *StatsAdapter) PriceDistribution(ctx context.Context) ([]domain.PriceBucket, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT
			CASE
				WHEN price <= 50 THEN '0-50'
				WHEN price <= 100 THEN '51-100'
				WHEN price <= 200 THEN '101-200'
				WHEN price <= 500 THEN '201-500'
				ELSE '500+'
			END AS price_range,
			COUNT(*) AS count
		FROM product
		WHERE status = 1
		GROUP BY price_range
		ORDER BY
			CASE price_range
				WHEN '0-50' THEN 1
				WHEN '51-100' THEN 2
				WHEN '101-200' THEN 3
				WHEN '201-500' THEN 4
				ELSE 5
			END`,
	)
	if err != nil {
		return nil, classify("query price distribution", err)
	}
	defer rows.Close()

	buckets := []domain.PriceBucket{}
	for rows.Next() {
		var b domain.PriceBucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, classify("scan price bucket", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate price buckets", err)
	}
	return buckets, nil
}

func (a *StatsAdapter) TableStats(ctx context.Context) (*domain.TableStats, error) {
	rows, err := a.db.QueryContext(ctx, `SHOW TABLES`)
	if err != nil {
		return nil, classify("show tables", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, classify("scan table name", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate tables", err)
	}

	stats := &domain.TableStats{RowCounts: make(map[string]int, len(tables))}
	for _, table := range tables {
		var count int
		// Table names come from SHOW TABLES, not from request input.
		q := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", table)
		if err := a.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
			return nil, classify("count "+table, err)
		}
		stats.RowCounts[table] = count
	}

	histRows, err := a.db.QueryContext(ctx, `
		SELECT status, COUNT(*) AS count FROM product GROUP BY status`,
	)
	if err != nil {
		return nil, classify("query product status", err)
	}
	defer histRows.Close()

	for histRows.Next() {
		var sc domain.StatusCount
		if err := histRows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, classify("scan product status", err)
		}
		stats.ProductStatus = append(stats.ProductStatus, sc)
	}
	if err := histRows.Err(); err != nil {
		return nil, classify("iterate product status", err)
	}
	return stats, nil
}
