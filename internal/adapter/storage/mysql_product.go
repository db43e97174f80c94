package storage

import (
	"context"
	"database/sql"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type ProductAdapter struct {
	db *sql.DB
}

func NewProductAdapter(db *sql.DB) *ProductAdapter {
	return &ProductAdapter{db: db}
}

func (a *ProductAdapter) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductListing, error) {
	query := `
		SELECT
			p.product_id,
			p.product_name,
			p.price,
			COALESCE(p.description, '') AS description,
			c.category_name,
			u.username AS seller_name
		FROM product p
		JOIN category c ON p.category_id = c.category_id
		JOIN user u ON p.user_id = u.user_id
		WHERE p.status = 1`
	args := []any{}

	if filter.CategoryID != nil {
		query += " AND p.category_id = ?"
		args = append(args, *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query += " AND p.price >= ?"
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += " AND p.price <= ?"
		args = append(args, *filter.MaxPrice)
	}
	query += " ORDER BY p.publish_time DESC"

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("query products", err)
	}
	defer rows.Close()

	products := []domain.ProductListing{}
	for rows.Next() {
		var p domain.ProductListing
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Price, &p.Description, &p.CategoryName, &p.SellerName); err != nil {
			return nil, classify("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate products", err)
	}
	return products, nil
}

func (a *ProductAdapter) CreateProduct(ctx context.Context, p domain.NewProduct) (int64, error) {
	res, err := a.db.ExecContext(ctx, `
		INSERT INTO product (product_name, price, description, category_id, user_id,
		                     status, publish_time, view_count)
		VALUES (?, ?, ?, ?, ?, 1, NOW(), 0)`,
		p.Name, p.Price, p.Description, p.CategoryID, p.OwnerID,
	)
	if err != nil {
		return 0, classify("insert product", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify("product id", err)
	}
	return id, nil
}

func (a *ProductAdapter) ListUserProducts(ctx context.Context, userID int64) ([]domain.UserProduct, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT
			p.product_id,
			p.product_name,
			p.price,
			COALESCE(p.description, '') AS description,
			p.category_id,
			p.status,
			p.publish_time,
			p.view_count,
			c.category_name,
			COUNT(DISTINCT f.favorite_id) AS favorite_count
		FROM product p
		JOIN category c ON p.category_id = c.category_id
		LEFT JOIN favorites f ON p.product_id = f.product_id
		WHERE p.user_id = ?
		GROUP BY p.product_id
		ORDER BY p.publish_time DESC`, userID,
	)
	if err != nil {
		return nil, classify("query user products", err)
	}
	defer rows.Close()

	products := []domain.UserProduct{}
	for rows.Next() {
		var p domain.UserProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Price, &p.Description,
			&p.CategoryID, &p.Status, &p.PublishTime, &p.ViewCount,
			&p.CategoryName, &p.FavoriteCount); err != nil {
			return nil, classify("scan user product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate user products", err)
	}
	return products, nil
}

func (a *ProductAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT category_id, category_name, COALESCE(description, '') AS description
		FROM category ORDER BY category_name`,
	)
	if err != nil {
		return nil, classify("query categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, classify("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate categories", err)
	}
	return categories, nil
}
