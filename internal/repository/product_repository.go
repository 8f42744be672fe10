package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, tx *sql.Tx, product *models.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ListByPostID(ctx context.Context, postID int64) ([]*models.Product, error)
	CountBySKU(ctx context.Context, sku string) (int, error)
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, tx *sql.Tx, product *models.Product) (int64, error) {
	query := `
		INSERT INTO engagement_post_product (product_name, product_image, sku_number, shopping_url, video_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_id
	`

	err := conn(r.db, tx).QueryRowContext(ctx, query,
		product.ProductName, product.ProductImage, product.SKUNumber, product.ShoppingURL, product.VideoDuration,
	).Scan(&product.ID)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return product.ID, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT product_id, product_name, product_image, sku_number, shopping_url, video_duration
		FROM engagement_post_product
		WHERE product_id = $1
	`

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ProductName, &p.ProductImage, &p.SKUNumber, &p.ShoppingURL, &p.VideoDuration)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &p, nil
}

// ListByPostID returns one entry per mapping row, so a product mapped twice
// to the same post appears twice.
func (r *productRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.Product, error) {
	query := `
		SELECT p.product_id, p.product_name, p.product_image, p.sku_number, p.shopping_url, p.video_duration
		FROM engagement_post_product p
		JOIN engagement_post_product_mapping m ON m.product_id = p.product_id
		WHERE m.engagement_post_id = $1
		ORDER BY m.engagement_post_product_mapping_id
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.ProductImage, &p.SKUNumber, &p.ShoppingURL, &p.VideoDuration); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		products = append(products, &p)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CountBySKU(ctx context.Context, sku string) (int, error) {
	query := `SELECT COUNT(*) FROM engagement_post_product WHERE sku_number = $1`

	var n int
	if err := r.db.QueryRowContext(ctx, query, sku).Scan(&n); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return n, nil
}
