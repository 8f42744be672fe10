package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
)

type ProductMappingRepository interface {
	Create(ctx context.Context, tx *sql.Tx, m *models.ProductMapping) (int64, error)
	MapProducts(ctx context.Context, postID int64, productIDs []int64) ([]*models.ProductMapping, error)
	CountByTenant(ctx context.Context, tenantID int64, limit int) ([]*models.ProductAssociationCount, error)
}

type productMappingRepository struct {
	db *sql.DB
}

func NewProductMappingRepository(db *sql.DB) ProductMappingRepository {
	return &productMappingRepository{db: db}
}

func (r *productMappingRepository) Create(ctx context.Context, tx *sql.Tx, m *models.ProductMapping) (int64, error) {
	query := `
		INSERT INTO engagement_post_product_mapping (engagement_post_id, product_id)
		VALUES ($1, $2)
		RETURNING engagement_post_product_mapping_id
	`

	err := conn(r.db, tx).QueryRowContext(ctx, query, m.EngagementPostID, m.ProductID).Scan(&m.ID)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return m.ID, nil
}

// MapProducts inserts one mapping row per product id, in order, inside a
// single transaction. Repeated ids produce repeated rows.
func (r *productMappingRepository) MapProducts(ctx context.Context, postID int64, productIDs []int64) ([]*models.ProductMapping, error) {
	mappings := make([]*models.ProductMapping, 0, len(productIDs))

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, productID := range productIDs {
			m := &models.ProductMapping{EngagementPostID: postID, ProductID: productID}
			if _, err := r.Create(ctx, tx, m); err != nil {
				return err
			}
			mappings = append(mappings, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mappings, nil
}

// CountByTenant counts mapping rows per product over the posts of one
// tenant, highest count first.
func (r *productMappingRepository) CountByTenant(ctx context.Context, tenantID int64, limit int) ([]*models.ProductAssociationCount, error) {
	query := `
		SELECT m.product_id, COUNT(m.engagement_post_id) AS view_count
		FROM engagement_post_product_mapping m
		JOIN engagement_post p ON p.engagement_post_id = m.engagement_post_id
		WHERE p.tenant_id = $1
		GROUP BY m.product_id
		ORDER BY view_count DESC, m.product_id
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := []*models.ProductAssociationCount{}
	for rows.Next() {
		var c models.ProductAssociationCount
		if err := rows.Scan(&c.ProductID, &c.Count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts = append(counts, &c)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return counts, nil
}
