package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
)

type EngagementPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.EngagementPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.EngagementPost, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*models.EngagementPost, error)
	ListByTenantOrderedByShares(ctx context.Context, tenantID int64) ([]*models.EngagementPost, error)
}

type engagementPostRepository struct {
	db *sql.DB
}

func NewEngagementPostRepository(db *sql.DB) EngagementPostRepository {
	return &engagementPostRepository{db: db}
}

const postColumns = `engagement_post_id, tenant_id, number_of_likes, number_of_shares, description,
	created_by, created_on, updated_by, updated_on, customer_interaction_date, shopping_url,
	customers_who_liked, content_type, influencer_id, tags, thumbnail_url, thumbnail_title,
	is_cancelled, schedule_code, button_cta, is_new_collection, video_duration, is_multihost,
	disabled_product, cta_url, product_thumbnail_url`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.EngagementPost, error) {
	var p models.EngagementPost
	err := row.Scan(&p.ID, &p.TenantID, &p.NumberOfLikes, &p.NumberOfShares, &p.Description,
		&p.CreatedBy, &p.CreatedOn, &p.UpdatedBy, &p.UpdatedOn, &p.CustomerInteractionDate, &p.ShoppingURL,
		&p.CustomersWhoLiked, &p.ContentType, &p.InfluencerID, &p.Tags, &p.ThumbnailURL, &p.ThumbnailTitle,
		&p.IsCancelled, &p.ScheduleCode, &p.ButtonCTA, &p.IsNewCollection, &p.VideoDuration, &p.IsMultihost,
		&p.DisabledProduct, &p.CtaURL, &p.ProductThumbnailURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *engagementPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.EngagementPost) (int64, error) {
	query := `
		INSERT INTO engagement_post (tenant_id, number_of_likes, number_of_shares, description, created_by,
			customer_interaction_date, shopping_url, customers_who_liked, content_type, influencer_id, tags,
			thumbnail_url, thumbnail_title, is_cancelled, schedule_code, button_cta, is_new_collection,
			video_duration, is_multihost, disabled_product, cta_url, product_thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING engagement_post_id, created_on
	`

	err := conn(r.db, tx).QueryRowContext(ctx, query,
		post.TenantID, post.NumberOfLikes, post.NumberOfShares, post.Description, post.CreatedBy,
		post.CustomerInteractionDate, post.ShoppingURL, post.CustomersWhoLiked, post.ContentType, post.InfluencerID, post.Tags,
		post.ThumbnailURL, post.ThumbnailTitle, post.IsCancelled, post.ScheduleCode, post.ButtonCTA, post.IsNewCollection,
		post.VideoDuration, post.IsMultihost, post.DisabledProduct, post.CtaURL, post.ProductThumbnailURL,
	).Scan(&post.ID, &post.CreatedOn)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return post.ID, nil
}

func (r *engagementPostRepository) GetByID(ctx context.Context, id int64) (*models.EngagementPost, error) {
	query := `SELECT ` + postColumns + ` FROM engagement_post WHERE engagement_post_id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *engagementPostRepository) ListByTenant(ctx context.Context, tenantID int64) ([]*models.EngagementPost, error) {
	query := `SELECT ` + postColumns + ` FROM engagement_post WHERE tenant_id = $1 ORDER BY engagement_post_id`
	return r.list(ctx, query, tenantID)
}

func (r *engagementPostRepository) ListByTenantOrderedByShares(ctx context.Context, tenantID int64) ([]*models.EngagementPost, error) {
	query := `SELECT ` + postColumns + ` FROM engagement_post WHERE tenant_id = $1
		ORDER BY number_of_shares DESC, engagement_post_id`
	return r.list(ctx, query, tenantID)
}

func (r *engagementPostRepository) list(ctx context.Context, query string, args ...any) ([]*models.EngagementPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	posts := []*models.EngagementPost{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return posts, nil
}
