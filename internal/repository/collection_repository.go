package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
)

type CollectionRepository interface {
	Create(ctx context.Context, tx *sql.Tx, c *models.Collection) (int64, error)
	AddPost(ctx context.Context, tx *sql.Tx, pc *models.PostCollection) (int64, error)
	CreateWithPosts(ctx context.Context, c *models.Collection, postIDs []int64) error
	ListPostCollections(ctx context.Context, collectionID int64) ([]*models.PostCollection, error)
}

type collectionRepository struct {
	db *sql.DB
}

func NewCollectionRepository(db *sql.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, tx *sql.Tx, c *models.Collection) (int64, error) {
	query := `INSERT INTO collection (collection_name) VALUES ($1) RETURNING collection_id`

	err := conn(r.db, tx).QueryRowContext(ctx, query, c.CollectionName).Scan(&c.ID)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return c.ID, nil
}

func (r *collectionRepository) AddPost(ctx context.Context, tx *sql.Tx, pc *models.PostCollection) (int64, error) {
	query := `
		INSERT INTO engagement_post_collection (engagement_post_id, collection_id, duration_in_seconds)
		VALUES ($1, $2, $3)
		RETURNING engagement_post_collection_id
	`

	err := conn(r.db, tx).QueryRowContext(ctx, query, pc.EngagementPostID, pc.CollectionID, pc.DurationInSeconds).Scan(&pc.ID)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return pc.ID, nil
}

// CreateWithPosts inserts the collection and one association row per post id
// in a single transaction: either everything is stored or nothing is.
func (r *collectionRepository) CreateWithPosts(ctx context.Context, c *models.Collection, postIDs []int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := r.Create(ctx, tx, c); err != nil {
			return err
		}

		for _, postID := range postIDs {
			pc := &models.PostCollection{
				EngagementPostID: &postID,
				CollectionID:     &c.ID,
			}
			if _, err := r.AddPost(ctx, tx, pc); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *collectionRepository) ListPostCollections(ctx context.Context, collectionID int64) ([]*models.PostCollection, error) {
	query := `
		SELECT engagement_post_collection_id, engagement_post_id, collection_id, duration_in_seconds
		FROM engagement_post_collection
		WHERE collection_id = $1
		ORDER BY engagement_post_collection_id
	`

	rows, err := r.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	mappings := []*models.PostCollection{}
	for rows.Next() {
		var pc models.PostCollection
		if err := rows.Scan(&pc.ID, &pc.EngagementPostID, &pc.CollectionID, &pc.DurationInSeconds); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		mappings = append(mappings, &pc)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return mappings, nil
}
