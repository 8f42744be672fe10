package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
)

type PostContentRepository interface {
	Create(ctx context.Context, tx *sql.Tx, pc *models.EngagementPostContent) (int64, error)
	ListByStoryID(ctx context.Context, storyID int64) ([]*models.EngagementPostContent, error)
}

type postContentRepository struct {
	db *sql.DB
}

func NewPostContentRepository(db *sql.DB) PostContentRepository {
	return &postContentRepository{db: db}
}

func (r *postContentRepository) Create(ctx context.Context, tx *sql.Tx, pc *models.EngagementPostContent) (int64, error) {
	query := `
		INSERT INTO engagement_post_content (file_type, story_id, url, thumbnail_url, sequence)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING engagement_post_content_id
	`

	err := conn(r.db, tx).QueryRowContext(ctx, query, pc.FileType, pc.StoryID, pc.URL, pc.ThumbnailURL, pc.Sequence).Scan(&pc.ID)
	if err != nil {
		slog.Info(err.Error())
		return 0, classifyError(err)
	}

	return pc.ID, nil
}

func (r *postContentRepository) ListByStoryID(ctx context.Context, storyID int64) ([]*models.EngagementPostContent, error) {
	query := `
		SELECT engagement_post_content_id, file_type, story_id, url, thumbnail_url, sequence
		FROM engagement_post_content
		WHERE story_id = $1
		ORDER BY sequence
	`

	rows, err := r.db.QueryContext(ctx, query, storyID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	contents := []*models.EngagementPostContent{}
	for rows.Next() {
		var pc models.EngagementPostContent
		if err := rows.Scan(&pc.ID, &pc.FileType, &pc.StoryID, &pc.URL, &pc.ThumbnailURL, &pc.Sequence); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		contents = append(contents, &pc)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return contents, nil
}
