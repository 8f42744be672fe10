package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// schemaStatements are applied in order; referenced tables come first.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS engagement_post (
		engagement_post_id SERIAL PRIMARY KEY,
		tenant_id INTEGER NOT NULL,
		number_of_likes INTEGER NOT NULL DEFAULT 0,
		number_of_shares INTEGER NOT NULL DEFAULT 0,
		description VARCHAR,
		created_by VARCHAR NOT NULL,
		created_on TIMESTAMP NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc'),
		updated_by VARCHAR,
		updated_on TIMESTAMP,
		customer_interaction_date TIMESTAMP,
		shopping_url VARCHAR,
		customers_who_liked VARCHAR,
		content_type VARCHAR NOT NULL,
		influencer_id INTEGER NOT NULL,
		tags VARCHAR,
		thumbnail_url VARCHAR,
		thumbnail_title VARCHAR,
		is_cancelled BOOLEAN NOT NULL DEFAULT FALSE,
		schedule_code VARCHAR,
		button_cta VARCHAR,
		is_new_collection BOOLEAN NOT NULL DEFAULT FALSE,
		video_duration INTEGER,
		is_multihost BOOLEAN NOT NULL DEFAULT FALSE,
		disabled_product BOOLEAN NOT NULL DEFAULT FALSE,
		cta_url VARCHAR,
		product_thumbnail_url VARCHAR
	)`,
	`CREATE INDEX IF NOT EXISTS ix_engagement_post_tenant_id ON engagement_post (tenant_id)`,
	`CREATE TABLE IF NOT EXISTS engagement_post_content (
		engagement_post_content_id SERIAL PRIMARY KEY,
		file_type VARCHAR NOT NULL,
		story_id INTEGER NOT NULL,
		url VARCHAR NOT NULL,
		thumbnail_url VARCHAR,
		sequence INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS engagement_post_product (
		product_id SERIAL PRIMARY KEY,
		product_name VARCHAR NOT NULL,
		product_image VARCHAR,
		sku_number VARCHAR NOT NULL,
		shopping_url VARCHAR,
		video_duration INTEGER,
		CONSTRAINT uq_sku_number UNIQUE (sku_number)
	)`,
	`CREATE TABLE IF NOT EXISTS engagement_post_product_mapping (
		engagement_post_product_mapping_id SERIAL PRIMARY KEY,
		engagement_post_id INTEGER NOT NULL REFERENCES engagement_post (engagement_post_id),
		product_id INTEGER NOT NULL REFERENCES engagement_post_product (product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS ix_engagement_post_product_mapping_post ON engagement_post_product_mapping (engagement_post_id)`,
	`CREATE TABLE IF NOT EXISTS collection (
		collection_id SERIAL PRIMARY KEY,
		collection_name VARCHAR NOT NULL
	)`,
	// Both references stay nullable, matching the existing table definition.
	`CREATE TABLE IF NOT EXISTS engagement_post_collection (
		engagement_post_collection_id SERIAL PRIMARY KEY,
		engagement_post_id INTEGER REFERENCES engagement_post (engagement_post_id),
		collection_id INTEGER REFERENCES collection (collection_id),
		duration_in_seconds INTEGER
	)`,
}

// EnsureSchema creates every table and index that does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			slog.Info(err.Error())
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
