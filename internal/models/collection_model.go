package models

type Collection struct {
	ID             int64  `db:"collection_id" json:"collection_id"`
	CollectionName string `db:"collection_name" json:"collection_name"`
}

type PostCollection struct {
	ID                int64  `db:"engagement_post_collection_id" json:"engagement_post_collection_id"`
	EngagementPostID  *int64 `db:"engagement_post_id" json:"engagement_post_id"`
	CollectionID      *int64 `db:"collection_id" json:"collection_id"`
	DurationInSeconds *int64 `db:"duration_in_seconds" json:"duration_in_seconds"`
}
