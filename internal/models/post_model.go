package models

import "time"

type EngagementPost struct {
	ID                      int64      `db:"engagement_post_id" json:"engagement_post_id"`
	TenantID                int64      `db:"tenant_id" json:"tenant_id"`
	NumberOfLikes           int64      `db:"number_of_likes" json:"number_of_likes"`
	NumberOfShares          int64      `db:"number_of_shares" json:"number_of_shares"`
	Description             *string    `db:"description" json:"description"`
	CreatedBy               string     `db:"created_by" json:"created_by"`
	CreatedOn               time.Time  `db:"created_on" json:"created_on"`
	UpdatedBy               *string    `db:"updated_by" json:"updated_by"`
	UpdatedOn               *time.Time `db:"updated_on" json:"updated_on"`
	CustomerInteractionDate *time.Time `db:"customer_interaction_date" json:"customer_interaction_date"`
	ShoppingURL             *string    `db:"shopping_url" json:"shopping_url"`
	CustomersWhoLiked       *string    `db:"customers_who_liked" json:"customers_who_liked"`
	ContentType             string     `db:"content_type" json:"content_type"`
	InfluencerID            int64      `db:"influencer_id" json:"influencer_id"`
	Tags                    *string    `db:"tags" json:"tags"`
	ThumbnailURL            *string    `db:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailTitle          *string    `db:"thumbnail_title" json:"thumbnail_title"`
	IsCancelled             bool       `db:"is_cancelled" json:"is_cancelled"`
	ScheduleCode            *string    `db:"schedule_code" json:"schedule_code"`
	ButtonCTA               *string    `db:"button_cta" json:"button_cta"`
	IsNewCollection         bool       `db:"is_new_collection" json:"is_new_collection"`
	VideoDuration           *int64     `db:"video_duration" json:"video_duration"` // seconds
	IsMultihost             bool       `db:"is_multihost" json:"is_multihost"`
	DisabledProduct         bool       `db:"disabled_product" json:"disabled_product"`
	CtaURL                  *string    `db:"cta_url" json:"cta_url"`
	ProductThumbnailURL     *string    `db:"product_thumbnail_url" json:"product_thumbnail_url"`
}

// EngagementPostContent is one media item of a story. The stories table
// lives outside this service, so story_id is not a declared foreign key.
type EngagementPostContent struct {
	ID           int64   `db:"engagement_post_content_id" json:"engagement_post_content_id"`
	FileType     string  `db:"file_type" json:"file_type"`
	StoryID      int64   `db:"story_id" json:"story_id"`
	URL          string  `db:"url" json:"url"`
	ThumbnailURL *string `db:"thumbnail_url" json:"thumbnail_url"`
	Sequence     int     `db:"sequence" json:"sequence"`
}
