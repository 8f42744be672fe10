package transfer

import "time"

type PostProduct struct {
	ProductName  string  `json:"product_name"`
	ProductImage *string `json:"product_image"`
	SKUNumber    string  `json:"sku_number"`
}

// PostView is a post of a tenant together with the products mapped to it.
type PostView struct {
	EngagementPostID int64         `json:"engagement_post_id"`
	TenantID         int64         `json:"tenant_id"`
	Description      *string       `json:"description"`
	CreatedBy        string        `json:"created_by"`
	CreatedOn        time.Time     `json:"created_on"`
	ThumbnailURL     *string       `json:"thumbnail_url"`
	ThumbnailTitle   *string       `json:"thumbnail_title"`
	Products         []PostProduct `json:"products"`
}

type PostCreation struct {
	TenantID            int64   `json:"tenant_id" validate:"required"`
	Description         *string `json:"description"`
	CreatedBy           string  `json:"created_by" validate:"required"`
	ContentType         string  `json:"content_type" validate:"required"`
	InfluencerID        int64   `json:"influencer_id" validate:"required"`
	NumberOfLikes       int64   `json:"number_of_likes" validate:"gte=0"`
	NumberOfShares      int64   `json:"number_of_shares" validate:"gte=0"`
	ShoppingURL         *string `json:"shopping_url"`
	Tags                *string `json:"tags"`
	ThumbnailURL        *string `json:"thumbnail_url"`
	ThumbnailTitle      *string `json:"thumbnail_title"`
	ScheduleCode        *string `json:"schedule_code"`
	ButtonCTA           *string `json:"button_cta"`
	CtaURL              *string `json:"cta_url"`
	ProductThumbnailURL *string `json:"product_thumbnail_url"`
	VideoDuration       *int64  `json:"video_duration" validate:"omitempty,gte=0"`
	IsNewCollection     bool    `json:"is_new_collection"`
	IsMultihost         bool    `json:"is_multihost"`
}

type PostProductsMapping struct {
	ProductIDs []int64 `json:"product_ids" validate:"required,min=1,dive,gt=0"`
}

type PostContentCreation struct {
	FileType     string  `json:"file_type" validate:"required"`
	StoryID      int64   `json:"story_id" validate:"required"`
	URL          string  `json:"url" validate:"required"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Sequence     *int    `json:"sequence" validate:"required"`
}
