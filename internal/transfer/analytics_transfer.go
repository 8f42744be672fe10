package transfer

type TopViewedPost struct {
	ThumbnailTitle *string `json:"thumbnail_title"`
	ContentURL     *string `json:"content_url"`
}

// TopViewedProduct ranks products by how many of the tenant's posts feature
// them. DurationWatched is that count times the product clip length, in
// hours; it is derived, not measured.
type TopViewedProduct struct {
	ProductName     string  `json:"product_name"`
	ContentURL      *string `json:"content_url"`
	DurationWatched float64 `json:"duration_watched"`
}
