package models

type Product struct {
	ID            int64   `db:"product_id" json:"product_id"`
	ProductName   string  `db:"product_name" json:"product_name"`
	ProductImage  *string `db:"product_image" json:"product_image"`
	SKUNumber     string  `db:"sku_number" json:"sku_number"`
	ShoppingURL   *string `db:"shopping_url" json:"shopping_url"`
	VideoDuration *int64  `db:"video_duration" json:"video_duration"` // seconds
}

type ProductMapping struct {
	ID               int64 `db:"engagement_post_product_mapping_id" json:"engagement_post_product_mapping_id"`
	EngagementPostID int64 `db:"engagement_post_id" json:"engagement_post_id"`
	ProductID        int64 `db:"product_id" json:"product_id"`
}

// ProductAssociationCount is the number of mapping rows that tie a product
// to posts of one tenant.
type ProductAssociationCount struct {
	ProductID int64
	Count     int64
}
