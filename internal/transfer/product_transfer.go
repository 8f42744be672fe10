package transfer

type ProductCreation struct {
	ProductName   string  `json:"product_name" validate:"required"`
	ProductImage  *string `json:"product_image"`
	SKUNumber     string  `json:"sku_number" validate:"required"`
	ShoppingURL   *string `json:"shopping_url"`
	VideoDuration *int64  `json:"video_duration" validate:"omitempty,gte=0"`
}

type ProductImageUpload struct {
	URL string `json:"url"`
}
