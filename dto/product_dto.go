package dto

// CreateProductDTO is parsed from the "data" multipart field (JSON); the
// image files travel alongside it in the "images" field.
type CreateProductDTO struct {
	Name             string   `json:"name" binding:"required"`
	CollectionID     string   `json:"collectionId" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Materials        []string `json:"materials"`
	CareInstructions string   `json:"careInstructions" binding:"required"`
	Featured         bool     `json:"featured"`
	Tags             []string `json:"tags"`
	Category         string   `json:"category" binding:"required,oneof=jewelry broche"`
	Price            float64  `json:"price" binding:"gte=0"`
	IsNewArrival     bool     `json:"isNewArrival"`
}

type UpdateProductDTO struct {
	Name             *string   `json:"name,omitempty"`
	CollectionID     *string   `json:"collectionId,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Materials        *[]string `json:"materials,omitempty"`
	CareInstructions *string   `json:"careInstructions,omitempty"`
	Featured         *bool     `json:"featured,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Category         *string   `json:"category,omitempty" binding:"omitempty,oneof=jewelry broche"`
	Price            *float64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	IsNewArrival     *bool     `json:"isNewArrival,omitempty"`

	// Existing image URLs to detach and destroy on the media store.
	RemovedImages []string `json:"removedImages,omitempty"`
}
