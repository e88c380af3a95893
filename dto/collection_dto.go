package dto

type CreateCollectionDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	HeroImage   string `json:"heroImage" binding:"required"`
}

// UpdateCollectionDTO — all fields are optional pointers
type UpdateCollectionDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	HeroImage   *string `json:"heroImage"`
}
