package dto

type CreateReviewDTO struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Text     string `json:"text" binding:"required"`
	Product  string `json:"product"`
}

type UpdateReviewDTO struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text     *string `json:"text"`
}
