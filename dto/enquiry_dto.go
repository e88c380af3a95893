package dto

type CreateEnquiryDTO struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Message   string `json:"message" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}
