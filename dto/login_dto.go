package dto

type AdminLoginDTO struct {
	AdminKey string `json:"adminKey" binding:"required"`
}
