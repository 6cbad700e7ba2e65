package dto

import "github.com/princinho/storefront/models"

type ProductDetailDTO struct {
	Product models.Product   `json:"product"`
	Related []models.Product `json:"related"`
}

type CategoryDTO struct {
	models.Category
	ProductCount int `json:"productCount"`
}

type CategoryDetailDTO struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

type HomeDTO struct {
	Featured   []models.Product  `json:"featured"`
	Categories []models.Category `json:"categories"`
}
