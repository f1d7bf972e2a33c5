package model

type Product struct {
	DTO
	Name     string  `gorm:"not null" json:"name"`
	Sku      string  `gorm:"unique;not null" json:"sku"`
	Slug     string  `gorm:"unique;size:120" json:"slug"`
	Stock    int     `gorm:"default:0" json:"stock"`
	MinStock int     `gorm:"default:0" json:"minStock"`
	Price    float64 `gorm:"default:0" json:"price"`
}

type CreateProductInput struct {
	Name     string  `json:"name" validate:"required"`
	Sku      string  `json:"sku" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
	MinStock int     `json:"minStock" validate:"gte=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type EditProductInput struct {
	Name     *string  `json:"name"`
	Sku      *string  `json:"sku"`
	Stock    *int     `json:"stock" validate:"omitempty,gte=0"`
	MinStock *int     `json:"minStock" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}
