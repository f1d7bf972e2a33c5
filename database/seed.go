package database

import (
	"case_empire/constants"
	"case_empire/model"
	"case_empire/utils"
	"log"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	products := []model.Product{
		{Name: "Classic Leather Wallet", Sku: "CE-WAL-001", Slug: "classic-leather-wallet", Stock: 40, MinStock: 10, Price: 24.99},
		{Name: "Canvas Messenger Bag", Sku: "CE-BAG-002", Slug: "canvas-messenger-bag", Stock: 15, MinStock: 5, Price: 49.5},
		{Name: "Stainless Water Bottle", Sku: "CE-BTL-003", Slug: "stainless-water-bottle", Stock: 80, MinStock: 20, Price: 12},
	}

	for _, product := range products {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Product{Sku: product.Sku}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed data for product:", product.Sku, "error:", err)
		}
	}

	customers := []model.Customer{
		{
			Name:                   "Demo Customer",
			Email:                  "demo@case-empire.test",
			Phone:                  "01700000000",
			Status:                 constants.CUSTOMER_ACTIVE,
			PreferredPaymentMethod: utils.StringPtr(constants.PAYMENT_COD),
		},
	}

	for _, customer := range customers {
		if err := db.Where(model.Customer{Email: customer.Email}).FirstOrCreate(&customer).Error; err != nil {
			log.Println("failed to seed data for customer:", customer.Email, "error:", err)
		}
	}
}
