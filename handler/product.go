package handler

import (
	"case_empire/constants"
	"case_empire/database"
	"case_empire/helper"
	"case_empire/model"
	"case_empire/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetProducts(c *fiber.Ctx) error {
	db := database.DB
	limit, page := parsePagination(c)

	query := db.Model(&model.Product{}).Order("created_at desc")

	var totalCount int64
	query.Count(&totalCount)

	var products []model.Product
	if err := utils.ApplyPagination(query, limit, page).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

// GetLowStockProducts liệt kê sản phẩm dưới ngưỡng tồn kho
func GetLowStockProducts(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.
		Where("stock < min_stock").
		Order("stock asc").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(string)

	var product model.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func GetProductBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var product model.Product
	if err := database.DB.Where("slug = ?", slugParam).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	newProduct := new(model.Product)
	copier.Copy(&newProduct, &input)
	newProduct.Slug = helper.GenerateUniqueProductSlug(db, input.Name)

	if err := db.Create(&newProduct).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_SKU, nil, "sku")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_CREATE_PRODUCT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newProduct)
}

func EditProduct(c *fiber.Ctx) error {
	db := database.DB
	id, _ := c.Locals("inputProductId").(string)
	input, ok := c.Locals("inputEditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		product.Slug = helper.GenerateUniqueProductSlug(db, *input.Name)
	}
	if input.Sku != nil {
		product.Sku = *input.Sku
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Price != nil {
		product.Price = *input.Price
	}

	if err := db.Save(&product).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_SKU, nil, "sku")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil)
	}

	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.Product{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
