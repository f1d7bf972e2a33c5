package handler

import (
	"case_empire/constants"
	"case_empire/database"
	"case_empire/model"
	"case_empire/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCustomers(c *fiber.Ctx) error {
	db := database.DB
	limit, page := parsePagination(c)

	query := db.Model(&model.Customer{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var customers []model.Customer
	if err := utils.ApplyPagination(query, limit, page).Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(string)

	var customer model.Customer
	if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	db := database.DB

	// Lấy input từ locals (đã validate ở middleware)
	input, ok := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &input)
	newCustomer.ShippingStreet = utils.StringPtr(input.ShippingStreet)
	newCustomer.ShippingCity = utils.StringPtr(input.ShippingCity)
	newCustomer.ShippingState = utils.StringPtr(input.ShippingState)
	newCustomer.ShippingZip = utils.StringPtr(input.ShippingZip)
	newCustomer.PreferredPaymentMethod = utils.StringPtr(input.PreferredPaymentMethod)

	if err := db.Create(&newCustomer).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_EMAIL, nil, "email")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_CREATE_CUSTOMER, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func EditCustomer(c *fiber.Ctx) error {
	db := database.DB
	id, _ := c.Locals("inputCustomerId").(string)
	input, ok := c.Locals("inputEditCustomer").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	var customer model.Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.ShippingStreet != nil {
		customer.ShippingStreet = input.ShippingStreet
	}
	if input.ShippingCity != nil {
		customer.ShippingCity = input.ShippingCity
	}
	if input.ShippingState != nil {
		customer.ShippingState = input.ShippingState
	}
	if input.ShippingZip != nil {
		customer.ShippingZip = input.ShippingZip
	}
	if input.PreferredPaymentMethod != nil {
		customer.PreferredPaymentMethod = utils.StringPtr(*input.PreferredPaymentMethod)
	}

	if err := db.Save(&customer).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_EMAIL, nil, "email")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil)
	}

	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.Customer{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
