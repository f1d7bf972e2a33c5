package handler

import (
	"case_empire/constants"
	"case_empire/database"
	"case_empire/form"
	"case_empire/helper"
	"case_empire/model"
	"case_empire/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var orderSubmitter *form.Submitter

// InitOrderSubmitter nối submitter với store và listeners, gọi từ main
func InitOrderSubmitter(store form.Store, listeners ...func(string)) {
	orderSubmitter = form.NewSubmitter(store, listeners...)
}

func GetOrders(c *fiber.Ctx) error {
	db := database.DB
	limit, page := parsePagination(c)

	// Chỉ cache listing mặc định (không phân trang, không filter)
	cacheable := limit == nil && page == nil && c.Query("status") == ""
	if cacheable {
		var cached []model.Order
		if helper.CacheGetJSON(constants.TABLE_ORDERS, &cached) {
			return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
				Rows:       cached,
				TotalCount: int64(len(cached)),
			})
		}
	}

	query := db.Model(&model.Order{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders []model.Order
	if err := utils.ApplyPagination(query, limit, page).Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if cacheable {
		helper.CacheSetJSON(constants.TABLE_ORDERS, orders, 5*time.Minute)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(string)

	var order model.Order
	if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CreateOrder ghi draft đã validate xuống store: mỗi dòng hàng một bản ghi
// orders, một lần insert batch duy nhất
func CreateOrder(c *fiber.Ctx) error {
	draft, ok := c.Locals("orderDraft").(*form.Draft)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	// Submit sẽ reset draft khi thành công, lấy số liệu trước
	total := draft.Total()
	itemCount := len(draft.Items)

	if err := orderSubmitter.Submit(draft); err != nil {
		if errors.Is(err, form.ErrSubmitInFlight) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SUBMIT_IN_FLIGHT, err)
		}
		if errors.Is(err, form.ErrNoItems) || errors.Is(err, form.ErrInvalidPaymentMethod) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CAN_NOT_CREATE_ORDER, err)
		}
		// Lỗi từ store, giữ nguyên message cho người dùng
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_CREATE_ORDER, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"items": itemCount,
		"total": total,
	})
}

func EditOrderStatus(c *fiber.Ctx) error {
	db := database.DB
	id, _ := c.Locals("inputOrderId").(string)
	input, ok := c.Locals("inputEditOrderStatus").(model.EditOrderStatusInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	var order model.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order.Status = input.Status
	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateTable(constants.TABLE_ORDERS)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func DeleteOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil)
	}

	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.Order{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	helper.InvalidateTable(constants.TABLE_ORDERS)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
