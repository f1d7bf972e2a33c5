package validate

import (
	"case_empire/constants"
	"case_empire/form"
	"case_empire/model"
	"case_empire/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateOrder parse body thành draft và chạy schema validate trước khi
// handler ghi xuống store. Lỗi trả về theo từng field cho form hiển thị.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		draft := DraftFromInput(input)
		if errs := form.Validate(draft); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order validation failed",
				"errors":  errs,
				"fields":  form.Messages(errs),
			})
		}

		// Save input to context locals
		c.Locals("orderDraft", draft)

		// Continue to next handler
		return c.Next()
	}
}

// DraftFromInput chuyển input từ client về draft của form package
func DraftFromInput(input model.CreateOrderInput) *form.Draft {
	draft := form.NewDraft()
	draft.CustomerName = input.CustomerName
	draft.CustomerEmail = input.CustomerEmail
	draft.CustomerPhone = input.CustomerPhone
	draft.OrderDate = parseOrderDate(input.OrderDate)
	draft.PaymentMethod = input.PaymentMethod
	draft.TransactionId = input.TransactionId
	draft.Status = input.Status
	draft.ShippingStreet = input.ShippingStreet
	draft.ShippingCity = input.ShippingCity
	draft.ShippingState = input.ShippingState
	draft.ShippingZip = input.ShippingZip

	items := make([]form.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, form.LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	draft.Items = items
	return draft
}

// parseOrderDate nhận "YYYY-MM-DD" hoặc RFC3339; không parse được thì trả
// zero time để schema báo lỗi thiếu ngày
func parseOrderDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}

func EditOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if _, err := uuid.Parse(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", errors.New("params invalid"))
		}

		var input model.EditOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Please select an order status", errors.New("status invalid"), "status")
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditOrderStatus", input)
		c.Locals("inputOrderId", params)

		return c.Next()
	}
}
