package validate

import (
	"case_empire/constants"
	"case_empire/model"
	"case_empire/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateInvoice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateInvoiceInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Date.IsZero() {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invoice date is required", errors.New("date invalid"), "date")
		}
		if input.Status == "" {
			input.Status = constants.INVOICE_PENDING
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.INVOICE_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid invoice status", errors.New("status invalid"), "status")
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Save input to context locals
		c.Locals("inputCreateInvoice", input)

		// Continue to next handler
		return c.Next()
	}
}

func EditInvoice(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if _, err := uuid.Parse(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", errors.New("params invalid"))
		}

		var input model.EditInvoiceInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.INVOICE_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid invoice status", errors.New("status invalid"), "status")
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditInvoice", input)
		c.Locals("inputInvoiceId", params)

		return c.Next()
	}
}
