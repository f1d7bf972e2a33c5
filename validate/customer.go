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

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Status == "" {
			input.Status = constants.CUSTOMER_ACTIVE
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.CUSTOMER_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid customer status", errors.New("status invalid"), "status")
		}
		if input.PreferredPaymentMethod != "" && !utils.IsValidValueOfConstant(input.PreferredPaymentMethod, constants.PREFERRED_PAYMENT_METHODS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid preferred payment method", errors.New("preferredPaymentMethod invalid"), "preferredPaymentMethod")
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Save input to context locals
		c.Locals("inputCreateCustomer", input)

		// Continue to next handler
		return c.Next()
	}
}

func EditCustomer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if _, err := uuid.Parse(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", errors.New("params invalid"))
		}

		var input model.EditCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.CUSTOMER_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid customer status", errors.New("status invalid"), "status")
		}
		if input.PreferredPaymentMethod != nil && *input.PreferredPaymentMethod != "" &&
			!utils.IsValidValueOfConstant(*input.PreferredPaymentMethod, constants.PREFERRED_PAYMENT_METHODS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid preferred payment method", errors.New("preferredPaymentMethod invalid"), "preferredPaymentMethod")
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditCustomer", input)
		c.Locals("inputCustomerId", params)

		return c.Next()
	}
}
