package form

import (
	"fmt"
	"regexp"
	"strings"

	"case_empire/constants"
	"case_empire/utils"
)

// Mã lỗi validate, field nào lỗi gì
const (
	CodeMissingRequiredField = "MissingRequiredField"
	CodeInvalidFormat        = "InvalidFormat"
	CodeInvalidChoice        = "InvalidChoice"
	CodeMissingItems         = "MissingItems"
	CodeInvalidQuantity      = "InvalidQuantity"
	CodeInvalidPrice         = "InvalidPrice"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate kiểm tra toàn bộ draft, không side effect. Mỗi rule độc lập
// với nhau nên thứ tự trả về chỉ là thứ tự khai báo field.
func Validate(d *Draft) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(d.CustomerName) == "" {
		errs = append(errs, FieldError{"customerName", CodeMissingRequiredField, "Customer name is required"})
	}
	if email := strings.TrimSpace(d.CustomerEmail); email != "" && !emailRegex.MatchString(email) {
		errs = append(errs, FieldError{"customerEmail", CodeInvalidFormat, "Invalid email address"})
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		errs = append(errs, FieldError{"customerPhone", CodeMissingRequiredField, "Phone number is required"})
	}
	if d.OrderDate.IsZero() {
		errs = append(errs, FieldError{"orderDate", CodeMissingRequiredField, "Order date is required"})
	}
	if !utils.IsValidValueOfConstant(d.PaymentMethod, constants.PAYMENT_METHODS) {
		errs = append(errs, FieldError{"paymentMethod", CodeInvalidChoice, "Please select a payment method"})
	}
	if RequiresTransactionID(d.PaymentMethod) && strings.TrimSpace(d.TransactionId) == "" {
		errs = append(errs, FieldError{"transactionId", CodeMissingRequiredField, "Please provide a transaction ID"})
	}
	if !utils.IsValidValueOfConstant(d.Status, constants.ORDER_STATUSES) {
		errs = append(errs, FieldError{"status", CodeInvalidChoice, "Please select an order status"})
	}
	if strings.TrimSpace(d.ShippingStreet) == "" {
		errs = append(errs, FieldError{"shippingStreet", CodeMissingRequiredField, "Shipping street is required"})
	}
	if strings.TrimSpace(d.ShippingCity) == "" {
		errs = append(errs, FieldError{"shippingCity", CodeMissingRequiredField, "Shipping city is required"})
	}
	if strings.TrimSpace(d.ShippingState) == "" {
		errs = append(errs, FieldError{"shippingState", CodeMissingRequiredField, "Shipping state is required"})
	}
	if strings.TrimSpace(d.ShippingZip) == "" {
		errs = append(errs, FieldError{"shippingZip", CodeMissingRequiredField, "Shipping ZIP is required"})
	}

	if len(d.Items) == 0 {
		errs = append(errs, FieldError{"items", CodeMissingItems, "At least one item is required"})
	}
	for i, item := range d.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			errs = append(errs, FieldError{
				fmt.Sprintf("items.%d.productName", i), CodeMissingRequiredField, "Product name is required",
			})
		}
		if item.Quantity < 1 {
			errs = append(errs, FieldError{
				fmt.Sprintf("items.%d.quantity", i), CodeInvalidQuantity, "Quantity must be at least 1",
			})
		}
		if item.Price < 0 {
			errs = append(errs, FieldError{
				fmt.Sprintf("items.%d.price", i), CodeInvalidPrice, "Price must be positive",
			})
		}
	}

	return errs
}

// Messages gom lỗi thành map field -> message cho UI
func Messages(errs []FieldError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}
