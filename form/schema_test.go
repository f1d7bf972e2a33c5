package form_test

import (
	"testing"
	"time"

	"case_empire/constants"
	"case_empire/form"
)

func validDraft() *form.Draft {
	return &form.Draft{
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+8801712345678",
		OrderDate:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		PaymentMethod:  constants.PAYMENT_COD,
		Status:         constants.ORDER_PENDING,
		ShippingStreet: "12 Gulshan Ave",
		ShippingCity:   "Dhaka",
		ShippingState:  "Dhaka",
		ShippingZip:    "1212",
		Items:          []form.LineItem{{ProductName: "Phone Case", Quantity: 2, Price: 9.99}},
	}
}

func findError(errs []form.FieldError, field string) *form.FieldError {
	for i := range errs {
		if errs[i].Field == field {
			return &errs[i]
		}
	}
	return nil
}

func TestValidDraftPasses(t *testing.T) {
	if errs := form.Validate(validDraft()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestRequiredFields(t *testing.T) {
	d := validDraft()
	d.CustomerName = "   "
	d.CustomerPhone = ""
	d.ShippingStreet = ""
	d.ShippingCity = ""
	d.ShippingState = ""
	d.ShippingZip = ""
	d.OrderDate = time.Time{}

	errs := form.Validate(d)
	for _, field := range []string{
		"customerName", "customerPhone", "orderDate",
		"shippingStreet", "shippingCity", "shippingState", "shippingZip",
	} {
		e := findError(errs, field)
		if e == nil {
			t.Fatalf("expected error for %s, got %+v", field, errs)
		}
		if e.Code != form.CodeMissingRequiredField {
			t.Fatalf("expected MissingRequiredField for %s, got %s", field, e.Code)
		}
	}
}

func TestEmailOptionalButChecked(t *testing.T) {
	d := validDraft()
	d.CustomerEmail = ""
	if e := findError(form.Validate(d), "customerEmail"); e != nil {
		t.Fatalf("empty email should pass, got %+v", e)
	}

	d.CustomerEmail = "not-an-email"
	e := findError(form.Validate(d), "customerEmail")
	if e == nil || e.Code != form.CodeInvalidFormat {
		t.Fatalf("expected InvalidFormat for bad email, got %+v", e)
	}
}

func TestPaymentMethodChoice(t *testing.T) {
	d := validDraft()
	d.PaymentMethod = "cheque"
	e := findError(form.Validate(d), "paymentMethod")
	if e == nil || e.Code != form.CodeInvalidChoice {
		t.Fatalf("expected InvalidChoice for unknown payment method, got %+v", e)
	}
}

func TestStatusChoice(t *testing.T) {
	d := validDraft()
	d.Status = "shipped"
	e := findError(form.Validate(d), "status")
	if e == nil || e.Code != form.CodeInvalidChoice {
		t.Fatalf("expected InvalidChoice for unknown status, got %+v", e)
	}
}

func TestTransactionIdRequiredForMobileWallets(t *testing.T) {
	for _, method := range []string{constants.PAYMENT_BKASH, constants.PAYMENT_NAGAD} {
		d := validDraft()
		d.PaymentMethod = method
		d.TransactionId = ""

		e := findError(form.Validate(d), "transactionId")
		if e == nil || e.Code != form.CodeMissingRequiredField {
			t.Fatalf("%s: expected MissingRequiredField for transactionId, got %+v", method, e)
		}

		d.TransactionId = "TXN123"
		if e := findError(form.Validate(d), "transactionId"); e != nil {
			t.Fatalf("%s: transactionId set but still flagged: %+v", method, e)
		}
	}
}

func TestTransactionIdNotRequiredForCod(t *testing.T) {
	d := validDraft()
	d.PaymentMethod = constants.PAYMENT_COD
	d.TransactionId = ""
	if e := findError(form.Validate(d), "transactionId"); e != nil {
		t.Fatalf("cod should not require transactionId, got %+v", e)
	}
}

func TestEmptyItems(t *testing.T) {
	d := validDraft()
	d.Items = nil
	e := findError(form.Validate(d), "items")
	if e == nil || e.Code != form.CodeMissingItems {
		t.Fatalf("expected MissingItems, got %+v", e)
	}
}

func TestItemRules(t *testing.T) {
	d := validDraft()
	d.Items = []form.LineItem{
		{ProductName: "Phone Case", Quantity: 1, Price: 9.99},
		{ProductName: "", Quantity: 0, Price: -1},
	}

	errs := form.Validate(d)
	if e := findError(errs, "items.1.productName"); e == nil || e.Code != form.CodeMissingRequiredField {
		t.Fatalf("expected MissingRequiredField for items.1.productName, got %+v", e)
	}
	if e := findError(errs, "items.1.quantity"); e == nil || e.Code != form.CodeInvalidQuantity {
		t.Fatalf("expected InvalidQuantity for items.1.quantity, got %+v", e)
	}
	if e := findError(errs, "items.1.price"); e == nil || e.Code != form.CodeInvalidPrice {
		t.Fatalf("expected InvalidPrice for items.1.price, got %+v", e)
	}
	// dòng đầu hợp lệ thì không dính lỗi
	for _, field := range []string{"items.0.productName", "items.0.quantity", "items.0.price"} {
		if e := findError(errs, field); e != nil {
			t.Fatalf("valid first item flagged: %+v", e)
		}
	}
}

func TestQuantityBoundary(t *testing.T) {
	d := validDraft()
	d.Items[0].Quantity = 1
	if e := findError(form.Validate(d), "items.0.quantity"); e != nil {
		t.Fatalf("quantity 1 should pass, got %+v", e)
	}
	d.Items[0].Quantity = 0
	if e := findError(form.Validate(d), "items.0.quantity"); e == nil {
		t.Fatalf("quantity 0 should fail")
	}
}

func TestZeroPriceAllowed(t *testing.T) {
	d := validDraft()
	d.Items[0].Price = 0
	if e := findError(form.Validate(d), "items.0.price"); e != nil {
		t.Fatalf("free item should pass, got %+v", e)
	}
}

func TestMessagesMap(t *testing.T) {
	d := validDraft()
	d.CustomerName = ""
	d.Items = nil

	msgs := form.Messages(form.Validate(d))
	if msgs["customerName"] != "Customer name is required" {
		t.Fatalf("unexpected customerName message: %q", msgs["customerName"])
	}
	if msgs["items"] != "At least one item is required" {
		t.Fatalf("unexpected items message: %q", msgs["items"])
	}

	if form.Messages(nil) != nil {
		t.Fatalf("expected nil map for no errors")
	}
}
