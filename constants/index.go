package constants

// Bảng trong CSDL
const (
	TABLE_ORDERS    = "orders"
	TABLE_INVOICES  = "invoices"
	TABLE_CUSTOMERS = "customers"
	TABLE_PRODUCTS  = "products"
)

// Payment methods
const (
	PAYMENT_CREDIT_CARD   = "credit_card"
	PAYMENT_PAYPAL        = "paypal"
	PAYMENT_BANK_TRANSFER = "bank_transfer"
	PAYMENT_BKASH         = "bkash"
	PAYMENT_NAGAD         = "nagad"
	PAYMENT_COD           = "cod"
)

var PAYMENT_METHODS = []string{
	PAYMENT_CREDIT_CARD,
	PAYMENT_PAYPAL,
	PAYMENT_BANK_TRANSFER,
	PAYMENT_BKASH,
	PAYMENT_NAGAD,
	PAYMENT_COD,
}

// Các phương thức khách có thể đặt làm mặc định
var PREFERRED_PAYMENT_METHODS = []string{
	PAYMENT_COD,
	PAYMENT_BKASH,
	PAYMENT_NAGAD,
}

// Order status
const (
	ORDER_PENDING   = "pending"
	ORDER_FULFILLED = "fulfilled"
	ORDER_CANCELLED = "cancelled"
	ORDER_RETURNED  = "returned"
)

var ORDER_STATUSES = []string{
	ORDER_PENDING,
	ORDER_FULFILLED,
	ORDER_CANCELLED,
	ORDER_RETURNED,
}

// Invoice status
const (
	INVOICE_PENDING = "pending"
	INVOICE_PAID    = "paid"
	INVOICE_OVERDUE = "overdue"
)

var INVOICE_STATUSES = []string{
	INVOICE_PENDING,
	INVOICE_PAID,
	INVOICE_OVERDUE,
}

// Customer status
const (
	CUSTOMER_ACTIVE   = "active"
	CUSTOMER_INACTIVE = "inactive"
)

var CUSTOMER_STATUSES = []string{CUSTOMER_ACTIVE, CUSTOMER_INACTIVE}

// Thông báo lỗi chung
const (
	ERROR_INTERNAL_ERROR      = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER  = "Input data is not a number"
	NOT_FOUND                 = "Record not found"
	DUPLICATE_EMAIL           = "A customer with this email already exists"
	DUPLICATE_SKU             = "A product with this SKU already exists"
	DUPLICATE_INVOICE_NUMBER  = "An invoice with this number already exists"
	SUBMIT_IN_FLIGHT          = "An order submission is already in progress"
	CAN_NOT_CREATE_ORDER      = "Failed to create order"
	CAN_NOT_CREATE_INVOICE    = "Failed to create invoice"
	CAN_NOT_CREATE_CUSTOMER   = "Failed to create customer"
	CAN_NOT_CREATE_PRODUCT    = "Failed to create product"
	CAN_NOT_SEND_INVOICE_MAIL = "Failed to send invoice email"
)
