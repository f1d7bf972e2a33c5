package model

// Order là một dòng hàng đã ghi nhận: 1 sản phẩm + toàn bộ thông tin đơn
type Order struct {
	DTO
	CustomerName   string  `gorm:"not null" json:"customerName"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	CustomerPhone  string  `gorm:"not null" json:"customerPhone"`
	OrderDate      string  `gorm:"not null" json:"orderDate"` // ISO-8601
	ShippingStreet string  `gorm:"not null" json:"shippingStreet"`
	ShippingCity   string  `gorm:"not null" json:"shippingCity"`
	ShippingState  string  `gorm:"not null" json:"shippingState"`
	ShippingZip    string  `gorm:"not null" json:"shippingZip"`
	PaymentMethod  string  `gorm:"not null" json:"paymentMethod"`
	TransactionId  *string `json:"transactionId,omitempty"` // chỉ có với bkash/nagad
	Status         string  `gorm:"default:pending" json:"status"`
	ProductName    string  `gorm:"not null" json:"productName"`
	ProductPrice   float64 `gorm:"default:0" json:"productPrice"`
	Quantity       int     `gorm:"default:1" json:"quantity"`
}

type OrderItemInput struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateOrderInput struct {
	CustomerName   string           `json:"customerName"`
	CustomerEmail  string           `json:"customerEmail"`
	CustomerPhone  string           `json:"customerPhone"`
	OrderDate      string           `json:"orderDate"` // "YYYY-MM-DD" hoặc RFC3339
	PaymentMethod  string           `json:"paymentMethod"`
	TransactionId  string           `json:"transactionId"`
	Status         string           `json:"status"`
	ShippingStreet string           `json:"shippingStreet"`
	ShippingCity   string           `json:"shippingCity"`
	ShippingState  string           `json:"shippingState"`
	ShippingZip    string           `json:"shippingZip"`
	Items          []OrderItemInput `json:"items"`
}

type EditOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
