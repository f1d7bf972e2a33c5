package model

type Customer struct {
	DTO
	Name                   string  `gorm:"not null" json:"name"`
	Email                  string  `gorm:"unique;not null" json:"email"`
	Phone                  string  `gorm:"not null" json:"phone"`
	Status                 string  `gorm:"default:active" json:"status"` // active, inactive
	ShippingStreet         *string `json:"shippingStreet,omitempty"`
	ShippingCity           *string `json:"shippingCity,omitempty"`
	ShippingState          *string `json:"shippingState,omitempty"`
	ShippingZip            *string `json:"shippingZip,omitempty"`
	PreferredPaymentMethod *string `json:"preferredPaymentMethod,omitempty"` // cod, bkash, nagad
}

type CreateCustomerInput struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required"`
	Status                 string `json:"status"`
	ShippingStreet         string `json:"shippingStreet"`
	ShippingCity           string `json:"shippingCity"`
	ShippingState          string `json:"shippingState"`
	ShippingZip            string `json:"shippingZip"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod"`
}

type EditCustomerInput struct {
	Name                   *string `json:"name"`
	Email                  *string `json:"email" validate:"omitempty,email"`
	Phone                  *string `json:"phone"`
	Status                 *string `json:"status"`
	ShippingStreet         *string `json:"shippingStreet"`
	ShippingCity           *string `json:"shippingCity"`
	ShippingState          *string `json:"shippingState"`
	ShippingZip            *string `json:"shippingZip"`
	PreferredPaymentMethod *string `json:"preferredPaymentMethod"`
}
