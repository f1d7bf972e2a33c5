package model

import "case_empire/utils"

type Invoice struct {
	DTO
	InvoiceNumber string           `gorm:"unique;not null" json:"invoiceNumber"`
	Date          utils.CustomDate `gorm:"type:date" json:"date"`
	Customer      string           `gorm:"not null" json:"customer"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Amount        float64          `gorm:"default:0" json:"amount"`
	Status        string           `gorm:"default:pending" json:"status"` // pending, paid, overdue
}

type CreateInvoiceInput struct {
	InvoiceNumber string           `json:"invoiceNumber"`
	Date          utils.CustomDate `json:"date"`
	Customer      string           `json:"customer" validate:"required"`
	Email         string           `json:"email" validate:"omitempty,email"`
	Phone         string           `json:"phone"`
	Amount        float64          `json:"amount" validate:"gte=0"`
	Status        string           `json:"status"`
}

type EditInvoiceInput struct {
	Date     *utils.CustomDate `json:"date"`
	Customer *string           `json:"customer"`
	Email    *string           `json:"email" validate:"omitempty,email"`
	Phone    *string           `json:"phone"`
	Amount   *float64          `json:"amount" validate:"omitempty,gte=0"`
	Status   *string           `json:"status"`
}
