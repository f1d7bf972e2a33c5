package handler

import (
	"case_empire/constants"
	"case_empire/database"
	"case_empire/helper"
	"case_empire/model"
	"case_empire/utils"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetInvoices(c *fiber.Ctx) error {
	db := database.DB
	limit, page := parsePagination(c)

	query := db.Model(&model.Invoice{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var invoices []model.Invoice
	if err := utils.ApplyPagination(query, limit, page).Find(&invoices).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       invoices,
		Limit:      limit,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetInvoiceById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(string)

	var invoice model.Invoice
	if err := database.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// QR thanh toán cho hoá đơn
	qrContent := fmt.Sprintf("casempire://invoice/%s?amount=%.2f", invoice.InvoiceNumber, invoice.Amount)
	qrBytes, err := utils.GenerateQRCode(qrContent, 400)
	qrBase64 := ""
	if err != nil {
		log.Printf("Lỗi tạo QR cho hoá đơn %s: %v", invoice.InvoiceNumber, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	response := map[string]interface{}{
		"invoice": invoice,
		"qrCode":  qrBase64,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateInvoice(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateInvoice").(model.CreateInvoiceInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	newInvoice := new(model.Invoice)
	copier.Copy(&newInvoice, &input)
	newInvoice.Email = utils.StringPtr(input.Email)
	newInvoice.Phone = utils.StringPtr(input.Phone)
	if newInvoice.InvoiceNumber == "" {
		newInvoice.InvoiceNumber = helper.GenerateInvoiceNumber()
	}

	if err := db.Create(&newInvoice).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_INVOICE_NUMBER, nil, "invoiceNumber")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_CREATE_INVOICE, err)
	}

	helper.InvalidateTable(constants.TABLE_INVOICES)
	return utils.SuccessResponse(c, fiber.StatusCreated, newInvoice)
}

func EditInvoice(c *fiber.Ctx) error {
	db := database.DB
	id, _ := c.Locals("inputInvoiceId").(string)
	input, ok := c.Locals("inputEditInvoice").(model.EditInvoiceInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil, "general")
	}

	var invoice model.Invoice
	if err := db.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.Customer != nil {
		invoice.Customer = *input.Customer
	}
	if input.Email != nil {
		invoice.Email = utils.StringPtr(*input.Email)
	}
	if input.Phone != nil {
		invoice.Phone = utils.StringPtr(*input.Phone)
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}

	if err := db.Save(&invoice).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateTable(constants.TABLE_INVOICES)
	return utils.SuccessResponse(c, fiber.StatusOK, invoice)
}

func DeleteInvoice(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi parse dữ liệu", nil)
	}

	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.Invoice{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	helper.InvalidateTable(constants.TABLE_INVOICES)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// ExportInvoicesCSV xuất toàn bộ hoá đơn ra file empire-invoices.csv
func ExportInvoicesCSV(c *fiber.Ctx) error {
	var invoices []model.Invoice
	query := database.DB.Model(&model.Invoice{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&invoices).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	records := make([]utils.CSVRecord, 0, len(invoices))
	for _, inv := range invoices {
		email := ""
		if inv.Email != nil {
			email = *inv.Email
		}
		phone := ""
		if inv.Phone != nil {
			phone = *inv.Phone
		}
		records = append(records, utils.CSVRecord{
			inv.InvoiceNumber,
			inv.Customer,
			inv.Date.Format("2006-01-02"),
			utils.FormatMoney(inv.Amount),
			inv.Status,
			email,
			phone,
		})
	}

	content, err := utils.BuildCSV(
		[]string{"Invoice Number", "Customer", "Date", "Amount", "Status", "Email", "Phone"},
		records,
	)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="empire-invoices.csv"`)
	return c.Send(content)
}

// SendInvoice gửi email hoá đơn cho khách
func SendInvoice(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(string)

	var invoice model.Invoice
	if err := database.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if invoice.Email == nil || *invoice.Email == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CAN_NOT_SEND_INVOICE_MAIL, errors.New("invoice has no email"), "email")
	}

	paymentNote := "Please settle this invoice at your earliest convenience."
	if invoice.Status == constants.INVOICE_PAID {
		paymentNote = "This invoice has been paid. Thank you!"
	}

	utils.SendInvoiceEmail(*invoice.Email, utils.InvoiceEmailData{
		InvoiceNumber: invoice.InvoiceNumber,
		Customer:      invoice.Customer,
		Date:          invoice.Date.Format("2006-01-02"),
		Amount:        invoice.Amount,
		Status:        invoice.Status,
		PaymentNote:   paymentNote,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"sent": true, "to": *invoice.Email})
}
