package helper

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"case_empire/constants"
	"case_empire/database"
	"case_empire/model"
)

// Hoá đơn pending quá hạn này thì chuyển overdue
const invoiceDueDays = 30

var invoiceScheduler *cron.Cron

// GenerateInvoiceNumber sinh số hoá đơn dạng INV-<epoch millis>
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%d", time.Now().UnixMilli())
}

func StartInvoiceOverdueScheduler() {
	invoiceScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy 01:00 hằng ngày
	_, err := invoiceScheduler.AddFunc("0 1 * * *", MarkOverdueInvoices)
	if err != nil {
		log.Printf("invoice scheduler: %v", err)
		return
	}

	invoiceScheduler.Start()
	log.Println("Invoice overdue scheduler started (daily 01:00)")
}

func StopInvoiceOverdueScheduler() {
	if invoiceScheduler != nil {
		invoiceScheduler.Stop()
	}
}

func MarkOverdueInvoices() {
	cutoff := time.Now().AddDate(0, 0, -invoiceDueDays).Format("2006-01-02")
	result := database.DB.Model(&model.Invoice{}).
		Where("status = ? AND date < ?", constants.INVOICE_PENDING, cutoff).
		Update("status", constants.INVOICE_OVERDUE)

	if result.Error != nil {
		log.Printf("mark overdue invoices: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d invoice(s) overdue", result.RowsAffected)
		InvalidateTable(constants.TABLE_INVOICES)
	}
}
