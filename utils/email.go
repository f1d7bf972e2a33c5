package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// InvoiceEmailData dữ liệu cho template email hoá đơn
type InvoiceEmailData struct {
	InvoiceNumber string
	Customer      string
	Date          string
	Amount        float64
	Status        string
	PaymentNote   string
}

// SendInvoiceEmail gửi hoá đơn cho khách hàng (async)
func SendInvoiceEmail(to string, data InvoiceEmailData) {
	go func() { // Async để không delay response
		tmplPath := "templates/invoice_email.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Invoice "+data.InvoiceNumber+" from Case Empire")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email hoá đơn %s: %v", data.InvoiceNumber, err)
			return
		}
		log.Printf("Đã gửi hoá đơn %s tới %s", data.InvoiceNumber, to)
	}()
}
