package utils

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode trả về bytes PNG cho nội dung thanh toán
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
