package form

import "case_empire/constants"

// RequiresTransactionID: chỉ bkash và nagad cần mã giao dịch
func RequiresTransactionID(method string) bool {
	return method == constants.PAYMENT_BKASH || method == constants.PAYMENT_NAGAD
}

// VisibleFields suy ra field nào đang hiển thị từ trạng thái draft hiện tại,
// tính lại mỗi lần gọi thay vì subscribe theo field khác.
func VisibleFields(d *Draft) map[string]bool {
	return map[string]bool{
		"customerName":   true,
		"customerEmail":  true,
		"customerPhone":  true,
		"orderDate":      true,
		"paymentMethod":  true,
		"transactionId":  RequiresTransactionID(d.PaymentMethod),
		"status":         true,
		"shippingStreet": true,
		"shippingCity":   true,
		"shippingState":  true,
		"shippingZip":    true,
		"items":          true,
	}
}
