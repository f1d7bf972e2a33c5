package form

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"case_empire/constants"
	"case_empire/utils"
)

// Store là backend dạng bảng phía sau (insert batch, all-or-nothing)
type Store interface {
	Insert(table string, rows []map[string]interface{}) error
}

var (
	ErrSubmitInFlight       = errors.New("order submission already in progress")
	ErrNoItems              = errors.New("order draft has no items")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// StoreWriteError giữ nguyên message từ store để hiển thị cho người dùng
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return "order store write failed: " + e.Err.Error()
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// Submitter ghi draft xuống store và báo cho listeners khi thành công.
// Listener nhận tên bảng vừa thay đổi để tự invalidate cache/listing.
type Submitter struct {
	store     Store
	listeners []func(table string)
	inFlight  atomic.Bool
}

func NewSubmitter(store Store, listeners ...func(string)) *Submitter {
	return &Submitter{store: store, listeners: listeners}
}

func (s *Submitter) OnSuccess(fn func(table string)) {
	s.listeners = append(s.listeners, fn)
}

// Submit ghi toàn bộ draft trong một lần insert batch. Thành công thì reset
// draft và gọi listeners; thất bại thì giữ nguyên draft cho người dùng thử lại.
// Chặn submit chồng khi một lần ghi đang chạy.
func (s *Submitter) Submit(d *Draft) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	// Validate đã phải chạy trước đó, đây chỉ là chốt chặn cuối
	if !utils.IsValidValueOfConstant(d.PaymentMethod, constants.PAYMENT_METHODS) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, d.PaymentMethod)
	}
	if len(d.Items) == 0 {
		return ErrNoItems
	}

	rows := BuildRows(d)
	if err := s.store.Insert(constants.TABLE_ORDERS, rows); err != nil {
		return &StoreWriteError{Err: err}
	}

	for _, fn := range s.listeners {
		fn(constants.TABLE_ORDERS)
	}
	d.Reset()
	return nil
}

// BuildRows trải draft thành các dòng orders: mỗi sản phẩm một dòng,
// mang theo đầy đủ thông tin khách + giao hàng + thanh toán.
func BuildRows(d *Draft) []map[string]interface{} {
	var transactionId interface{}
	if RequiresTransactionID(d.PaymentMethod) && d.TransactionId != "" {
		transactionId = d.TransactionId
	}
	var email interface{}
	if d.CustomerEmail != "" {
		email = d.CustomerEmail
	}

	rows := make([]map[string]interface{}, 0, len(d.Items))
	for _, item := range d.Items {
		rows = append(rows, map[string]interface{}{
			"customer_name":   d.CustomerName,
			"customer_email":  email,
			"customer_phone":  d.CustomerPhone,
			"order_date":      d.OrderDate.Format(time.RFC3339),
			"shipping_street": d.ShippingStreet,
			"shipping_city":   d.ShippingCity,
			"shipping_state":  d.ShippingState,
			"shipping_zip":    d.ShippingZip,
			"payment_method":  d.PaymentMethod,
			"transaction_id":  transactionId,
			"status":          d.Status,
			"product_name":    item.ProductName,
			"product_price":   item.Price,
			"quantity":        item.Quantity,
		})
	}
	return rows
}
