package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"case_empire/constants"
)

// MaxItems chặn số dòng hàng tối đa trong một draft
const MaxItems = 100

var (
	ErrInvalidIndex = errors.New("item index out of range")
	ErrTooManyItems = errors.New("item limit reached")
	ErrUnknownField = errors.New("unknown field path")
	ErrInvalidValue = errors.New("invalid value for field")
)

type LineItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Draft là đơn hàng đang soạn, chỉ sống trong bộ nhớ.
// Một draft thuộc về đúng một phiên soạn thảo, không cần khoá.
type Draft struct {
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	OrderDate      time.Time
	PaymentMethod  string
	TransactionId  string
	Status         string
	ShippingStreet string
	ShippingCity   string
	ShippingState  string
	ShippingZip    string
	Items          []LineItem
}

func NewDraft() *Draft {
	return &Draft{
		OrderDate:     time.Now(),
		PaymentMethod: constants.PAYMENT_COD,
		Status:        constants.ORDER_PENDING,
		Items:         []LineItem{{ProductName: "", Quantity: 1, Price: 0}},
	}
}

// Reset đưa draft về trạng thái mặc định (1 dòng hàng trống)
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func (d *Draft) AddItem() error {
	if len(d.Items) >= MaxItems {
		return ErrTooManyItems
	}
	d.Items = append(d.Items, LineItem{ProductName: "", Quantity: 1, Price: 0})
	return nil
}

// RemoveItem không bao giờ để danh sách tụt xuống dưới 1 dòng
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrInvalidIndex
	}
	if len(d.Items) <= 1 {
		return ErrInvalidIndex
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// ItemTotal = quantity × price của một dòng hàng
func (d *Draft) ItemTotal(index int) float64 {
	if index < 0 || index >= len(d.Items) {
		return 0
	}
	item := d.Items[index]
	return float64(item.Quantity) * item.Price
}

// Total luôn được tính lại từ items, không cache
func (d *Draft) Total() float64 {
	sum := 0.0
	for i := range d.Items {
		sum += d.ItemTotal(i)
	}
	return sum
}

// SetField gán giá trị theo đường dẫn field ("customerName", "items.0.quantity", ...)
func (d *Draft) SetField(path string, value interface{}) error {
	if rest, ok := strings.CutPrefix(path, "items."); ok {
		return d.setItemField(rest, value)
	}

	switch path {
	case "customerName":
		return setString(&d.CustomerName, value)
	case "customerEmail":
		return setString(&d.CustomerEmail, value)
	case "customerPhone":
		return setString(&d.CustomerPhone, value)
	case "orderDate":
		return setDate(&d.OrderDate, value)
	case "paymentMethod":
		return setString(&d.PaymentMethod, value)
	case "transactionId":
		return setString(&d.TransactionId, value)
	case "status":
		return setString(&d.Status, value)
	case "shippingStreet":
		return setString(&d.ShippingStreet, value)
	case "shippingCity":
		return setString(&d.ShippingCity, value)
	case "shippingState":
		return setString(&d.ShippingState, value)
	case "shippingZip":
		return setString(&d.ShippingZip, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
}

// Watch trả về giá trị hiện tại tại đường dẫn, gồm cả giá trị dẫn xuất
// "total" và "items.N.total". Gọi nhiều lần không đổi nếu không có mutation.
func (d *Draft) Watch(path string) (interface{}, error) {
	if path == "total" {
		return d.Total(), nil
	}
	if rest, ok := strings.CutPrefix(path, "items."); ok {
		index, field, err := splitItemPath(rest)
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(d.Items) {
			return nil, ErrInvalidIndex
		}
		item := d.Items[index]
		switch field {
		case "productName":
			return item.ProductName, nil
		case "quantity":
			return item.Quantity, nil
		case "price":
			return item.Price, nil
		case "total":
			return d.ItemTotal(index), nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
		}
	}

	switch path {
	case "customerName":
		return d.CustomerName, nil
	case "customerEmail":
		return d.CustomerEmail, nil
	case "customerPhone":
		return d.CustomerPhone, nil
	case "orderDate":
		return d.OrderDate, nil
	case "paymentMethod":
		return d.PaymentMethod, nil
	case "transactionId":
		return d.TransactionId, nil
	case "status":
		return d.Status, nil
	case "shippingStreet":
		return d.ShippingStreet, nil
	case "shippingCity":
		return d.ShippingCity, nil
	case "shippingState":
		return d.ShippingState, nil
	case "shippingZip":
		return d.ShippingZip, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
}

func (d *Draft) setItemField(rest string, value interface{}) error {
	index, field, err := splitItemPath(rest)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Items) {
		return ErrInvalidIndex
	}

	switch field {
	case "productName":
		return setString(&d.Items[index].ProductName, value)
	case "quantity":
		return setInt(&d.Items[index].Quantity, value)
	case "price":
		return setFloat(&d.Items[index].Price, value)
	default:
		return fmt.Errorf("%w: items.%s", ErrUnknownField, rest)
	}
}

func splitItemPath(rest string) (int, string, error) {
	idxStr, field, found := strings.Cut(rest, ".")
	if !found {
		return 0, "", fmt.Errorf("%w: items.%s", ErrUnknownField, rest)
	}
	index, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", fmt.Errorf("%w: items.%s", ErrUnknownField, rest)
	}
	return index, field, nil
}

func setString(dst *string, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: want string, got %T", ErrInvalidValue, value)
	}
	*dst = s
	return nil
}

func setInt(dst *int, value interface{}) error {
	switch v := value.(type) {
	case int:
		*dst = v
	case float64: // số từ JSON decode
		*dst = int(v)
	default:
		return fmt.Errorf("%w: want number, got %T", ErrInvalidValue, value)
	}
	return nil
}

func setFloat(dst *float64, value interface{}) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return fmt.Errorf("%w: want number, got %T", ErrInvalidValue, value)
	}
	return nil
}

func setDate(dst *time.Time, value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*dst = v
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			t, err = time.Parse(time.RFC3339, v)
			if err != nil {
				return fmt.Errorf("%w: bad date %q", ErrInvalidValue, v)
			}
		}
		*dst = t
	default:
		return fmt.Errorf("%w: want date, got %T", ErrInvalidValue, value)
	}
	return nil
}
