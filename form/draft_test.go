package form_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"case_empire/constants"
	"case_empire/form"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewDraftDefaults(t *testing.T) {
	d := form.NewDraft()

	if len(d.Items) != 1 {
		t.Fatalf("expected 1 default item, got %d", len(d.Items))
	}
	item := d.Items[0]
	if item.ProductName != "" || item.Quantity != 1 || item.Price != 0 {
		t.Fatalf("unexpected default item: %+v", item)
	}
	if d.PaymentMethod != constants.PAYMENT_COD {
		t.Fatalf("expected default payment method cod, got %q", d.PaymentMethod)
	}
	if d.Status != constants.ORDER_PENDING {
		t.Fatalf("expected default status pending, got %q", d.Status)
	}
	if d.OrderDate.IsZero() {
		t.Fatalf("expected default order date to be set")
	}
}

func TestSingleItemTotal(t *testing.T) {
	d := form.NewDraft()
	if err := d.SetField("items.0.productName", "Widget"); err != nil {
		t.Fatalf("set productName: %v", err)
	}
	if err := d.SetField("items.0.quantity", 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := d.SetField("items.0.price", 9.99); err != nil {
		t.Fatalf("set price: %v", err)
	}

	if got := d.ItemTotal(0); !almostEqual(got, 19.98) {
		t.Fatalf("expected line total 19.98, got %v", got)
	}
	if got := d.Total(); !almostEqual(got, 19.98) {
		t.Fatalf("expected order total 19.98, got %v", got)
	}
}

func TestMultiItemTotal(t *testing.T) {
	d := form.NewDraft()
	d.Items = []form.LineItem{
		{ProductName: "A", Quantity: 1, Price: 10.00},
		{ProductName: "B", Quantity: 3, Price: 2.50},
	}

	if got := d.Total(); !almostEqual(got, 17.50) {
		t.Fatalf("expected order total 17.50, got %v", got)
	}
}

func TestWatchTotalIdempotent(t *testing.T) {
	d := form.NewDraft()
	d.Items = []form.LineItem{{ProductName: "A", Quantity: 4, Price: 2.25}}

	first, err := d.Watch("total")
	if err != nil {
		t.Fatalf("watch total: %v", err)
	}
	second, err := d.Watch("total")
	if err != nil {
		t.Fatalf("watch total again: %v", err)
	}
	if first != second {
		t.Fatalf("watch total changed without mutation: %v then %v", first, second)
	}
	if !almostEqual(first.(float64), 9.0) {
		t.Fatalf("expected total 9.0, got %v", first)
	}
}

func TestWatchItemFields(t *testing.T) {
	d := form.NewDraft()
	d.Items = []form.LineItem{{ProductName: "Widget", Quantity: 2, Price: 5}}

	name, err := d.Watch("items.0.productName")
	if err != nil || name != "Widget" {
		t.Fatalf("expected Widget, got %v (err %v)", name, err)
	}
	lineTotal, err := d.Watch("items.0.total")
	if err != nil || !almostEqual(lineTotal.(float64), 10) {
		t.Fatalf("expected line total 10, got %v (err %v)", lineTotal, err)
	}
	if _, err := d.Watch("items.5.price"); !errors.Is(err, form.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex for out of range item, got %v", err)
	}
}

func TestAddItemAppendsDefault(t *testing.T) {
	d := form.NewDraft()
	if err := d.AddItem(); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(d.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(d.Items))
	}
	if d.Items[1].Quantity != 1 || d.Items[1].Price != 0 || d.Items[1].ProductName != "" {
		t.Fatalf("unexpected appended item: %+v", d.Items[1])
	}
}

func TestAddItemCeiling(t *testing.T) {
	d := form.NewDraft()
	for len(d.Items) < form.MaxItems {
		if err := d.AddItem(); err != nil {
			t.Fatalf("add item %d: %v", len(d.Items), err)
		}
	}
	if err := d.AddItem(); !errors.Is(err, form.ErrTooManyItems) {
		t.Fatalf("expected ErrTooManyItems past ceiling, got %v", err)
	}
	if len(d.Items) != form.MaxItems {
		t.Fatalf("expected %d items, got %d", form.MaxItems, len(d.Items))
	}
}

func TestRemoveItemKeepsAtLeastOne(t *testing.T) {
	d := form.NewDraft()
	if err := d.RemoveItem(0); !errors.Is(err, form.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex removing the last item, got %v", err)
	}
	if len(d.Items) != 1 {
		t.Fatalf("expected list to stay at 1 item, got %d", len(d.Items))
	}
}

func TestRemoveItemMiddle(t *testing.T) {
	d := form.NewDraft()
	d.Items = []form.LineItem{
		{ProductName: "A", Quantity: 1, Price: 1},
		{ProductName: "B", Quantity: 1, Price: 2},
		{ProductName: "C", Quantity: 1, Price: 3},
	}

	if err := d.RemoveItem(1); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if len(d.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(d.Items))
	}
	if d.Items[0].ProductName != "A" || d.Items[1].ProductName != "C" {
		t.Fatalf("unexpected items after remove: %+v", d.Items)
	}
	if !almostEqual(d.Total(), 4) {
		t.Fatalf("expected total 4 after remove, got %v", d.Total())
	}
}

func TestSetFieldTopLevel(t *testing.T) {
	d := form.NewDraft()
	if err := d.SetField("customerName", "Jane Doe"); err != nil {
		t.Fatalf("set customerName: %v", err)
	}
	if d.CustomerName != "Jane Doe" {
		t.Fatalf("customerName not set: %q", d.CustomerName)
	}

	if err := d.SetField("orderDate", "2026-08-31"); err != nil {
		t.Fatalf("set orderDate: %v", err)
	}
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !d.OrderDate.Equal(want) {
		t.Fatalf("expected order date %v, got %v", want, d.OrderDate)
	}
}

func TestSetFieldErrors(t *testing.T) {
	d := form.NewDraft()
	if err := d.SetField("nope", "x"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := d.SetField("customerName", 42); !errors.Is(err, form.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for non-string name, got %v", err)
	}
	if err := d.SetField("items.3.quantity", 2); !errors.Is(err, form.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if err := d.SetField("items.0.quantity", "two"); !errors.Is(err, form.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for string quantity, got %v", err)
	}
}

func TestSetFieldJSONNumbers(t *testing.T) {
	d := form.NewDraft()
	// JSON decode đưa số về float64
	if err := d.SetField("items.0.quantity", float64(3)); err != nil {
		t.Fatalf("set quantity from float64: %v", err)
	}
	if d.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", d.Items[0].Quantity)
	}
	if err := d.SetField("items.0.price", 7); err != nil {
		t.Fatalf("set price from int: %v", err)
	}
	if !almostEqual(d.Items[0].Price, 7) {
		t.Fatalf("expected price 7, got %v", d.Items[0].Price)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	d := form.NewDraft()
	d.CustomerName = "Jane Doe"
	d.PaymentMethod = constants.PAYMENT_BKASH
	d.Items = []form.LineItem{
		{ProductName: "A", Quantity: 2, Price: 3},
		{ProductName: "B", Quantity: 1, Price: 1},
	}

	d.Reset()

	if d.CustomerName != "" {
		t.Fatalf("expected customerName cleared, got %q", d.CustomerName)
	}
	if d.PaymentMethod != constants.PAYMENT_COD {
		t.Fatalf("expected payment method back to cod, got %q", d.PaymentMethod)
	}
	if len(d.Items) != 1 || d.Items[0].Quantity != 1 {
		t.Fatalf("expected single default item, got %+v", d.Items)
	}
}
