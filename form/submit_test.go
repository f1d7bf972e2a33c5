package form_test

import (
	"errors"
	"testing"

	"case_empire/constants"
	"case_empire/form"
)

type fakeStore struct {
	table string
	rows  []map[string]interface{}
	calls int
	err   error
}

func (s *fakeStore) Insert(table string, rows []map[string]interface{}) error {
	s.calls++
	s.table = table
	s.rows = rows
	return s.err
}

// blockingStore giữ lần Insert đầu tiên lại cho tới khi test thả ra
type blockingStore struct {
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) Insert(table string, rows []map[string]interface{}) error {
	s.entered <- struct{}{}
	<-s.release
	return nil
}

func TestSubmitOneRowPerItem(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.Items = []form.LineItem{
		{ProductName: "Phone Case", Quantity: 2, Price: 9.99},
		{ProductName: "Screen Guard", Quantity: 1, Price: 3.50},
	}

	if err := sub.Submit(d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("expected one batch insert, got %d", store.calls)
	}
	if store.table != constants.TABLE_ORDERS {
		t.Fatalf("expected orders table, got %q", store.table)
	}
	if len(store.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(store.rows))
	}

	first := store.rows[0]
	if first["customer_name"] != "Jane Doe" || first["product_name"] != "Phone Case" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first["quantity"] != 2 || first["product_price"] != 9.99 {
		t.Fatalf("unexpected first row amounts: %+v", first)
	}
	if store.rows[1]["product_name"] != "Screen Guard" {
		t.Fatalf("unexpected second row: %+v", store.rows[1])
	}
	// thông tin khách lặp lại trên mọi dòng
	if store.rows[1]["customer_phone"] != first["customer_phone"] {
		t.Fatalf("customer info not repeated across rows")
	}
}

func TestSubmitCodHasNullTransactionId(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.PaymentMethod = constants.PAYMENT_COD
	d.TransactionId = "stale-value"

	if err := sub.Submit(d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if store.rows[0]["transaction_id"] != nil {
		t.Fatalf("expected nil transaction_id for cod, got %v", store.rows[0]["transaction_id"])
	}
}

func TestSubmitBkashKeepsTransactionId(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.PaymentMethod = constants.PAYMENT_BKASH
	d.TransactionId = "TXN123"

	if err := sub.Submit(d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if store.rows[0]["transaction_id"] != "TXN123" {
		t.Fatalf("expected TXN123, got %v", store.rows[0]["transaction_id"])
	}
}

func TestSubmitEmptyEmailStoredAsNull(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.CustomerEmail = ""

	if err := sub.Submit(d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if store.rows[0]["customer_email"] != nil {
		t.Fatalf("expected nil customer_email, got %v", store.rows[0]["customer_email"])
	}
}

func TestSubmitStoreErrorKeepsDraft(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	notified := false
	sub := form.NewSubmitter(store, func(string) { notified = true })

	d := validDraft()
	d.Items = []form.LineItem{
		{ProductName: "Phone Case", Quantity: 2, Price: 9.99},
		{ProductName: "Screen Guard", Quantity: 1, Price: 3.50},
	}

	err := sub.Submit(d)
	var writeErr *form.StoreWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected StoreWriteError, got %v", err)
	}
	if writeErr.Err.Error() != "connection refused" {
		t.Fatalf("store message not preserved: %v", writeErr.Err)
	}
	if store.calls != 1 {
		t.Fatalf("expected single insert attempt, got %d", store.calls)
	}
	if notified {
		t.Fatalf("listener must not fire on failure")
	}
	// draft giữ nguyên để người dùng sửa rồi gửi lại
	if len(d.Items) != 2 || d.CustomerName != "Jane Doe" {
		t.Fatalf("draft was mutated on failure: %+v", d)
	}
}

func TestSubmitSuccessResetsDraftAndNotifies(t *testing.T) {
	store := &fakeStore{}
	var gotTable string
	sub := form.NewSubmitter(store)
	sub.OnSuccess(func(table string) { gotTable = table })

	d := validDraft()
	if err := sub.Submit(d); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gotTable != constants.TABLE_ORDERS {
		t.Fatalf("listener got %q, want orders", gotTable)
	}
	if d.CustomerName != "" || len(d.Items) != 1 || d.Items[0].ProductName != "" {
		t.Fatalf("draft not reset after success: %+v", d)
	}
}

func TestSubmitRejectsEmptyItems(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.Items = nil

	if err := sub.Submit(d); !errors.Is(err, form.ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be touched, got %d calls", store.calls)
	}
}

func TestSubmitRejectsUnknownPaymentMethod(t *testing.T) {
	store := &fakeStore{}
	sub := form.NewSubmitter(store)

	d := validDraft()
	d.PaymentMethod = "wire"

	if err := sub.Submit(d); !errors.Is(err, form.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be touched, got %d calls", store.calls)
	}
}

func TestSubmitBlocksWhileInFlight(t *testing.T) {
	store := &blockingStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	sub := form.NewSubmitter(store)

	done := make(chan error, 1)
	go func() { done <- sub.Submit(validDraft()) }()
	<-store.entered

	if err := sub.Submit(validDraft()); !errors.Is(err, form.ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight while write is running, got %v", err)
	}

	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
}

func TestSubmitAllowedAgainAfterFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("deadlock detected")}
	sub := form.NewSubmitter(store)

	d := validDraft()
	if err := sub.Submit(d); err == nil {
		t.Fatalf("expected failure on first submit")
	}

	store.err = nil
	if err := sub.Submit(d); err != nil {
		t.Fatalf("retry after failure should proceed, got %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("expected 2 insert attempts, got %d", store.calls)
	}
}
