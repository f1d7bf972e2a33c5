package helper_test

import (
	"strconv"
	"strings"
	"testing"

	"case_empire/helper"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	num := helper.GenerateInvoiceNumber()
	if !strings.HasPrefix(num, "INV-") {
		t.Fatalf("expected INV- prefix, got %q", num)
	}
	if _, err := strconv.ParseInt(strings.TrimPrefix(num, "INV-"), 10, 64); err != nil {
		t.Fatalf("expected numeric suffix, got %q", num)
	}
}
