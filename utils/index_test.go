package utils_test

import (
	"testing"

	"case_empire/utils"
)

func TestCalculateGrowth(t *testing.T) {
	if got := utils.CalculateGrowth(150, 100); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := utils.CalculateGrowth(50, 100); got != -50 {
		t.Fatalf("expected -50, got %v", got)
	}
	if got := utils.CalculateGrowth(0, 0); got != 0 {
		t.Fatalf("expected 0 for no data, got %v", got)
	}
	if got := utils.CalculateGrowth(10, 0); got != 100 {
		t.Fatalf("expected 100 when previous is zero, got %v", got)
	}
}

func TestIsValidValueOfConstant(t *testing.T) {
	statuses := []string{"pending", "fulfilled", "cancelled"}
	if !utils.IsValidValueOfConstant("pending", statuses) {
		t.Fatalf("pending should be valid")
	}
	if utils.IsValidValueOfConstant("shipped", statuses) {
		t.Fatalf("shipped should be invalid")
	}
}

func TestStringPtr(t *testing.T) {
	if utils.StringPtr("") != nil {
		t.Fatalf("empty string should give nil")
	}
	if p := utils.StringPtr("x"); p == nil || *p != "x" {
		t.Fatalf("unexpected pointer: %v", p)
	}
}
