package main

import (
	"math"
	"testing"
)

func TestFormatYen(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0円"},
		{999, "999円"},
		{1000, "1,000円"},
		{232000, "232,000円"},
		{1234567.89, "1,234,567円"},
		{100000000, "100,000,000円"},
		{0.99, "0円"},
		{-0.5, "-1円"},
		{-40000, "-40,000円"},
		{-1234.5, "-1,235円"},
		{math.NaN(), "-"},
		{math.Inf(1), "-"},
	}

	for _, tt := range tests {
		if got := FormatYen(tt.amount); got != tt.expected {
			t.Errorf("FormatYen(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.75); got != "75" {
		t.Errorf("FormatRate(0.75) = %q", got)
	}
	if got := FormatRate(0.6); got != "60" {
		t.Errorf("FormatRate(0.6) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{28: "28", 19.5: "19.5", 0: "0", 7.25: "7.25"}
	for v, expected := range tests {
		if got := FormatNumber(v); got != expected {
			t.Errorf("FormatNumber(%v) = %q, expected %q", v, got, expected)
		}
	}
}

func TestProfileTexts(t *testing.T) {
	empty := EvaluateForm(DefaultFormInput())
	if got := capitalText(empty); got != "未入力" {
		t.Errorf("capitalText = %q, expected 未入力", got)
	}
	if got := employeesText(empty); got != "未入力" {
		t.Errorf("employeesText = %q, expected 未入力", got)
	}

	form := DefaultFormInput()
	form.Capital = "5000"
	form.Employees = "120"
	eval := EvaluateForm(form)
	if got := capitalText(eval); got != "50,000,000円" {
		t.Errorf("capitalText = %q, expected 50,000,000円", got)
	}
	if got := employeesText(eval); got != "120名" {
		t.Errorf("employeesText = %q, expected 120名", got)
	}
}
