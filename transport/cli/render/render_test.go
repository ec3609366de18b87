package render_test

import (
	"bytes"
	"strings"
	"testing"

	"lodge/transport/cli/render"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	render.Table(&buf, []string{"ID", "NAME"}, [][]string{
		{"1", "Alice"},
		{"2", "Bob"},
	})

	out := buf.String()

	if !strings.Contains(out, "ID") || !strings.Contains(out, "NAME") {
		t.Errorf("expected header in output, got %q", out)
	}

	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Errorf("expected rows in output, got %q", out)
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer

	render.Table(&buf, []string{"ID", "NAME"}, nil)

	out := buf.String()

	if strings.Contains(out, "ID") {
		t.Errorf("expected no header for empty table, got %q", out)
	}

	if !strings.Contains(out, "No data to display.") {
		t.Errorf("expected placeholder for empty table, got %q", out)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{1400, "1400.00"},
		{-30, "-30.00"},
	}

	for _, tt := range tests {
		if got := render.Money(tt.amount); got != tt.expected {
			t.Errorf("Money(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}
