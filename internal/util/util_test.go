package util

import (
	"math"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "whole amount", amount: 2000000, expected: "2000000.0"},
		{name: "large whole amount", amount: 15000000, expected: "15000000.0"},
		{name: "cents", amount: 999999.99, expected: "999999.99"},
		{name: "half", amount: 250.5, expected: "250.5"},
		{name: "zero", amount: 0, expected: "0.0"},
		{name: "negative", amount: -12, expected: "-12.0"},
		{name: "infinity", amount: math.Inf(1), expected: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(tt.amount); got != tt.expected {
				t.Fatalf("FormatPrice(%v) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{name: "zero", count: 0, expected: "bedroom"},
		{name: "one", count: 1, expected: "bedroom"},
		{name: "two", count: 2, expected: "bedrooms"},
		{name: "twenty", count: 20, expected: "bedrooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Pluralize(tt.count, "bedroom"); got != tt.expected {
				t.Fatalf("Pluralize(%d) = %s, want %s", tt.count, got, tt.expected)
			}
		})
	}
}
