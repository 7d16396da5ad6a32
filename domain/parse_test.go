package domain

import (
	"testing"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"  12 ", 12, false},
		{"0", 0, false},
		{"-2", -2, false},
		{"", 0, true},
		{"three", 0, true},
		{"1.5", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseQuantity(tc.raw)
			if tc.wantErr {
				if !IsInvalidInputError(err) {
					t.Fatalf("expected InvalidInputError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"19.99", "19.99", false},
		{"$25", "25.00", false},
		{" 0.5 ", "0.50", false},
		{"-1", "-1.00", false},
		{"", "", true},
		{"$", "", true},
		{"twenty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePrice(tc.raw)
			if tc.wantErr {
				if !IsInvalidInputError(err) {
					t.Fatalf("expected InvalidInputError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.StringFixed(2) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.StringFixed(2))
			}
		})
	}
}
