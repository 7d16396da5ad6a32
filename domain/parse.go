package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity converts a raw quantity typed by the user.
// Sign is not checked here.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewInvalidInputError("quantity", "not a whole number", raw)
	}
	return q, nil
}

// ParsePrice converts a raw price typed by the user. A leading "$" is accepted.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	if s == "" {
		return decimal.Zero, NewInvalidInputError("price", "not a number", raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewInvalidInputError("price", "not a number", raw)
	}
	return d, nil
}
