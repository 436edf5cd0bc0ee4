package models

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

const (
	PriceDigits  = 10
	PricePlaces  = 2
	WeightDigits = 10
	WeightPlaces = 3

	MinOrderNameLength = 3
)

// CheckDecimal returns the problems of d against a column of the given total
// digits and decimal places. Negative values are rejected as well.
func CheckDecimal(d decimal.Decimal, maxDigits, maxPlaces int) []string {
	var problems []string
	if d.IsNegative() {
		problems = append(problems, "Ensure this value is greater than or equal to 0.")
	}

	// String trims trailing zeros, so "9.990" counts as two places.
	s := strings.TrimPrefix(d.Abs().String(), "-")
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "0" {
		whole = ""
	}
	if len(frac) > maxPlaces {
		problems = append(problems, fmt.Sprintf("Ensure that there are no more than %d decimal places.", maxPlaces))
	}
	if len(whole)+len(frac) > maxDigits {
		problems = append(problems, fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits))
	}
	if len(whole) > maxDigits-maxPlaces && len(frac) <= maxPlaces && len(whole)+len(frac) <= maxDigits {
		problems = append(problems, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-maxPlaces))
	}
	return problems
}

// NormalizePhone parses raw using defaultRegion when it carries no country
// code and returns it in E.164 form.
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("phone number is required")
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", fmt.Errorf("parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("phone number %q is not valid", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
