package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidSalary = errors.New("invalid salary format")

// ValidateSalary accepts an empty string, "competitive" or "negotiable" (any case),
// a single amount or a "min-max" range. Amounts may carry '$', spaces and
// thousands separators ('.' or ','), which are stripped before parsing.
// A single amount must be digits; range bounds are decimal floats ("1e5-2e5"),
// finite and not negative.
func ValidateSalary(raw string) error {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	switch strings.ToLower(value) {
	case "competitive", "negotiable":
		return nil
	}

	if strings.Contains(value, "-") {
		parts := strings.Split(value, "-")
		if len(parts) != 2 {
			return ErrInvalidSalary
		}
		if !isRangeBound(parts[0]) || !isRangeBound(parts[1]) {
			return ErrInvalidSalary
		}
		return nil
	}

	if !isAmount(value) {
		return ErrInvalidSalary
	}
	return nil
}

var amountCleaner = strings.NewReplacer("$", "", " ", "", ".", "", ",", "")

func isAmount(s string) bool {
	cleaned := amountCleaner.Replace(s)
	if cleaned == "" {
		return false
	}
	for _, r := range cleaned {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isRangeBound(s string) bool {
	cleaned := amountCleaner.Replace(s)
	if cleaned == "" || strings.ContainsAny(cleaned, "xX_") {
		return false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= 0
}
