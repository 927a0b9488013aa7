package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Card issuers reported by ValidateCard. The prefix check is a rough guess,
// not a BIN lookup.
const (
	IssuerVisa       = "Visa"
	IssuerMastercard = "Mastercard"
	IssuerAmex       = "American Express"
	IssuerUnknown    = "Unknown"
)

// Costa Rican numbers: optional 506 country code, then eight digits whose
// first digit is 5, 6, 7 or 8.
var localMobilePattern = regexp.MustCompile(`^(\+?506)?[5678]\d{7}$`)

// stripRunes drops whitespace and the given separator runes from s.
func stripRunes(s, separators string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, s)
}

// PaymentValidator checks payment references. It holds no state.
type PaymentValidator struct{}

// NewPaymentValidator creates a PaymentValidator.
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// ValidateCard checks the format and Luhn checksum of a card number. On
// success detail is the issuer; otherwise it is the rejection reason.
func (v *PaymentValidator) ValidateCard(number string) (bool, string) {
	digits := stripRunes(number, "-")
	if digits == "" || !isAllDigits(digits) {
		return false, "card number must contain only digits"
	}
	if len(digits) < 13 || len(digits) > 19 {
		return false, "card number must have between 13 and 19 digits"
	}
	if !luhnValid(digits) {
		return false, "card number failed checksum"
	}
	return true, cardIssuer(digits)
}

// ValidateLocalMobileNumber checks a local mobile number. On success detail
// is the cleaned number; otherwise it is the rejection reason.
func (v *PaymentValidator) ValidateLocalMobileNumber(text string) (bool, string) {
	cleaned := stripRunes(text, "()-")
	if !localMobilePattern.MatchString(cleaned) {
		return false, "invalid mobile number: expected 8 digits starting with 5, 6, 7 or 8"
	}
	return true, cleaned
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func cardIssuer(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return IssuerVisa
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return IssuerMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return IssuerAmex
	default:
		return IssuerUnknown
	}
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
