package validation

import (
	"regexp"
	"strings"
)

// CardBrand is the card network inferred from a card number.
type CardBrand string

const (
	Visa       CardBrand = "VISA"
	Mastercard CardBrand = "MASTERCARD"
	Unknown    CardBrand = "UNKNOWN"
)

var (
	visaRe   = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	masterRe = regexp.MustCompile(`^5[1-5][0-9]{14}$`)
)

// DetectCardBrand returns the brand of a Luhn-valid Visa or Mastercard number
// and Unknown otherwise. It does not gate the Payment step.
func DetectCardBrand(number string) CardBrand {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if !passesLuhn(clean) {
		return Unknown
	}
	switch {
	case visaRe.MatchString(clean):
		return Visa
	case masterRe.MatchString(clean):
		return Mastercard
	}
	return Unknown
}

// MaskCardNumber keeps only the last four digits.
func MaskCardNumber(number string) string {
	clean := strings.ReplaceAll(number, " ", "")
	if len(clean) <= 4 {
		return clean
	}
	return strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]
}

func passesLuhn(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		n := int(c - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0
}
