// Package validation declares the wizard step schemas and turns validator
// failures into field-level messages keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidation matches any Errors value with errors.Is.
var ErrValidation = errors.New("validation failed")

// Errors maps a JSON field name to the first message for that field.
type Errors map[string]string

// Error implements error with the fields listed in a stable order.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e Errors) Is(target error) bool {
	return target == ErrValidation
}

// Fields returns the failing field names, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

var (
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	cardRe   = regexp.MustCompile(`^[0-9 ]+$`)
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the JSON tag name func, the
// decimal type func and the custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		mustRegister(v, "country", func(fl validator.FieldLevel) bool {
			return currency.Default().IsSupported(fl.Field().String())
		})
		mustRegister(v, "paymentmethod", func(fl validator.FieldLevel) bool {
			return domain.IsPaymentMethod(fl.Field().String())
		})
		mustRegister(v, "cardnumber", func(fl validator.FieldLevel) bool {
			return cardNumberProblem(fl.Field().String()) == ""
		})
		mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
			return expiryRe.MatchString(fl.Field().String())
		})
		mustRegister(v, "cvv", func(fl validator.FieldLevel) bool {
			return cvvProblem(fl.Field().String()) == ""
		})
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate applies the struct tags of v. It returns nil or an Errors value.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "cardnumber":
		return cardNumberProblem(fmt.Sprint(fe.Value()))
	case "cvv":
		return cvvProblem(fmt.Sprint(fe.Value()))
	case "expiry":
		return "Expiry date must be in MM/YY format"
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "country":
		return fmt.Sprintf("Unsupported country %q", fe.Value())
	case "paymentmethod":
		return "Please select a payment method"
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

var fieldMessages = map[string]string{
	"fromCountry.required":   "Please select a source country",
	"toCountry.required":     "Please select a destination country",
	"sendAmount.required":    "Amount must be greater than zero",
	"sendAmount.gt":          "Amount must be greater than zero",
	"firstName.required":     "First name is required",
	"lastName.required":      "Last name is required",
	"email.required":         "Invalid email address",
	"phone.required":         "Valid phone number is required",
	"phone.min":              "Valid phone number is required",
	"nameOnCard.required":    "Name on card is required",
	"nameOnCard.min":         "Name on card is required",
	"expiryDate.required":    "Expiry date must be in MM/YY format",
	"cardNumber.required":    "Card number must be at least 16 digits",
	"cvv.required":           "CVV must be at least 3 digits",
	"paymentMethod.required": "Please select a payment method",

	"receivingCountry.required": "Please select a receiving country",
	"accountNumber.required":    "Account number must be at least 8 characters",
	"accountNumber.min":         "Account number must be at least 8 characters",
	"accountName.required":      "Account name is required",
	"accountName.min":           "Account name is required",
	"phoneNumber.required":      "Phone number is required",
	"phoneNumber.min":           "Phone number is required",
}

func cardNumberProblem(number string) string {
	if !cardRe.MatchString(number) {
		return "Card number must contain only digits"
	}
	digits := strings.ReplaceAll(number, " ", "")
	switch {
	case len(digits) < 16:
		return "Card number must be at least 16 digits"
	case len(digits) > 19:
		return "Card number must be at most 19 digits"
	}
	return ""
}

func cvvProblem(cvv string) string {
	switch {
	case !digitsRe.MatchString(cvv):
		if len(cvv) < 3 {
			return "CVV must be at least 3 digits"
		}
		return "CVV must contain only digits"
	case len(cvv) < 3:
		return "CVV must be at least 3 digits"
	case len(cvv) > 4:
		return "CVV must be at most 4 digits"
	}
	return ""
}
