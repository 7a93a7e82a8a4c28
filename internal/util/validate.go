package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors flattens a gin binding failure into human-readable messages,
// one per failing field. Every failing field is enumerated, not just the
// first.
func BindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return msgs
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// wireNames maps struct field names whose wire spelling is not plain
// snake_case.
var wireNames = map[string]string{
	"ConfirmPassword": "confirmPassword",
}

// jsonFieldName converts a Go struct field name to its wire spelling
// (MonthlyBills -> monthly_bills) so validation messages reference the
// field the caller actually sent.
func jsonFieldName(name string) string {
	if w, ok := wireNames[name]; ok {
		return w
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
