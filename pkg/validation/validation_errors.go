package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly Romanian labels
var FieldLabels = map[string]string{
	// QuoteRequest fields
	"ClientName":       "Nume complet",
	"Email":            "Email",
	"Phone":            "Telefon",
	"PickupLocation":   "Locația de preluare",
	"DeliveryLocation": "Locația de livrare",
	"CargoType":        "Tipul mărfii",
	"CargoWeight":      "Greutatea",
	"CargoDimensions":  "Dimensiuni",
	"TransportType":    "Tipul transportului",
	"Urgency":          "Urgența",
	"AdditionalInfo":   "Informații adiționale",

	// ContactRequest fields
	"Name":    "Nume",
	"Subject": "Subiect",
	"Message": "Mesaj",
}

// ValidationRules contains units used in min/max messages
var ValidationRules = map[string]map[string]interface{}{
	"CargoWeight": {"unit": "kg"},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	return fmt.Sprintf("%s: %s", getFieldLabel(e.Field()), RuleMessage(e))
}

// RuleMessage describes the failed rule without the field label, for UIs that
// show the message next to the field itself
func RuleMessage(e validator.FieldError) string {
	fieldName := e.StructField()
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return "Câmp obligatoriu"

	case "min", "gte":
		if unit, ok := unitFor(fieldName); ok {
			return fmt.Sprintf("Minim %s %s", param, unit)
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Minim %s caractere", param)
		}
		return fmt.Sprintf("Minim %s", param)

	case "max", "lte":
		if unit, ok := unitFor(fieldName); ok {
			return fmt.Sprintf("Maxim %s %s", param, unit)
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Maxim %s caractere", param)
		}
		return fmt.Sprintf("Maxim %s", param)

	case "oneof":
		return fmt.Sprintf("Trebuie să fie una dintre: %s", formatOneOfOptions(param))

	case "email":
		return "Format email invalid"

	case "valid_phone":
		return "Număr de telefon invalid (7-15 cifre, cu sau fără +)"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("Validare eșuată (%s)", tag)
	}
}

func unitFor(fieldName string) (interface{}, bool) {
	rules, ok := ValidationRules[fieldName]
	if !ok {
		return nil, false
	}
	unit, ok := rules["unit"]
	return unit, ok
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// formatOneOfOptions formats oneof options for display
func formatOneOfOptions(param string) string {
	options := strings.Split(param, " ")
	formatted := make([]string, len(options))
	for i, opt := range options {
		formatted[i] = formatEnumValue(opt)
	}
	return strings.Join(formatted, ", ")
}

// EnumLabels maps enum values to their Romanian display labels
var EnumLabels = map[string]string{
	"national":      "Național",
	"international": "Internațional",
	"normal":        "Normal",
	"urgent":        "Urgent",
	"express":       "Express",
}

func formatEnumValue(value string) string {
	if label, ok := EnumLabels[value]; ok {
		return label
	}
	return value
}
