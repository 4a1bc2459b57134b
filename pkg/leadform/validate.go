package leadform

import (
	"errors"
	"reflect"
	"strings"

	"standeal-backend/internal/domain"
	"standeal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// rules is the validator the API runs, so a form that passes here is not
// rejected there.
var rules = validation.New()

// FieldError marks one field the user has to fix before submitting.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is returned by Validate when at least one field is invalid.
type FieldErrors struct {
	Errors []FieldError
}

func (e *FieldErrors) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return "leadform: invalid fields: " + strings.Join(fields, ", ")
}

// Has reports whether field was marked.
func (e *FieldErrors) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message returns the message for field, or "" when it was not marked.
func (e *FieldErrors) Message(field string) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *FieldErrors) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *FieldErrors) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

const requiredMessage = "Acest câmp este obligatoriu"

// Validate marks empty required fields, a negative weight, unknown
// transport type or urgency values and anything else the API would reject
// (email and phone format, length caps).
func (f QuoteForm) Validate() error {
	errs := &FieldErrors{}
	for _, field := range quoteFields {
		if field.required && strings.TrimSpace(*field.ref(&f)) == "" {
			errs.add(field.name, requiredMessage)
		}
	}
	if weight := ParseWeight(f.CargoWeight); weight != nil && *weight < 0 {
		errs.add("cargo_weight", "Greutatea nu poate fi negativă")
	}
	if f.TransportType != "" {
		switch domain.TransportType(f.TransportType) {
		case domain.TransportNational, domain.TransportInternational:
		default:
			errs.add("transport_type", "Tip de transport necunoscut")
		}
	}
	if f.Urgency != "" {
		switch domain.Urgency(f.Urgency) {
		case domain.UrgencyNormal, domain.UrgencyUrgent, domain.UrgencyExpress:
		default:
			errs.add("urgency", "Urgență necunoscută")
		}
	}
	trimmed := f
	for _, field := range quoteFields {
		ref := field.ref(&trimmed)
		*ref = strings.TrimSpace(*ref)
	}
	errs.addRuleErrors(rules.Struct(trimmed.Snapshot()), reflect.TypeOf(domain.QuoteRequest{}))
	return errs.orNil()
}

// Validate marks empty required fields and anything else the API would
// reject.
func (f ContactForm) Validate() error {
	errs := &FieldErrors{}
	trimmed := f
	for _, field := range contactFields {
		ref := field.ref(&trimmed)
		*ref = strings.TrimSpace(*ref)
		if field.required && *ref == "" {
			errs.add(field.name, requiredMessage)
		}
	}
	errs.addRuleErrors(rules.Struct(trimmed.Snapshot()), reflect.TypeOf(domain.ContactRequest{}))
	return errs.orNil()
}

// addRuleErrors records validator failures on a request of type t under the
// JSON field name, keeping the first message per field.
func (e *FieldErrors) addRuleErrors(err error, t reflect.Type) {
	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return
	}
	for _, fe := range failed {
		field := fe.StructField()
		if sf, ok := t.FieldByName(field); ok {
			if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" {
				field = name
			}
		}
		if !e.Has(field) {
			e.add(field, validation.RuleMessage(fe))
		}
	}
}
