// Package leadform holds the raw values of the quote and contact forms.
//
// Form values are plain immutable structs; every change goes through the
// pure Update and Reset functions, which return a new State. Nothing here
// talks to the network: Session drives a submission through a Submitter.
package leadform

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"standeal-backend/internal/domain"
)

type FormID string

const (
	FormQuote   FormID = "quote"
	FormContact FormID = "contact"
)

var (
	ErrUnknownForm  = errors.New("leadform: unknown form")
	ErrUnknownField = errors.New("leadform: unknown field")
)

// QuoteForm is the transport quote form exactly as typed.
type QuoteForm struct {
	ClientName       string
	Email            string
	Phone            string
	PickupLocation   string
	DeliveryLocation string
	CargoType        string
	CargoWeight      string
	CargoDimensions  string
	TransportType    string
	Urgency          string
	AdditionalInfo   string
}

// ContactForm is the contact form exactly as typed.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// State is the value of both forms at one point in time.
type State struct {
	Quote   QuoteForm
	Contact ContactForm
}

// Field accessors keyed by the JSON name the API uses.
var quoteFields = []struct {
	name     string
	required bool
	ref      func(*QuoteForm) *string
}{
	{"client_name", true, func(f *QuoteForm) *string { return &f.ClientName }},
	{"email", true, func(f *QuoteForm) *string { return &f.Email }},
	{"phone", true, func(f *QuoteForm) *string { return &f.Phone }},
	{"pickup_location", true, func(f *QuoteForm) *string { return &f.PickupLocation }},
	{"delivery_location", true, func(f *QuoteForm) *string { return &f.DeliveryLocation }},
	{"cargo_type", true, func(f *QuoteForm) *string { return &f.CargoType }},
	{"cargo_weight", false, func(f *QuoteForm) *string { return &f.CargoWeight }},
	{"cargo_dimensions", false, func(f *QuoteForm) *string { return &f.CargoDimensions }},
	{"transport_type", true, func(f *QuoteForm) *string { return &f.TransportType }},
	{"urgency", true, func(f *QuoteForm) *string { return &f.Urgency }},
	{"additional_info", false, func(f *QuoteForm) *string { return &f.AdditionalInfo }},
}

var contactFields = []struct {
	name     string
	required bool
	ref      func(*ContactForm) *string
}{
	{"name", true, func(f *ContactForm) *string { return &f.Name }},
	{"email", true, func(f *ContactForm) *string { return &f.Email }},
	{"phone", false, func(f *ContactForm) *string { return &f.Phone }},
	{"subject", true, func(f *ContactForm) *string { return &f.Subject }},
	{"message", true, func(f *ContactForm) *string { return &f.Message }},
}

// QuoteFieldNames lists the quote form fields in display order.
func QuoteFieldNames() []string {
	names := make([]string, 0, len(quoteFields))
	for _, f := range quoteFields {
		names = append(names, f.name)
	}
	return names
}

// ContactFieldNames lists the contact form fields in display order.
func ContactFieldNames() []string {
	names := make([]string, 0, len(contactFields))
	for _, f := range contactFields {
		names = append(names, f.name)
	}
	return names
}

// Update returns s with exactly one field of one form replaced.
func Update(s State, form FormID, field, value string) (State, error) {
	switch form {
	case FormQuote:
		for _, f := range quoteFields {
			if f.name == field {
				*f.ref(&s.Quote) = value
				return s, nil
			}
		}
	case FormContact:
		for _, f := range contactFields {
			if f.name == field {
				*f.ref(&s.Contact) = value
				return s, nil
			}
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
	return s, fmt.Errorf("%w: %s.%s", ErrUnknownField, form, field)
}

// Reset returns s with the targeted form emptied and the other one untouched.
// An unknown form leaves s unchanged.
func Reset(s State, form FormID) State {
	switch form {
	case FormQuote:
		s.Quote = QuoteForm{}
	case FormContact:
		s.Contact = ContactForm{}
	}
	return s
}

// Value reads one field by its JSON name.
func (s State) Value(form FormID, field string) (string, error) {
	switch form {
	case FormQuote:
		for _, f := range quoteFields {
			if f.name == field {
				return *f.ref(&s.Quote), nil
			}
		}
	case FormContact:
		for _, f := range contactFields {
			if f.name == field {
				return *f.ref(&s.Contact), nil
			}
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
	return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, form, field)
}

func (f QuoteForm) IsEmpty() bool   { return f == QuoteForm{} }
func (f ContactForm) IsEmpty() bool { return f == ContactForm{} }

// Snapshot builds the request that is sent to the API.
func (f QuoteForm) Snapshot() domain.QuoteRequest {
	return domain.QuoteRequest{
		ClientName:       f.ClientName,
		Email:            f.Email,
		Phone:            f.Phone,
		PickupLocation:   f.PickupLocation,
		DeliveryLocation: f.DeliveryLocation,
		CargoType:        f.CargoType,
		CargoWeight:      ParseWeight(f.CargoWeight),
		CargoDimensions:  f.CargoDimensions,
		TransportType:    domain.TransportType(f.TransportType),
		Urgency:          domain.Urgency(f.Urgency),
		AdditionalInfo:   f.AdditionalInfo,
	}
}

func (f ContactForm) Snapshot() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Subject: f.Subject,
		Message: f.Message,
	}
}

// weightPrefix is the leading number of a typed weight, so "500 kg" and
// "1.5t" keep their value.
var weightPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseWeight turns the typed weight into a number. Only the leading number
// counts: spaces are dropped first ("1 500" is 1500) and a decimal comma is
// accepted. Input without a leading number, or with a non-finite one,
// yields nil.
func ParseWeight(raw string) *float64 {
	raw = strings.ReplaceAll(strings.Join(strings.Fields(raw), ""), ",", ".")
	number := weightPrefix.FindString(raw)
	if number == "" {
		return nil
	}
	weight, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil
	}
	return &weight
}
