package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"standeal-backend/internal/domain"
)

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1d4ed8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 12px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #16a34a; margin-top: 10px; white-space: pre-line; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>{{.Title}}</h1></div>
        <div class="content">{{template "body" .}}</div>
        <div class="footer">
            <p>StanDeal Transport · {{.CompanyEmail}}</p>
        </div>
    </div>
</body>
</html>{{end}}`

const quoteNotificationBody = `{{define "body"}}
<div class="field"><span class="label">Client:</span> {{.Quote.ClientName}}</div>
<div class="field"><span class="label">Email:</span> {{.Quote.Email}}</div>
<div class="field"><span class="label">Telefon:</span> {{.Quote.Phone}}</div>
<div class="field"><span class="label">De la:</span> {{.Quote.PickupLocation}}</div>
<div class="field"><span class="label">Către:</span> {{.Quote.DeliveryLocation}}</div>
<div class="field"><span class="label">Tipul mărfii:</span> {{.Quote.CargoType}}</div>
<div class="field"><span class="label">Greutatea:</span> {{.Weight}}</div>
<div class="field"><span class="label">Dimensiuni:</span> {{or .Quote.CargoDimensions "-"}}</div>
<div class="field"><span class="label">Tipul transportului:</span> {{.TransportType}}</div>
<div class="field"><span class="label">Urgența:</span> {{.Urgency}}</div>
{{if .Quote.AdditionalInfo}}<div class="message-box">{{.Quote.AdditionalInfo}}</div>{{end}}
<div class="field"><span class="label">Data:</span> {{.Received}}</div>
{{end}}`

const quoteConfirmationBody = `{{define "body"}}
<p>Stimat/ă {{.Quote.ClientName}},</p>
<p>Am primit cererea dumneavoastră de cotație pentru serviciile de transport.</p>
<p>Detaliile cererii:</p>
<ul>
    <li>Ruta: {{.Quote.PickupLocation}} → {{.Quote.DeliveryLocation}}</li>
    <li>Tipul mărfii: {{.Quote.CargoType}}</li>
    <li>Tipul transportului: {{.TransportType}}</li>
</ul>
<p>Vă vom contacta în maxim 2 ore cu o cotație detaliată.</p>
<p>Cu stimă,<br>Echipa StanDeal Transport</p>
{{end}}`

const contactNotificationBody = `{{define "body"}}
<p>Nou mesaj de contact de pe site-ul standeal.md:</p>
<div class="field"><span class="label">Nume:</span> {{.Contact.Name}}</div>
<div class="field"><span class="label">Email:</span> {{.Contact.Email}}</div>
<div class="field"><span class="label">Telefon:</span> {{or .Contact.Phone "-"}}</div>
<div class="field"><span class="label">Subiect:</span> {{.Contact.Subject}}</div>
<div class="message-box">{{.Contact.Message}}</div>
<div class="field"><span class="label">Data:</span> {{.Received}}</div>
{{end}}`

var (
	quoteNotificationTmpl   = mustParse("quote_notification", quoteNotificationBody)
	quoteConfirmationTmpl   = mustParse("quote_confirmation", quoteConfirmationBody)
	contactNotificationTmpl = mustParse("contact_notification", contactNotificationBody)
)

func mustParse(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(layoutTemplate)).Parse(body))
}

var transportLabels = map[domain.TransportType]string{
	domain.TransportNational:      "Național",
	domain.TransportInternational: "Internațional",
}

var urgencyLabels = map[domain.Urgency]string{
	domain.UrgencyNormal:  "Normal",
	domain.UrgencyUrgent:  "Urgent",
	domain.UrgencyExpress: "Express",
}

type quoteView struct {
	Title         string
	CompanyEmail  string
	Quote         *domain.TransportQuote
	Weight        string
	TransportType string
	Urgency       string
	Received      string
}

type contactView struct {
	Title        string
	CompanyEmail string
	Contact      *domain.ContactMessage
	Received     string
}

func newQuoteView(title, companyEmail string, quote *domain.TransportQuote) quoteView {
	weight := "-"
	if quote.CargoWeight != nil {
		weight = strconv.FormatFloat(*quote.CargoWeight, 'f', -1, 64) + " kg"
	}
	return quoteView{
		Title:         title,
		CompanyEmail:  companyEmail,
		Quote:         quote,
		Weight:        weight,
		TransportType: labelOr(transportLabels[quote.TransportType], string(quote.TransportType)),
		Urgency:       labelOr(urgencyLabels[quote.Urgency], string(quote.Urgency)),
		Received:      formatTime(quote.Timestamp),
	}
}

// BuildQuoteNotification is the message the company inbox receives for a new quote request
func BuildQuoteNotification(companyEmail string, quote *domain.TransportQuote) (*Message, error) {
	body, err := render(quoteNotificationTmpl, newQuoteView("Nouă cerere de cotație", companyEmail, quote))
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{companyEmail},
		ReplyTo:  quote.Email,
		Subject:  fmt.Sprintf("Nouă cerere de cotație - %s", quote.ClientName),
		HTMLBody: body,
	}, nil
}

// BuildQuoteConfirmation is the acknowledgement sent back to the client
func BuildQuoteConfirmation(companyEmail string, quote *domain.TransportQuote) (*Message, error) {
	body, err := render(quoteConfirmationTmpl, newQuoteView("Confirmarea primirii cererii de cotație", companyEmail, quote))
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{quote.Email},
		ReplyTo:  companyEmail,
		Subject:  "Confirmarea primirii cererii de cotație - StanDeal Transport",
		HTMLBody: body,
	}, nil
}

// BuildContactNotification forwards a contact message to the company inbox
func BuildContactNotification(companyEmail string, msg *domain.ContactMessage) (*Message, error) {
	body, err := render(contactNotificationTmpl, contactView{
		Title:        "Nou mesaj de contact",
		CompanyEmail: companyEmail,
		Contact:      msg,
		Received:     formatTime(msg.Timestamp),
	})
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{companyEmail},
		ReplyTo:  msg.Email,
		Subject:  fmt.Sprintf("Nou mesaj de contact - %s", msg.Subject),
		HTMLBody: body,
	}, nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("02.01.2006 15:04 UTC")
}
