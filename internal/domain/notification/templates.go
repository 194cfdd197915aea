package notification

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"salonbooking/internal/domain"
)

const (
	fallbackCustomer = "Valued Customer"
	fallbackBusiness = "Our Salon"
	fallbackStylist  = "Not assigned"

	emailDateLayout = "Monday, January 2, 2006"
	emailTimeLayout = "03:04 PM"
	shortDateLayout = "1/2/2006"
)

// templateData is the view model shared by every rendered message.
type templateData struct {
	CustomerName string
	BusinessName string
	ServiceName  string
	StylistName  string
	Date         string
	Time         string
	ShortDate    string
	Notes        string
	Headline     string
	Verb         string
}

// Message is a fully rendered email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type copyBlock struct {
	subject  string
	title    string
	headline string
	verb     string
}

var copyByAction = map[domain.NotificationAction]copyBlock{
	domain.ActionConfirmed: {
		subject:  "Appointment Confirmed",
		title:    "Appointment Confirmed",
		headline: "Your appointment is confirmed",
		verb:     "confirmed",
	},
	domain.ActionCancelled: {
		subject:  "Appointment Cancelled",
		title:    "Appointment Cancelled",
		headline: "Your appointment has been cancelled",
		verb:     "cancelled",
	},
	domain.ActionCompleted: {
		subject:  "Appointment Completed",
		title:    "Appointment Completed",
		headline: "Thanks for visiting",
		verb:     "completed",
	},
}

const htmlBody = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Headline}}</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Your appointment at <strong>{{.BusinessName}}</strong> has been {{.Verb}}.</p>
  <table cellpadding="4">
    <tr><td><strong>Service:</strong></td><td>{{.ServiceName}}</td></tr>
    <tr><td><strong>Stylist:</strong></td><td>{{.StylistName}}</td></tr>
    <tr><td><strong>Date:</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time:</strong></td><td>{{.Time}}</td></tr>
    {{- if .Notes}}
    <tr><td><strong>Notes:</strong></td><td>{{.Notes}}</td></tr>
    {{- end}}
  </table>
  <p>{{.BusinessName}}</p>
</body>
</html>
`

const textBody = `{{.Headline}}

Hi {{.CustomerName}},

Your appointment at {{.BusinessName}} has been {{.Verb}}.

Service: {{.ServiceName}}
Stylist: {{.StylistName}}
Date: {{.Date}}
Time: {{.Time}}
{{- if .Notes}}
Notes: {{.Notes}}
{{- end}}

{{.BusinessName}}
`

const smsBody = `{{.BusinessName}}: your {{.ServiceName}} appointment on {{.ShortDate}} at {{.Time}} has been {{.Verb}}.`

// Templates renders email, SMS and in-app copy for lifecycle actions.
type Templates struct {
	html *htmltemplate.Template
	text *texttemplate.Template
	sms  *texttemplate.Template
	loc  *time.Location
}

func NewTemplates(loc *time.Location) *Templates {
	if loc == nil {
		loc = time.UTC
	}
	return &Templates{
		html: htmltemplate.Must(htmltemplate.New("email.html").Parse(htmlBody)),
		text: texttemplate.Must(texttemplate.New("email.txt").Parse(textBody)),
		sms:  texttemplate.Must(texttemplate.New("sms.txt").Parse(smsBody)),
		loc:  loc,
	}
}

// copyFor falls back to the confirmed copy for unknown actions.
func copyFor(action domain.NotificationAction) copyBlock {
	if c, ok := copyByAction[action]; ok {
		return c
	}
	return copyByAction[domain.ActionConfirmed]
}

func (t *Templates) data(a *domain.Appointment, action domain.NotificationAction) templateData {
	c := copyFor(action)
	d := templateData{
		CustomerName: fallbackCustomer,
		BusinessName: fallbackBusiness,
		ServiceName:  a.DisplayServiceName(),
		StylistName:  fallbackStylist,
		Notes:        strings.TrimSpace(a.Notes),
		Headline:     c.headline,
		Verb:         c.verb,
	}
	if a.Customer != nil && strings.TrimSpace(a.Customer.Name) != "" {
		d.CustomerName = a.Customer.Name
	}
	if a.Business != nil && strings.TrimSpace(a.Business.Name) != "" {
		d.BusinessName = a.Business.Name
	}
	if a.Stylist != nil && strings.TrimSpace(a.Stylist.Name) != "" {
		d.StylistName = a.Stylist.Name
	}
	if !a.AppointmentDate.IsZero() {
		local := a.AppointmentDate.In(t.loc)
		d.Date = local.Format(emailDateLayout)
		d.Time = local.Format(emailTimeLayout)
		d.ShortDate = local.Format(shortDateLayout)
	}
	return d
}

func (t *Templates) Email(a *domain.Appointment, action domain.NotificationAction) (Message, error) {
	d := t.data(a, action)
	var html, text bytes.Buffer
	if err := t.html.Execute(&html, d); err != nil {
		return Message{}, err
	}
	if err := t.text.Execute(&text, d); err != nil {
		return Message{}, err
	}
	msg := Message{
		Subject: copyFor(action).subject + " - " + d.BusinessName,
		Text:    text.String(),
		HTML:    html.String(),
	}
	if a.Customer != nil {
		msg.To = a.Customer.Email
	}
	return msg, nil
}

func (t *Templates) SMS(a *domain.Appointment, action domain.NotificationAction) (string, error) {
	var b bytes.Buffer
	if err := t.sms.Execute(&b, t.data(a, action)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InApp returns the title and message stored on the inbox row.
func (t *Templates) InApp(a *domain.Appointment, action domain.NotificationAction) (string, string) {
	title := "Appointment Update"
	if c, ok := copyByAction[action]; ok {
		title = c.title
	}
	service := a.DisplayServiceName()
	if service == "" || a.AppointmentDate.IsZero() {
		return title, "Your appointment has been " + string(action)
	}
	date := a.AppointmentDate.In(t.loc).Format(shortDateLayout)
	return title, "Your " + service + " appointment on " + date + " has been " + string(action)
}
