package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/internal/domain"
)

func sampleAppointment() *domain.Appointment {
	stylist := "ST1"
	return &domain.Appointment{
		ID:              "A1",
		BusinessID:      "B1",
		CustomerID:      "C1",
		ServiceID:       "S1",
		ServiceName:     "Haircut",
		StylistID:       &stylist,
		AppointmentDate: time.Date(2026, 3, 11, 2, 30, 0, 0, time.UTC),
		Status:          domain.AppointmentConfirmed,
		Customer:        &domain.Customer{ID: "C1", Name: "Ann", Email: "ann@example.com", Phone: "+15550100"},
		Service:         &domain.SalonService{ID: "S1", Name: "Haircut"},
		Stylist:         &domain.Stylist{ID: "ST1", Name: "Mia"},
		Business:        &domain.Business{ID: "B1", Name: "Glow"},
	}
}

func TestTemplates_EmailSubjectPerAction(t *testing.T) {
	tpl := NewTemplates(time.UTC)
	a := sampleAppointment()

	cases := map[domain.NotificationAction]string{
		domain.ActionConfirmed: "Appointment Confirmed - Glow",
		domain.ActionCancelled: "Appointment Cancelled - Glow",
		domain.ActionCompleted: "Appointment Completed - Glow",
		"rescheduled":          "Appointment Confirmed - Glow",
	}
	for action, want := range cases {
		msg, err := tpl.Email(a, action)
		require.NoError(t, err)
		assert.Equal(t, want, msg.Subject, action)
		assert.Equal(t, "ann@example.com", msg.To)
	}
}

func TestTemplates_EmailBodyFallbacks(t *testing.T) {
	tpl := NewTemplates(time.UTC)
	a := sampleAppointment()
	a.Customer.Name = ""
	a.Business = nil
	a.Stylist = nil

	msg, err := tpl.Email(a, domain.ActionConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "Appointment Confirmed - Our Salon", msg.Subject)
	for _, body := range []string{msg.Text, msg.HTML} {
		assert.Contains(t, body, "Valued Customer")
		assert.Contains(t, body, "Not assigned")
		assert.Contains(t, body, "Wednesday, March 11, 2026")
		assert.Contains(t, body, "02:30 AM")
	}
}

func TestTemplates_HTMLEscapesCustomerInput(t *testing.T) {
	tpl := NewTemplates(time.UTC)
	a := sampleAppointment()
	a.Notes = "<script>alert(1)</script>"

	msg, err := tpl.Email(a, domain.ActionConfirmed)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.Text, "<script>")
}

func TestTemplates_InAppUsesLocalDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tpl := NewTemplates(ny)

	title, message := tpl.InApp(sampleAppointment(), domain.ActionConfirmed)
	assert.Equal(t, "Appointment Confirmed", title)
	// 02:30 UTC on the 11th is still the 10th in New York.
	assert.Equal(t, "Your Haircut appointment on 3/10/2026 has been confirmed", message)
}

func TestTemplates_InAppFallbacks(t *testing.T) {
	tpl := NewTemplates(time.UTC)
	a := sampleAppointment()
	a.Service = nil
	a.ServiceName = ""

	title, message := tpl.InApp(a, "rescheduled")
	assert.Equal(t, "Appointment Update", title)
	assert.Equal(t, "Your appointment has been rescheduled", message)

	title, _ = tpl.InApp(a, domain.ActionCompleted)
	assert.Equal(t, "Appointment Completed", title)
}

func TestTemplates_SMS(t *testing.T) {
	body, err := NewTemplates(time.UTC).SMS(sampleAppointment(), domain.ActionCancelled)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(body, "Glow: your Haircut appointment on 3/11/2026"))
	assert.True(t, strings.HasSuffix(body, "has been cancelled."))
}
