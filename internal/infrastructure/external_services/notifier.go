package external_services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.Name}},</p>
  {{template "body" .}}
  <p>The NutriCoach team</p>
</body>
</html>{{end}}`

var bodyTemplates = map[entity.NotificationKind]struct {
	subject string
	body    string
}{
	entity.NotificationAppointmentBooked: {
		subject: "New appointment request",
		body: `{{define "body"}}<p>An appointment was requested between {{.Appointment.UserName}} and {{.Appointment.SpecialistName}}.</p>
  <ul>
    <li>Date: {{.Date}}</li>
    <li>Time: {{.Appointment.StartTime}} - {{.Appointment.EndTime}} {{.Appointment.Timezone}}</li>
    <li>Type: {{.Appointment.Type}}</li>
  </ul>
  <p>It is pending confirmation by the specialist.</p>{{end}}`,
	},
	entity.NotificationAppointmentConfirmed: {
		subject: "Your appointment is confirmed",
		body: `{{define "body"}}<p>The appointment on {{.Date}} at {{.Appointment.StartTime}} is confirmed.</p>
  {{if .Appointment.MeetingLink}}<p>Join here: <a href="{{.Appointment.MeetingLink}}">{{.Appointment.MeetingLink}}</a></p>{{end}}{{end}}`,
	},
	entity.NotificationAppointmentRejected: {
		subject: "Your appointment request was declined",
		body: `{{define "body"}}<p>Your appointment request for {{.Date}} at {{.Appointment.StartTime}} was declined.</p>
  {{if .Appointment.AdminNotes}}<p>Note from the specialist: {{.Appointment.AdminNotes}}</p>{{end}}{{end}}`,
	},
	entity.NotificationAppointmentCancelled: {
		subject: "An appointment was cancelled",
		body:    `{{define "body"}}<p>{{.Appointment.UserName}} cancelled the appointment on {{.Date}} at {{.Appointment.StartTime}}.</p>{{end}}`,
	},
	entity.NotificationConsultationDecided: {
		subject: "Update on your consultation request",
		body: `{{define "body"}}{{if eq .Consultation.Status "assigned"}}<p>{{.Consultation.AssignedSpecialistName}} will be your specialist. You can now book an appointment.</p>
  {{else}}<p>Your consultation request was not accepted.</p>
  <p>{{.Consultation.RejectionReason}}</p>{{end}}{{end}}`,
	},
}

type notificationTemplate struct {
	subject string
	tmpl    *template.Template
}

type templateData struct {
	Name         string
	Date         string
	Appointment  *entity.Appointment
	Consultation *entity.ConsultationRequest
}

// EmailNotifier renders notifications as HTML mail.
type EmailNotifier struct {
	mail      contract.IEmailService
	templates map[entity.NotificationKind]notificationTemplate
}

var _ contract.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(mail contract.IEmailService) *EmailNotifier {
	templates := make(map[entity.NotificationKind]notificationTemplate, len(bodyTemplates))
	for kind, t := range bodyTemplates {
		tmpl := template.Must(template.New(string(kind)).Parse(layoutTemplate))
		template.Must(tmpl.Parse(t.body))
		templates[kind] = notificationTemplate{subject: t.subject, tmpl: tmpl}
	}
	return &EmailNotifier{mail: mail, templates: templates}
}

func (n *EmailNotifier) Notify(ctx context.Context, notification entity.Notification) error {
	subject, body, err := n.Render(notification)
	if err != nil {
		return err
	}
	return n.mail.SendEmail(ctx, notification.RecipientEmail, subject, body)
}

// Render returns the subject and HTML body of a notification.
func (n *EmailNotifier) Render(notification entity.Notification) (string, string, error) {
	t, ok := n.templates[notification.Kind]
	if !ok {
		return "", "", fmt.Errorf("no template for notification %q", notification.Kind)
	}
	data := templateData{
		Name:         notification.RecipientName,
		Appointment:  notification.Appointment,
		Consultation: notification.Consultation,
	}
	if notification.Appointment != nil {
		data.Date = notification.Appointment.Date.Format("Monday 2 January 2006")
	}
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", "", fmt.Errorf("failed to render %s notification: %w", notification.Kind, err)
	}
	return t.subject, buf.String(), nil
}
