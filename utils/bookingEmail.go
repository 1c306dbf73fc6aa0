package utils

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"MediCare/models"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Mailer sends booking confirmations over SMTP.
type Mailer struct {
	from string
	dial func() (gomail.SendCloser, error)
}

// NewMailer returns a Mailer that dials the SMTP server for every message.
func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("SMTP_HOST is not set")
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &Mailer{from: from, dial: d.Dial}, nil
}

var bookingTemplate = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Appointment Confirmed</title>
	<style>
		body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
		.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px; }
		h1 { color: #333333; }
		td { color: #666666; padding: 4px 12px 4px 0; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Appointment Confirmed</h1>
		<p>Dear {{.Patient}},</p>
		<p>Your appointment has been booked.</p>
		<table>
			<tr><td>Doctor</td><td>{{.Doctor}}</td></tr>
			<tr><td>Date</td><td>{{.Date}}</td></tr>
			<tr><td>Time</td><td>{{.Time}}</td></tr>
			<tr><td>Fee</td><td>{{.Fee}}</td></tr>
		</table>
	</div>
</body>
</html>
`))

type bookingDetails struct {
	Patient string
	Doctor  string
	Date    string
	Time    string
	Fee     string
}

// BookingConfirmation builds the confirmation e-mail for a booked
// appointment. It fails when the patient has no e-mail address on file.
func (m *Mailer) BookingConfirmation(appt models.AppointmentView) (*gomail.Message, error) {
	if appt.Patient == nil || appt.Patient.User == nil || appt.Patient.User.Email == "" {
		return nil, fmt.Errorf("appointment %d has no patient e-mail", appt.ID)
	}

	details := bookingDetails{
		Patient: appt.Patient.User.Name,
		Doctor:  "your doctor",
		Date:    appt.AppointmentDate,
		Time:    appt.AppointmentTime,
	}
	if appt.Doctor != nil && appt.Doctor.User != nil {
		details.Doctor = appt.Doctor.User.Name
	}
	if appt.Bill != nil {
		details.Fee = fmt.Sprintf("$%.2f", appt.Bill.Amount)
	}

	var html strings.Builder
	if err := bookingTemplate.Execute(&html, details); err != nil {
		return nil, fmt.Errorf("failed to render booking e-mail: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", appt.Patient.User.Email)
	msg.SetHeader("Subject", "Appointment Confirmed")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your appointment with %s on %s at %s is confirmed. Fee: %s",
		details.Doctor, details.Date, details.Time, details.Fee,
	))
	msg.AddAlternative("text/html", html.String())
	return msg, nil
}

// AppointmentBooked e-mails the patient a booking confirmation.
func (m *Mailer) AppointmentBooked(ctx context.Context, appt models.AppointmentView) error {
	msg, err := m.BookingConfirmation(appt)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sender, err := m.dial()
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer sender.Close()

	if err := gomail.Send(sender, msg); err != nil {
		return fmt.Errorf("failed to send booking e-mail: %w", err)
	}
	return nil
}
