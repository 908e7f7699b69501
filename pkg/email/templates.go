package email

import (
	"fmt"
	"time"
)

// IntakeLinkEmailData contains the data needed for intake link emails.
type IntakeLinkEmailData struct {
	PatientFirstName string
	DoctorName       string
	PracticeName     string
	IntakeURL        string
	ExpiresAt        time.Time
	AppName          string
}

// BuildIntakeLinkEmail creates the message sent to a patient when their
// doctor issues an intake link.
func BuildIntakeLinkEmail(data IntakeLinkEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "IntakeAI"
	}

	firstName := data.PatientFirstName
	if firstName == "" {
		firstName = "there"
	}

	from := data.DoctorName
	if data.PracticeName != "" {
		from = fmt.Sprintf("%s (%s)", data.DoctorName, data.PracticeName)
	}

	subject := fmt.Sprintf("%s has sent you a pre-visit intake form", data.DoctorName)

	expires := data.ExpiresAt.Format("Monday, January 2, 2006")

	textBody := fmt.Sprintf(`Hi %s,

%s has asked you to fill out a short intake form before your visit.

Complete it here:
%s

The link works once and expires on %s.

If you weren't expecting this, you can ignore this email.

- %s`, firstName, from, data.IntakeURL, expires, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937; max-width: 560px; margin: 0 auto; padding: 24px;">
  <p>Hi %s,</p>
  <p><strong>%s</strong> has asked you to fill out a short intake form before your visit.</p>
  <p style="margin: 28px 0;">
    <a href="%s" style="background: #2563eb; color: #ffffff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Complete your intake form</a>
  </p>
  <p style="color: #6b7280; font-size: 14px;">The link works once and expires on %s.</p>
  <p style="color: #6b7280; font-size: 14px;">If you weren't expecting this, you can ignore this email.</p>
  <p style="color: #9ca3af; font-size: 12px;">%s</p>
</body>
</html>`, firstName, from, data.IntakeURL, expires, appName)

	return Message{
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
