package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the welcome email sent when a registration
// is approved.
type WelcomeEmailData struct {
	Email     string
	FirstName string
	Category  string
}

// EmailService defines the contract for sending domain-level emails. Callers
// invoke it fire-and-forget after the registration outcome is durable; a
// dispatch failure never rolls a registration back.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeEmailData) error
}
