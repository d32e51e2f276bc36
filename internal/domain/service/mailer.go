package service

import "context"

// Attachment is an inline file embedded in an outgoing email.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// MailMessage is a rendered email ready for transport.
type MailMessage struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers rendered emails.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
