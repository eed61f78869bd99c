// Package mailer delivers transactional email (account confirmations and
// appointment reminders) through an external SMTP relay.  Delivery is
// best-effort: callers log failures and move on, except signup which
// surfaces a failed confirmation mail as a server error.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends a single email with both a plain-text and an HTML body.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string // also used as the From address
	Pass string
}

// NewSMTPMailer builds a Mailer from relay settings.
func NewSMTPMailer(host, port, user, pass string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass}
}

// Send composes a multipart/alternative message and hands it to the relay.
// The context is not threaded into net/smtp (it has no context API); the
// call is bounded by the relay's own dial/write timeouts.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, text, html string) error {
	if m.User == "" || m.Pass == "" {
		return fmt.Errorf("smtp relay not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	const boundary = "simple-boundary"
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.User)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, text)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, html)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, auth, m.User, []string{to}, []byte(b.String()))
}
