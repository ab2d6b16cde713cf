package mailer

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers HTML mail (with optional plain-text alternative)
// over SMTP with STARTTLS. In dry-run mode the message is logged and
// reported as sent without touching the network.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
	dryRun   bool
	timeout  time.Duration
}

func New(host string, port int, from, password string, dryRun bool, timeout time.Duration) *SMTPMailer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		dryRun:   dryRun,
		timeout:  timeout,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody, textBody string) error {
	if m.dryRun {
		log.Printf("[mail dry-run] to=%s subject=%q (not sent)", to, subject)
		if textBody != "" {
			log.Printf("[mail dry-run] body:\n%s", textBody)
		}
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if textBody != "" {
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	} else {
		msg.SetBody("text/html", htmlBody)
	}

	dialer := gomail.NewDialer(m.host, m.port, m.from, m.password)

	// gomail has no deadline support; bound the send so a stuck SMTP
	// connection cannot hold a request open indefinitely.
	errc := make(chan error, 1)
	go func() {
		errc <- dialer.DialAndSend(msg)
	}()
	select {
	case err := <-errc:
		return err
	case <-time.After(m.timeout):
		return fmt.Errorf("smtp send to %s timed out after %s", to, m.timeout)
	}
}
