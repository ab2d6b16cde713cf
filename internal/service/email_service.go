package service

import (
	"log"

	"absign/internal/models"
)

// MailTransport is the delivery boundary. pkg/mailer implements it over
// SMTP with an explicit dry-run mode; tests substitute a fake.
type MailTransport interface {
	Send(to, subject, htmlBody, textBody string) error
}

// EmailService renders and delivers notification emails. Every send is
// best-effort: failures are logged and reported as a boolean, never
// propagated, because the record write has already happened and
// checkout must not be blocked by a notification failure.
type EmailService struct {
	mail              MailTransport
	notificationEmail string
}

func NewEmailService(mail MailTransport, notificationEmail string) *EmailService {
	return &EmailService{mail: mail, notificationEmail: notificationEmail}
}

func (s *EmailService) send(kind, to, subject, html, text string) bool {
	if err := s.mail.Send(to, subject, html, text); err != nil {
		log.Printf("[email] %s to %s failed: %v", kind, to, err)
		return false
	}
	log.Printf("[email] %s sent to %s", kind, to)
	return true
}

// SendContactNotification emails the business inbox about a contact or
// quote-request submission.
func (s *EmailService) SendContactNotification(c *models.Contact) bool {
	subject, html, text := renderContactEmail(c)
	return s.send("contact notification", s.notificationEmail, subject, html, text)
}

// SendNewOrderNotification emails the business inbox when a customer
// proceeds to checkout (pre-payment, for visibility into abandoned carts).
func (s *EmailService) SendNewOrderNotification(o *models.Order) bool {
	subject, html, text := renderOrderBusinessEmail(o)
	return s.send("order notification", s.notificationEmail, subject, html, text)
}

// SendCustomerConfirmation emails the customer that their order was received.
func (s *EmailService) SendCustomerConfirmation(o *models.Order) bool {
	subject, html, text := renderOrderCustomerEmail(o)
	return s.send("customer confirmation", o.CustomerEmail, subject, html, text)
}

// SendPaymentCompleteNotifications fires the dual notification for a
// confirmed payment: one email to the business inbox (manufacturing
// trigger) and one to the customer. The two sends are independent; a
// failure in one never suppresses the other.
func (s *EmailService) SendPaymentCompleteNotifications(t *models.Transaction) (businessOK, customerOK bool) {
	subject, html, text := renderPaymentBusinessEmail(t)
	businessOK = s.send("payment business notification", s.notificationEmail, subject, html, text)

	if t.CustomerEmail == "" {
		log.Printf("[email] no customer email on session %s, skipping confirmation", t.SessionID)
		return businessOK, false
	}
	subject, html, text = renderPaymentCustomerEmail(t)
	customerOK = s.send("payment customer confirmation", t.CustomerEmail, subject, html, text)
	return businessOK, customerOK
}
