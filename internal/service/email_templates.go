package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"absign/internal/models"
)

// Rendering rules shared by all notification emails: missing optional
// fields render as a fixed placeholder instead of being omitted,
// currency renders with two decimals, and a specification map renders
// as "key: value" rows (section skipped entirely when empty).

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func specKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatAddress(a models.Address) string {
	var b strings.Builder
	b.WriteString(orNA(a.Address))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s %s\n", a.City, a.State, a.Zip))
	b.WriteString(a.Country)
	return b.String()
}

func specListHTML(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, k := range specKeys(specs) {
		b.WriteString(fmt.Sprintf("<li><strong>%s:</strong> %s</li>", k, specs[k]))
	}
	b.WriteString("</ul>")
	return b.String()
}

func specListText(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, k := range specKeys(specs) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, specs[k]))
	}
	return b.String()
}

func renderContactEmail(c *models.Contact) (subject, html, text string) {
	if c.IsQuoteRequest() {
		subject = fmt.Sprintf("Custom Quote Request from %s", orDefaultName(c.Name))
	} else {
		subject = fmt.Sprintf("Contact Form Submission from %s", orDefaultName(c.Name))
	}
	now := time.Now().Format("January 2, 2006 at 3:04 PM")

	var details strings.Builder
	if c.Company != "" && c.Company != "Not provided" {
		details.WriteString(fmt.Sprintf("<tr><td><strong>Company:</strong></td><td>%s</td></tr>", c.Company))
	}
	if c.Urgency != "" {
		details.WriteString(fmt.Sprintf("<tr><td><strong>Timeline:</strong></td><td>%s</td></tr>", c.Urgency))
	}
	if c.Budget != "" && c.Budget != "Not specified" {
		details.WriteString(fmt.Sprintf("<tr><td><strong>Budget:</strong></td><td>%s</td></tr>", c.Budget))
	}
	projectDetails := ""
	if details.Len() > 0 {
		projectDetails = fmt.Sprintf("<h3>Project Details</h3><table>%s</table>", details.String())
	}

	html = fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h2>%s</h2>
<p><strong>Date &amp; Time:</strong> %s</p>
<h3>Contact Information</h3>
<table>
<tr><td><strong>Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
<tr><td><strong>Phone:</strong></td><td>%s</td></tr>
<tr><td><strong>Subject:</strong></td><td>%s</td></tr>
</table>
%s
<h3>Message</h3>
<div style="white-space: pre-wrap;">%s</div>
<hr>
<p style="font-size: 12px; color: #666;">This is an automated notification from the AB Signs contact form. Reply directly to: %s</p>
</body></html>`,
		subject, now,
		orNA(c.Name), orNA(c.Email), orNotProvided(c.Phone), orNA(c.Subject),
		projectDetails,
		orDefaultMessage(c.Message), orNA(c.Email))

	text = fmt.Sprintf(`New Contact Form Submission

Date & Time: %s

Contact Information:
Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s
`, now, orNA(c.Name), orNA(c.Email), orNA(c.Phone), orNA(c.Subject), orDefaultMessage(c.Message))

	return subject, html, text
}

func orDefaultName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return name
}

func orDefaultMessage(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return "No message provided"
	}
	return msg
}

// renderOrderBusinessEmail is the manufacturing trigger: full line-item
// and specification breakdown for the business inbox.
func renderOrderBusinessEmail(o *models.Order) (subject, html, text string) {
	subject = fmt.Sprintf("New Order #%s - $%s", orNA(o.OrderID), orZero(o.Total))
	now := time.Now().Format("January 2, 2006 at 3:04 PM")

	var itemsHTML, specsHTML, itemsText strings.Builder
	for _, item := range o.CartItems() {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr><td><strong>%s</strong><br><span style="font-size: 12px; color: #666;">Quantity: %d</span></td><td style="text-align: right;">$%s</td></tr>`,
			item.Name, item.Quantity, item.DisplayPrice()))
		itemsText.WriteString(fmt.Sprintf("- %s x%d  $%s\n", item.Name, item.Quantity, item.DisplayPrice()))
		if len(item.Specifications) > 0 {
			specsHTML.WriteString(fmt.Sprintf("<h4>%s</h4>%s", item.Name, specListHTML(item.Specifications)))
			itemsText.WriteString(specListText(item.Specifications))
		}
	}
	specsSection := ""
	if specsHTML.Len() > 0 {
		specsSection = fmt.Sprintf("<h3>Product Specifications</h3>%s", specsHTML.String())
	}
	notesSection := ""
	if o.Notes != "" {
		notesSection = fmt.Sprintf("<h3>Order Notes</h3><div>%s</div>", o.Notes)
	}

	addr := o.ShippingAddr()
	html = fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>New Order Received!</h1>
<p>Order #%s</p>
<p><strong>Order Date:</strong> %s<br>
<strong>Order Total:</strong> $%s</p>
<h3>Customer Information</h3>
<table>
<tr><td><strong>Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
<tr><td><strong>Phone:</strong></td><td>%s</td></tr>
</table>
<h3>Shipping Address</h3>
<div style="white-space: pre-wrap;">%s</div>
<h3>Order Items</h3>
<table style="width: 100%%;">%s
<tr><td style="text-align: right;"><strong>Subtotal:</strong></td><td style="text-align: right;">$%s</td></tr>
<tr><td style="text-align: right;"><strong>Shipping:</strong></td><td style="text-align: right;">$%s</td></tr>
<tr><td style="text-align: right;"><strong>Tax:</strong></td><td style="text-align: right;">$%s</td></tr>
<tr><td style="text-align: right;"><strong>Total:</strong></td><td style="text-align: right;"><strong>$%s</strong></td></tr>
</table>
%s
%s
<hr>
<p style="font-size: 12px; color: #666;">This is an automated notification from the AB Signs checkout system. Reply to this email or contact the customer directly at %s</p>
</body></html>`,
		orNA(o.OrderID), now, orZero(o.Total),
		orNA(o.CustomerName), orNA(o.CustomerEmail), orNA(o.CustomerPhone),
		formatAddress(addr),
		itemsHTML.String(),
		orZero(o.Subtotal), orZero(o.Shipping), orZero(o.Tax), orZero(o.Total),
		specsSection, notesSection, orNA(o.CustomerEmail))

	text = fmt.Sprintf(`New Order #%s

Order Date: %s
Customer: %s (%s)
Phone: %s

Items:
%s
Subtotal: $%s
Shipping: $%s
Tax: $%s
Total: $%s
`, orNA(o.OrderID), now, orNA(o.CustomerName), orNA(o.CustomerEmail), orNA(o.CustomerPhone),
		itemsText.String(), orZero(o.Subtotal), orZero(o.Shipping), orZero(o.Tax), orZero(o.Total))

	return subject, html, text
}

// renderOrderCustomerEmail confirms receipt to the customer, with
// "what happens next" messaging.
func renderOrderCustomerEmail(o *models.Order) (subject, html, text string) {
	subject = fmt.Sprintf("Order Confirmation #%s - AB Signs", orNA(o.OrderID))

	var itemsHTML, itemsText strings.Builder
	for _, item := range o.CartItems() {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr><td>%s (x%d)</td><td style="text-align: right;">$%s</td></tr>`,
			item.Name, item.Quantity, item.DisplayPrice()))
		itemsText.WriteString(fmt.Sprintf("- %s x%d  $%s\n", item.Name, item.Quantity, item.DisplayPrice()))
	}

	html = fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>Thank you for your order, %s!</h1>
<p>We've received your order <strong>#%s</strong> and our team is getting started on it.</p>
<h3>Order Summary</h3>
<table style="width: 100%%;">%s
<tr><td style="text-align: right;"><strong>Total:</strong></td><td style="text-align: right;"><strong>$%s</strong></td></tr>
</table>
<h3>What happens next?</h3>
<ol>
<li>We review your order and specifications.</li>
<li>Your custom signs go into production (typically 3-5 business days).</li>
<li>We ship your order and email you the tracking number.</li>
</ol>
<p>Questions? Just reply to this email.</p>
<p>— The AB Signs Team</p>
</body></html>`,
		orNA(o.CustomerName), orNA(o.OrderID), itemsHTML.String(), orZero(o.Total))

	text = fmt.Sprintf(`Thank you for your order, %s!

We've received your order #%s.

Order Summary:
%s
Total: $%s

What happens next?
1. We review your order and specifications.
2. Your custom signs go into production (typically 3-5 business days).
3. We ship your order and email you the tracking number.

Questions? Just reply to this email.
- The AB Signs Team
`, orNA(o.CustomerName), orNA(o.OrderID), itemsText.String(), orZero(o.Total))

	return subject, html, text
}

// renderPaymentBusinessEmail is sent to the business inbox once a
// checkout session is confirmed paid.
func renderPaymentBusinessEmail(t *models.Transaction) (subject, html, text string) {
	subject = fmt.Sprintf("Payment Confirmed - Session %s - $%s %s", t.SessionID, money(t.Amount), strings.ToUpper(t.Currency))

	var itemsHTML, itemsText, specsHTML strings.Builder
	for _, item := range t.Items() {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr><td>%s (x%d)</td><td style="text-align: right;">$%s</td></tr>`,
			item.Name, item.Quantity, item.DisplayPrice()))
		itemsText.WriteString(fmt.Sprintf("- %s x%d  $%s\n", item.Name, item.Quantity, item.DisplayPrice()))
		if len(item.Specifications) > 0 {
			specsHTML.WriteString(fmt.Sprintf("<h4>%s</h4>%s", item.Name, specListHTML(item.Specifications)))
			itemsText.WriteString(specListText(item.Specifications))
		}
	}
	specsSection := ""
	if specsHTML.Len() > 0 {
		specsSection = fmt.Sprintf("<h3>Product Specifications</h3>%s", specsHTML.String())
	}

	html = fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>Payment Confirmed</h1>
<p><strong>Session:</strong> %s<br>
<strong>Amount:</strong> $%s %s<br>
<strong>Customer:</strong> %s (%s)</p>
<h3>Shipping Address</h3>
<div style="white-space: pre-wrap;">%s</div>
<h3>Order Items</h3>
<table style="width: 100%%;">%s</table>
%s
<p>This order is paid and ready for production.</p>
</body></html>`,
		t.SessionID, money(t.Amount), strings.ToUpper(t.Currency),
		orNA(t.CustomerName), orNA(t.CustomerEmail),
		formatAddress(t.ShippingAddr()),
		itemsHTML.String(), specsSection)

	text = fmt.Sprintf(`Payment Confirmed

Session: %s
Amount: $%s %s
Customer: %s (%s)

Items:
%s
This order is paid and ready for production.
`, t.SessionID, money(t.Amount), strings.ToUpper(t.Currency),
		orNA(t.CustomerName), orNA(t.CustomerEmail), itemsText.String())

	return subject, html, text
}

// renderPaymentCustomerEmail confirms the completed payment to the customer.
func renderPaymentCustomerEmail(t *models.Transaction) (subject, html, text string) {
	subject = "Payment Received - AB Signs"

	var itemsHTML, itemsText strings.Builder
	for _, item := range t.Items() {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr><td>%s (x%d)</td><td style="text-align: right;">$%s</td></tr>`,
			item.Name, item.Quantity, item.DisplayPrice()))
		itemsText.WriteString(fmt.Sprintf("- %s x%d  $%s\n", item.Name, item.Quantity, item.DisplayPrice()))
	}

	html = fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>Payment received, %s!</h1>
<p>Your payment of <strong>$%s %s</strong> has been confirmed.</p>
<h3>Order Summary</h3>
<table style="width: 100%%;">%s</table>
<h3>What happens next?</h3>
<ol>
<li>Your custom signs go into production (typically 3-5 business days).</li>
<li>We ship your order and email you the tracking number.</li>
</ol>
<p>Keep this email for your records. Reference: %s</p>
<p>— The AB Signs Team</p>
</body></html>`,
		orNA(t.CustomerName), money(t.Amount), strings.ToUpper(t.Currency),
		itemsHTML.String(), t.SessionID)

	text = fmt.Sprintf(`Payment received, %s!

Your payment of $%s %s has been confirmed.

Order Summary:
%s
Reference: %s
- The AB Signs Team
`, orNA(t.CustomerName), money(t.Amount), strings.ToUpper(t.Currency), itemsText.String(), t.SessionID)

	return subject, html, text
}

func orZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0.00"
	}
	return s
}
