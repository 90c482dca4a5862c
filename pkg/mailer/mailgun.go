// Package mailer sends order confirmation emails through Mailgun, or logs
// them when Mailgun is not configured.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

const confirmationSubject = "Bistro Boss Order Confirmation"

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<div>
<h1>Thanks for your order</h1>
<p>Your transaction Id: {{.TransactionID}}</p>
<a href="{{.ShopURL}}">Continue Shopping!</a>
</div>`))

// sender is the part of mailgun.Mailgun used here.
type sender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

type MailgunMailer struct {
	mg      sender
	from    string
	shopURL string
	log     *zap.Logger
}

func NewMailgunMailer(domain, apiKey, from, shopURL string, log *zap.Logger) *MailgunMailer {
	return &MailgunMailer{
		mg:      mailgun.NewMailgun(domain, apiKey),
		from:    from,
		shopURL: shopURL,
		log:     log.With(zap.String("adapter", "mailgun")),
	}
}

// SendOrderConfirmation mails the transaction id of a recorded payment to `to`.
func (m *MailgunMailer) SendOrderConfirmation(ctx context.Context, to, transactionID string) error {
	body, err := renderConfirmation(transactionID, m.shopURL)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Thanks for your order. Your transaction Id: %s", transactionID)
	msg := m.mg.NewMessage(m.from, confirmationSubject, text, to)
	msg.SetHtml(body)

	resp, id, err := m.mg.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send confirmation for %s: %w", transactionID, err)
	}

	m.log.Info("Order confirmation sent",
		zap.String("message_id", id),
		zap.String("response", resp),
		zap.String("transaction_id", transactionID),
	)
	return nil
}

func renderConfirmation(transactionID, shopURL string) (string, error) {
	var buf bytes.Buffer
	err := confirmationHTML.Execute(&buf, struct {
		TransactionID string
		ShopURL       string
	}{transactionID, shopURL})
	if err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
