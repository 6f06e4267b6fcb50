// internal/adapters/out/mail/inquiry_mailer_sg.go
package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	inqdom "sprout/internal/domain/inquiry"
)

// InquiryMailerSG delivers help-page inquiries to the nursery inbox
// through SendGrid. Implements inquiry.Mailer.
type InquiryMailerSG struct {
	apiKey string
	from   string
	inbox  string
}

func NewInquiryMailerSG(apiKey, from, inbox string) *InquiryMailerSG {
	return &InquiryMailerSG{
		apiKey: strings.TrimSpace(apiKey),
		from:   strings.TrimSpace(from),
		inbox:  strings.TrimSpace(inbox),
	}
}

// Send mails one inquiry. The visitor's address goes into reply-to so
// staff can answer directly.
func (m *InquiryMailerSG) Send(ctx context.Context, inq *inqdom.Inquiry) error {
	if m.apiKey == "" {
		return fmt.Errorf("inquiry_mailer_sg: api key is empty")
	}
	if m.from == "" || m.inbox == "" {
		return fmt.Errorf("inquiry_mailer_sg: from/inbox address is empty")
	}
	if inq == nil {
		return fmt.Errorf("inquiry_mailer_sg: inquiry is nil")
	}

	subject := strings.TrimSpace(inq.Subject)
	if subject == "" {
		subject = "Storefront inquiry"
	}
	subject = "[Sprout] " + subject

	body := fmt.Sprintf(
		"Inquiry %s\nFrom: %s <%s>\nReceived: %s\n\n%s\n",
		inq.ID,
		inq.Name,
		inq.Email,
		inq.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		inq.Body,
	)

	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail("Sprout Storefront", m.from),
		subject,
		sgmail.NewEmail("", m.inbox),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)
	msg.SetReplyTo(sgmail.NewEmail(inq.Name, inq.Email))

	resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
	if err != nil {
		return fmt.Errorf("inquiry_mailer_sg: send: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d body=%s", resp.StatusCode, resp.Body)
		return fmt.Errorf("inquiry_mailer_sg: send failed: status=%d", resp.StatusCode)
	}

	log.Printf("[sendgrid] inquiry mailed id=%s status=%d", inq.ID, resp.StatusCode)
	return nil
}
