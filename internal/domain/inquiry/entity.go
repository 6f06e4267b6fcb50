// internal/domain/inquiry/entity.go
package inquiry

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInquiry = errors.New("inquiry: invalid")
)

// Inquiry is one contact-form submission from the help page.
type Inquiry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// New validates and builds an Inquiry. Email and body are required;
// name and subject may be empty.
func New(id, email, name, subject, body string, now time.Time) (*Inquiry, error) {
	iid := strings.TrimSpace(id)
	em := strings.TrimSpace(email)
	bd := strings.TrimSpace(body)
	if iid == "" || em == "" || bd == "" {
		return nil, ErrInvalidInquiry
	}
	// cheap shape check; the mail provider does the real validation
	if !strings.Contains(em, "@") {
		return nil, ErrInvalidInquiry
	}
	return &Inquiry{
		ID:        iid,
		Email:     em,
		Name:      strings.TrimSpace(name),
		Subject:   strings.TrimSpace(subject),
		Body:      bd,
		CreatedAt: now,
	}, nil
}

// Mailer delivers an inquiry to the nursery inbox.
// Delivery failure is non-fatal for the storefront: callers log and
// keep serving.
type Mailer interface {
	Send(ctx context.Context, inq *Inquiry) error
}
