// internal/application/usecase/inquiry_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	inqdom "sprout/internal/domain/inquiry"
	"sprout/internal/pkg/clock"
)

var (
	ErrInquiryInvalidArgument = errors.New("inquiry_usecase: invalid argument")
	ErrInquiryMailerNil       = errors.New("inquiry_usecase: mailer is nil")
)

// InquiryUsecase handles help-page contact submissions.
// Mail delivery failure is non-fatal: the handler logs it and the
// storefront keeps serving.
type InquiryUsecase struct {
	mailer inqdom.Mailer
	clock  clock.Clock
}

func NewInquiryUsecase(mailer inqdom.Mailer, clk clock.Clock) *InquiryUsecase {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &InquiryUsecase{mailer: mailer, clock: clk}
}

// Submit validates the submission and mails it to the nursery inbox.
func (uc *InquiryUsecase) Submit(ctx context.Context, email, name, subject, body string) (*inqdom.Inquiry, error) {
	if uc.mailer == nil {
		return nil, ErrInquiryMailerNil
	}

	inq, err := inqdom.New(uuid.NewString(), email, name, subject, body, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInquiryInvalidArgument, err)
	}

	if err := uc.mailer.Send(ctx, inq); err != nil {
		return nil, fmt.Errorf("inquiry_usecase: send: %w", err)
	}
	return inq, nil
}
