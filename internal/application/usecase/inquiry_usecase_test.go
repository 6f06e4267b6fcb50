// internal/application/usecase/inquiry_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inqdom "sprout/internal/domain/inquiry"
	"sprout/internal/pkg/clock"
)

type fakeMailer struct {
	sent []*inqdom.Inquiry
	fail error
}

func (m *fakeMailer) Send(ctx context.Context, inq *inqdom.Inquiry) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, inq)
	return nil
}

func TestInquiryUsecase_Submit(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	t.Run("valid submission is mailed", func(t *testing.T) {
		m := &fakeMailer{}
		uc := NewInquiryUsecase(m, clock.NewFake(now))

		inq, err := uc.Submit(context.Background(), "visitor@example.com", "Ada", "Repotting", "How big a pot?")
		require.NoError(t, err)
		require.Len(t, m.sent, 1)
		assert.NotEmpty(t, inq.ID)
		assert.Equal(t, "visitor@example.com", inq.Email)
		assert.Equal(t, now, inq.CreatedAt)
	})

	t.Run("missing email or body is invalid", func(t *testing.T) {
		m := &fakeMailer{}
		uc := NewInquiryUsecase(m, clock.NewFake(now))

		_, err := uc.Submit(context.Background(), "", "Ada", "s", "body")
		assert.ErrorIs(t, err, ErrInquiryInvalidArgument)

		_, err = uc.Submit(context.Background(), "visitor@example.com", "Ada", "s", "   ")
		assert.ErrorIs(t, err, ErrInquiryInvalidArgument)

		_, err = uc.Submit(context.Background(), "not-an-address", "Ada", "s", "body")
		assert.ErrorIs(t, err, ErrInquiryInvalidArgument)

		assert.Empty(t, m.sent)
	})

	t.Run("mailer failure is wrapped, not swallowed", func(t *testing.T) {
		m := &fakeMailer{fail: errors.New("smtp down")}
		uc := NewInquiryUsecase(m, clock.NewFake(now))

		_, err := uc.Submit(context.Background(), "visitor@example.com", "", "", "hi")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInquiryInvalidArgument)
	})

	t.Run("nil mailer", func(t *testing.T) {
		uc := NewInquiryUsecase(nil, nil)
		_, err := uc.Submit(context.Background(), "visitor@example.com", "", "", "hi")
		assert.ErrorIs(t, err, ErrInquiryMailerNil)
	})
}
