package metrics

import (
	"context"

	"github.com/weblibrary/library-system/internal/core/ports"
)

// InstrumentedMailer decorates a ports.Mailer with the MailsTotal counter.
// Delivery errors pass through unchanged.
type InstrumentedMailer struct {
	next ports.Mailer
}

func NewInstrumentedMailer(next ports.Mailer) *InstrumentedMailer {
	return &InstrumentedMailer{next: next}
}

func (m *InstrumentedMailer) SendActivation(ctx context.Context, to, userID, code string) error {
	err := m.next.SendActivation(ctx, to, userID, code)
	MailsTotal.WithLabelValues("activation", mailResult(err)).Inc()
	return err
}

func (m *InstrumentedMailer) SendPasswordReset(ctx context.Context, to, userID, code string) error {
	err := m.next.SendPasswordReset(ctx, to, userID, code)
	MailsTotal.WithLabelValues("reset", mailResult(err)).Inc()
	return err
}

func mailResult(err error) string {
	if err != nil {
		return "failure"
	}
	return "sent"
}
