package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietbank/banking-api/internal/models"
)

// Notifier composes customer email and SMS messages around the event
// sink. Email and SMS delivery are stubs that write to the log; the
// sink carries the machine-readable settlement event.
type Notifier struct {
	sink   Sink
	logger *slog.Logger
}

// NewNotifier creates a Notifier over the given sink
func NewNotifier(sink Sink, logger *slog.Logger) *Notifier {
	return &Notifier{sink: sink, logger: logger}
}

// PaymentRequestCreated tells the customer a new payment request awaits them
func (n *Notifier) PaymentRequestCreated(ctx context.Context, account *models.Account, payment *models.PaymentRequest) {
	n.publish(ctx, payment, OutcomeCreated, "")
	n.sendEmail(account.Email,
		"New payment request",
		fmt.Sprintf("Hello %s, you have a new payment request of %s %s awaiting payment. Description: %s",
			account.CustomerName, payment.Amount, payment.Currency, payment.Description))
	n.sendSMS(account.PhoneNumber,
		fmt.Sprintf("New payment request of %s %s. ID: %s", payment.Amount, payment.Currency, payment.ID))
}

// PaymentPaid tells the customer their payment settled
func (n *Notifier) PaymentPaid(ctx context.Context, account *models.Account, payment *models.PaymentRequest) {
	n.publish(ctx, payment, OutcomePaid, "")
	n.sendEmail(account.Email,
		"Payment confirmed",
		fmt.Sprintf("Hello %s, your payment of %s %s was confirmed.",
			account.CustomerName, payment.Amount, payment.Currency))
	n.sendSMS(account.PhoneNumber,
		fmt.Sprintf("Payment of %s %s confirmed. ID: %s", payment.Amount, payment.Currency, payment.ID))
}

// PaymentFailed tells the customer their payment did not settle
func (n *Notifier) PaymentFailed(ctx context.Context, account *models.Account, payment *models.PaymentRequest, reason string) {
	n.publish(ctx, payment, OutcomeFailed, reason)
	n.sendEmail(account.Email,
		"Payment failed",
		fmt.Sprintf("Hello %s, your payment of %s %s failed. Reason: %s",
			account.CustomerName, payment.Amount, payment.Currency, reason))
	n.sendSMS(account.PhoneNumber,
		fmt.Sprintf("Payment of %s %s failed. Reason: %s", payment.Amount, payment.Currency, reason))
}

func (n *Notifier) publish(ctx context.Context, payment *models.PaymentRequest, outcome Outcome, reason string) {
	event := PaymentEvent{
		PaymentID: payment.ID,
		AccountID: payment.AccountID,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Outcome:   outcome,
		Reason:    reason,
	}
	if err := n.sink.Publish(ctx, event); err != nil {
		n.logger.Error("failed to publish payment event",
			"payment_id", payment.ID,
			"outcome", outcome,
			"error", err,
		)
	}
}

func (n *Notifier) sendEmail(to, subject, body string) {
	// Delivery stub: a real mailer would go here.
	n.logger.Info("email sent", "to", to, "subject", subject, "body", body)
}

func (n *Notifier) sendSMS(to, message string) {
	// Delivery stub: a real SMS gateway would go here.
	n.logger.Info("sms sent", "to", to, "message", message)
}
