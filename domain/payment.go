package domain

import (
	"time"

	"estate-hub/errors"

	"github.com/samber/lo"
)

// PaymentStatus moves pending -> completed or pending -> failed.
// Both outcomes are terminal.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

var paymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed}

func (s PaymentStatus) IsValid() bool     { return lo.Contains(paymentStatuses, s) }
func (s PaymentStatus) allowed() []string { return literals(paymentStatuses) }

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

// Transition returns the status after moving to `to`, or an
// InvalidTransition when the move is not allowed from s.
func (s PaymentStatus) Transition(to PaymentStatus) (PaymentStatus, error) {
	if s == PaymentPending && to.IsTerminal() {
		return to, nil
	}
	return s, &errors.InvalidTransition{From: string(s), To: string(to)}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	return parseEnum("status", s, paymentStatuses)
}

type Payment struct {
	ID            string        `json:"id" validate:"required"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Currency      Currency      `json:"currency" validate:"enum"`
	Status        PaymentStatus `json:"status" validate:"enum"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"enum"`
	PropertyID    *string       `json:"propertyId,omitempty" validate:"omitnil,min=1"`
	UserID        string        `json:"userId" validate:"required"`
	CreatedAt     string        `json:"createdAt" validate:"utciso8601"`
	UpdatedAt     string        `json:"updatedAt" validate:"utciso8601"`
}

func (p Payment) Validate() error {
	return checkStruct(p)
}

func (Payment) wireFields() []field {
	return keys("id", "amount", "currency", "status", "paymentMethod", "userId", "createdAt", "updatedAt")
}

// TransitionTo applies the status change and stamps UpdatedAt.
// On failure the payment is left untouched.
func (p *Payment) TransitionTo(to PaymentStatus, at time.Time) error {
	next, err := p.Status.Transition(to)
	if err != nil {
		return err
	}
	p.Status = next
	p.UpdatedAt = FormatTimestamp(at)
	return nil
}
