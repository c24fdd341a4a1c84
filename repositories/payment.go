//go:generate go run go.uber.org/mock/mockgen -source=payment.go -destination=../mocks/mock_payment_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"time"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IPaymentRepository interface {
	Create(payment domain.Payment) (domain.Payment, error)
	Get(id string) (domain.Payment, error)
	UpdateStatus(id string, to domain.PaymentStatus) (domain.Payment, error)
}

type PaymentRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewPaymentRepository(db *badger.DB, log *slog.Logger) *PaymentRepository {
	return &PaymentRepository{db: db, log: log, now: time.Now}
}

// Create records a new payment. Payments always start pending.
func (r *PaymentRepository) Create(payment domain.Payment) (domain.Payment, error) {
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	if payment.Status != domain.PaymentPending {
		return domain.Payment{}, errors.NewValidationError("status", "must be pending on creation")
	}
	payment.ID = uuid.New().String()
	payment.CreatedAt = domain.FormatTimestamp(r.now())
	payment.UpdatedAt = payment.CreatedAt

	err := r.db.Update(func(txn *badger.Txn) error {
		return put(txn, paymentKey(payment.ID), payment)
	})
	if err != nil {
		return domain.Payment{}, err
	}
	r.log.Debug("Payment stored", "id", payment.ID, "amount", payment.Amount, "currency", payment.Currency)
	return payment, nil
}

func (r *PaymentRepository) Get(id string) (domain.Payment, error) {
	var payment domain.Payment
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		payment, err = get[domain.Payment](txn, paymentKey(id))
		return err
	})
	return payment, err
}

// UpdateStatus reads, transitions and writes back the payment inside one
// transaction, so two concurrent settlements cannot both succeed.
func (r *PaymentRepository) UpdateStatus(id string, to domain.PaymentStatus) (domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		payment, err = get[domain.Payment](txn, paymentKey(id))
		if err != nil {
			return err
		}
		if err = payment.TransitionTo(to, r.now()); err != nil {
			return err
		}
		return put(txn, paymentKey(id), payment)
	})
	if err != nil {
		return domain.Payment{}, err
	}
	r.log.Info("Payment settled", "id", id, "status", payment.Status)
	return payment, nil
}

func paymentKey(id string) string {
	return "payment:" + id
}
