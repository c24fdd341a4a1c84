//go:generate go run go.uber.org/mock/mockgen -source=verification.go -destination=../mocks/mock_verification_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"time"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IVerificationRepository interface {
	Create(request domain.VerificationRequest) (domain.VerificationRequest, error)
	Get(id string) (domain.VerificationRequest, error)
	UpdateStatus(id string, to domain.VerificationStatus, notes *string) (domain.VerificationRequest, error)
}

type VerificationRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewVerificationRepository(db *badger.DB, log *slog.Logger) *VerificationRepository {
	return &VerificationRepository{db: db, log: log, now: time.Now}
}

// Create files a pending request. The property must already exist.
func (r *VerificationRepository) Create(request domain.VerificationRequest) (domain.VerificationRequest, error) {
	if request.Status == "" {
		request.Status = domain.VerificationPending
	}
	if request.Status != domain.VerificationPending {
		return domain.VerificationRequest{}, errors.NewValidationError("status", "must be pending on creation")
	}
	request.ID = uuid.New().String()
	request.CreatedAt = domain.FormatTimestamp(r.now())
	request.UpdatedAt = request.CreatedAt

	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := get[domain.Property](txn, propertyKey(request.PropertyID)); err != nil {
			return err
		}
		return put(txn, verificationKey(request.ID), request)
	})
	if err != nil {
		return domain.VerificationRequest{}, err
	}
	r.log.Debug("Verification requested", "id", request.ID, "property", request.PropertyID)
	return request, nil
}

func (r *VerificationRepository) Get(id string) (domain.VerificationRequest, error) {
	var request domain.VerificationRequest
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		request, err = get[domain.VerificationRequest](txn, verificationKey(id))
		return err
	})
	return request, err
}

// UpdateStatus records the inspector's decision. Approval also flags the
// property as verified in the same transaction.
func (r *VerificationRepository) UpdateStatus(id string, to domain.VerificationStatus, notes *string) (domain.VerificationRequest, error) {
	var request domain.VerificationRequest
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		request, err = get[domain.VerificationRequest](txn, verificationKey(id))
		if err != nil {
			return err
		}
		at := r.now()
		if err = request.TransitionTo(to, notes, at); err != nil {
			return err
		}
		if err = put(txn, verificationKey(id), request); err != nil {
			return err
		}
		if request.Status != domain.VerificationApproved {
			return nil
		}
		property, err := get[domain.Property](txn, propertyKey(request.PropertyID))
		if err != nil {
			return err
		}
		property.IsVerified = true
		property.UpdatedAt = domain.FormatTimestamp(at)
		return put(txn, propertyKey(property.ID), property)
	})
	if err != nil {
		return domain.VerificationRequest{}, err
	}
	r.log.Info("Verification decided", "id", id, "status", request.Status)
	return request, nil
}

func verificationKey(id string) string {
	return "verification:" + id
}
