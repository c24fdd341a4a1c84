package repositories

import (
	"testing"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupVerification(t *testing.T) (*VerificationRepository, *PropertyRepository, domain.VerificationRequest) {
	db := openDB(t)
	properties := NewPropertyRepository(db, testLog)
	repo := NewVerificationRepository(db, testLog)
	repo.now = ticker()
	properties.now = repo.now

	property, err := properties.Create(newProperty("Lekki duplex"))
	require.NoError(t, err)
	request, err := repo.Create(domain.VerificationRequest{
		PropertyID: property.ID,
		AgentID:    property.AgentID,
		Documents:  []string{"https://cdn.example.com/docs/c-of-o.pdf"},
	})
	require.NoError(t, err)
	return repo, properties, request
}

func TestVerificationRepository_Create(t *testing.T) {
	req := require.New(t)
	repo, _, request := setupVerification(t)
	req.Equal(domain.VerificationPending, request.Status)
	req.Nil(request.InspectorNotes)

	fetched, err := repo.Get(request.ID)
	req.NoError(err)
	req.Equal(request, fetched)
}

func TestVerificationRepository_Create_Rejections(t *testing.T) {
	repo, _, request := setupVerification(t)

	tests := []struct {
		name   string
		mutate func(r *domain.VerificationRequest)
		target error
	}{
		{"Unknown property", func(r *domain.VerificationRequest) { r.PropertyID = "missing" }, errors.ErrNotFound},
		{"No documents", func(r *domain.VerificationRequest) { r.Documents = []string{} }, errors.ErrValidation},
		{"Already decided", func(r *domain.VerificationRequest) { r.Status = domain.VerificationApproved }, errors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := request
			tt.mutate(&candidate)
			_, err := repo.Create(candidate)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestVerificationRepository_Approve_Verifies_Property(t *testing.T) {
	req := require.New(t)
	repo, properties, request := setupVerification(t)

	approved, err := repo.UpdateStatus(request.ID, domain.VerificationApproved, lo.ToPtr("Title documents checked on site"))
	req.NoError(err)
	req.Equal(domain.VerificationApproved, approved.Status)
	req.Equal("Title documents checked on site", *approved.InspectorNotes)

	property, err := properties.Get(request.PropertyID)
	req.NoError(err)
	req.True(property.IsVerified)
	req.Equal(approved.UpdatedAt, property.UpdatedAt)

	_, err = repo.UpdateStatus(request.ID, domain.VerificationRejected, nil)
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func TestVerificationRepository_Reject_Leaves_Property(t *testing.T) {
	req := require.New(t)
	repo, properties, request := setupVerification(t)

	rejected, err := repo.UpdateStatus(request.ID, domain.VerificationRejected, nil)
	req.NoError(err)
	req.Equal(domain.VerificationRejected, rejected.Status)
	req.Nil(rejected.InspectorNotes)

	property, err := properties.Get(request.PropertyID)
	req.NoError(err)
	req.False(property.IsVerified)
}

func TestVerificationRepository_Approve_Rolls_Back_On_Missing_Property(t *testing.T) {
	req := require.New(t)
	repo, properties, request := setupVerification(t)

	err := properties.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(propertyKey(request.PropertyID)))
	})
	req.NoError(err)

	_, err = repo.UpdateStatus(request.ID, domain.VerificationApproved, nil)
	req.ErrorIs(err, errors.ErrNotFound)

	fetched, err := repo.Get(request.ID)
	req.NoError(err)
	req.Equal(domain.VerificationPending, fetched.Status)
}
