package domain

import (
	"time"

	"estate-hub/errors"

	"github.com/samber/lo"
)

// VerificationStatus moves pending -> approved or pending -> rejected.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

var verificationStatuses = []VerificationStatus{VerificationPending, VerificationApproved, VerificationRejected}

func (s VerificationStatus) IsValid() bool     { return lo.Contains(verificationStatuses, s) }
func (s VerificationStatus) allowed() []string { return literals(verificationStatuses) }

func (s VerificationStatus) IsTerminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}

func (s VerificationStatus) Transition(to VerificationStatus) (VerificationStatus, error) {
	if s == VerificationPending && to.IsTerminal() {
		return to, nil
	}
	return s, &errors.InvalidTransition{From: string(s), To: string(to)}
}

func ParseVerificationStatus(s string) (VerificationStatus, error) {
	return parseEnum("status", s, verificationStatuses)
}

// VerificationRequest asks an inspector to verify a listed property.
type VerificationRequest struct {
	ID             string             `json:"id" validate:"required"`
	PropertyID     string             `json:"propertyId" validate:"required"`
	AgentID        string             `json:"agentId" validate:"required"`
	Status         VerificationStatus `json:"status" validate:"enum"`
	Documents      []string           `json:"documents" validate:"required,min=1,dive,required"`
	InspectorNotes *string            `json:"inspectorNotes,omitempty"`
	CreatedAt      string             `json:"createdAt" validate:"utciso8601"`
	UpdatedAt      string             `json:"updatedAt" validate:"utciso8601"`
}

func (v VerificationRequest) Validate() error {
	return checkStruct(v)
}

func (VerificationRequest) wireFields() []field {
	return []field{
		req("id"), req("propertyId"), req("agentId"), req("status"),
		each("documents"), opt("inspectorNotes"), req("createdAt"), req("updatedAt"),
	}
}

// TransitionTo applies the decision, recording the inspector notes when given.
func (v *VerificationRequest) TransitionTo(to VerificationStatus, notes *string, at time.Time) error {
	next, err := v.Status.Transition(to)
	if err != nil {
		return err
	}
	v.Status = next
	if notes != nil {
		v.InspectorNotes = notes
	}
	v.UpdatedAt = FormatTimestamp(at)
	return nil
}
