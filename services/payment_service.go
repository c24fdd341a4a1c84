package services

import (
	"log/slog"

	"estate-hub/domain"
	"estate-hub/repositories"
)

type IPaymentService interface {
	UpdateStatus(id, status string) []byte
}

type PaymentService struct {
	log        *slog.Logger
	repository repositories.IPaymentRepository
}

func NewPaymentService(log *slog.Logger, repository repositories.IPaymentRepository) *PaymentService {
	return &PaymentService{log: log, repository: repository}
}

// UpdateStatus settles a pending payment. The status literal is checked
// before the store is touched.
func (s *PaymentService) UpdateStatus(id, status string) []byte {
	to, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return render(s.log, domain.Fail[domain.Payment](err))
	}
	payment, err := s.repository.UpdateStatus(id, to)
	if err != nil {
		s.log.Warn("Payment update refused", "id", id, "to", to, "error", err)
		return render(s.log, domain.Fail[domain.Payment](err))
	}
	return render(s.log, domain.OK(payment).WithMessage("payment "+string(payment.Status)))
}
