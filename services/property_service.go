package services

import (
	"fmt"
	"log/slog"

	"estate-hub/domain"
	"estate-hub/repositories"
)

type IPropertyService interface {
	Import(text []byte) []byte
	List(page, perPage int) []byte
}

// PropertyService exposes listings as serialized ApiResponse envelopes.
type PropertyService struct {
	log             *slog.Logger
	repository      repositories.IPropertyRepository
	defaultPageSize int
	maxPageSize     int
}

func NewPropertyService(log *slog.Logger, repository repositories.IPropertyRepository, defaultPageSize, maxPageSize int) *PropertyService {
	return &PropertyService{
		log:             log,
		repository:      repository,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Import deserializes a listing document and stores it. The stored listing
// gets a fresh id and timestamps.
func (s *PropertyService) Import(text []byte) []byte {
	property, err := domain.Deserialize[domain.Property](text)
	if err != nil {
		s.log.Warn("Listing rejected", "error", err)
		return render(s.log, domain.Fail[domain.Property](err))
	}
	created, err := s.repository.Create(property)
	if err != nil {
		s.log.Error("Unable to store listing", "error", err)
		return render(s.log, domain.Fail[domain.Property](err))
	}
	s.log.Info("Listing imported", "id", created.ID, "source_id", property.ID)
	return render(s.log, domain.OK(created).WithMessage(fmt.Sprintf("property %s imported", created.ID)))
}

// List returns one page of listings. A non positive page size falls back to
// the default and larger ones are capped.
func (s *PropertyService) List(page, perPage int) []byte {
	perPage = s.pageSize(perPage)
	listing, err := s.repository.List(page, perPage)
	if err != nil {
		s.log.Warn("Unable to list properties", "page", page, "per_page", perPage, "error", err)
		return render(s.log, domain.Fail[domain.PaginatedResponse[domain.Property]](err))
	}
	return render(s.log, domain.OK(listing))
}

func (s *PropertyService) pageSize(perPage int) int {
	if perPage <= 0 {
		return s.defaultPageSize
	}
	return min(perPage, s.maxPageSize)
}
