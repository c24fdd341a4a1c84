//go:generate go run go.uber.org/mock/mockgen -source=property.go -destination=../mocks/mock_property_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"estate-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IPropertyRepository interface {
	Create(property domain.Property) (domain.Property, error)
	Get(id string) (domain.Property, error)
	List(page, perPage int) (domain.PaginatedResponse[domain.Property], error)
}

type PropertyRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewPropertyRepository(db *badger.DB, log *slog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: log, now: time.Now}
}

// Create assigns the id and timestamps, then persists the listing under
// "property:{id}" with a time index "idx:property:{created}:{id}" used
// for newest-first listing.
func (r *PropertyRepository) Create(property domain.Property) (domain.Property, error) {
	at := r.now()
	property.ID = uuid.New().String()
	property.CreatedAt = domain.FormatTimestamp(at)
	property.UpdatedAt = property.CreatedAt

	key := propertyKey(property.ID)
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := put(txn, key, property); err != nil {
			return err
		}
		return txn.Set([]byte(fmt.Sprintf("idx:property:%s:%s", timeKey(at), property.ID)), []byte(key))
	})
	if err != nil {
		return domain.Property{}, err
	}
	r.log.Debug("Property stored", "id", property.ID, "type", property.PropertyType)
	return property, nil
}

func (r *PropertyRepository) Get(id string) (domain.Property, error) {
	var property domain.Property
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		property, err = get[domain.Property](txn, propertyKey(id))
		return err
	})
	return property, err
}

// List returns one page of listings, newest first.
func (r *PropertyRepository) List(page, perPage int) (domain.PaginatedResponse[domain.Property], error) {
	var response domain.PaginatedResponse[domain.Property]
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		response, err = listPage[domain.Property](txn, "idx:property:", page, perPage)
		return err
	})
	return response, err
}

func propertyKey(id string) string {
	return "property:" + id
}
