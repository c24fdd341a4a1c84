package repositories

import (
	stderrors "errors"
	"fmt"
	"time"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
)

// Records are stored as their wire representation. Writes go through
// domain.Serialize and reads through domain.Deserialize, so nothing
// crosses the storage boundary unvalidated in either direction.

func put[E domain.Entity](txn *badger.Txn, key string, value E) error {
	data, err := domain.Serialize(value)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

func get[E domain.Entity](txn *badger.Txn, key string) (E, error) {
	var value E
	item, err := txn.Get([]byte(key))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return value, fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	if err != nil {
		return value, err
	}
	err = item.Value(func(v []byte) error {
		value, err = decode[E](key, v)
		return err
	})
	return value, err
}

func decode[E domain.Entity](key string, data []byte) (E, error) {
	value, err := domain.Deserialize[E](data)
	if err != nil {
		return value, fmt.Errorf("%w: %s: %w", errors.ErrCorruptedRecord, key, err)
	}
	return value, nil
}

// timeKey pads nanoseconds to 19 digits so keys sort chronologically.
func timeKey(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}

// listPage walks an index whose values are primary keys, newest first,
// and loads the records of the requested page.
func listPage[E domain.Entity](txn *badger.Txn, indexPrefix string, page, perPage int) (domain.PaginatedResponse[E], error) {
	if page < 1 {
		return domain.PaginatedResponse[E]{}, errors.NewValidationError("currentPage", "must be greater than or equal to 1")
	}
	if perPage < 1 {
		return domain.PaginatedResponse[E]{}, errors.NewValidationError("itemsPerPage", "must be greater than 0")
	}

	prefix := []byte(indexPrefix)
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	offset := (page - 1) * perPage
	total := 0
	var primaryKeys []string
	// Reverse iteration has to start past the last key carrying the prefix.
	for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
		if total >= offset && len(primaryKeys) < perPage {
			primary, err := it.Item().ValueCopy(nil)
			if err != nil {
				return domain.PaginatedResponse[E]{}, err
			}
			primaryKeys = append(primaryKeys, string(primary))
		}
		total++
	}

	items := make([]E, 0, len(primaryKeys))
	for _, key := range primaryKeys {
		item, err := get[E](txn, key)
		if err != nil {
			return domain.PaginatedResponse[E]{}, err
		}
		items = append(items, item)
	}

	response := domain.NewPaginatedResponse(items, total, page, perPage)
	if err := response.Validate(); err != nil {
		return domain.PaginatedResponse[E]{}, err
	}
	return response, nil
}
