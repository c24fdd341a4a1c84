//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	Create(user domain.User) (domain.User, error)
	Get(id string) (domain.User, error)
	GetByEmail(email string) (domain.User, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log, now: time.Now}
}

// Create persists the user under "user:{id}" and reserves its email under
// "email:{lowercased email}". Emails are unique case-insensitively.
func (r *UserRepository) Create(user domain.User) (domain.User, error) {
	user.ID = uuid.New().String()
	user.CreatedAt = domain.FormatTimestamp(r.now())
	user.UpdatedAt = user.CreatedAt

	err := r.db.Update(func(txn *badger.Txn) error {
		index := []byte(emailKey(user.Email))
		_, err := txn.Get(index)
		if err == nil {
			return errors.ErrUserAlreadyExists
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err = put(txn, userKey(user.ID), user); err != nil {
			return err
		}
		return txn.Set(index, []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	r.log.Debug("User stored", "id", user.ID, "type", user.UserType)
	return user, nil
}

func (r *UserRepository) Get(id string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = get[domain.User](txn, userKey(id))
		return err
	})
	return user, err
}

func (r *UserRepository) GetByEmail(email string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(emailKey(email)))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%s: %w", email, errors.ErrNotFound)
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = get[domain.User](txn, userKey(string(id)))
		return err
	})
	return user, err
}

func userKey(id string) string {
	return "user:" + id
}

func emailKey(email string) string {
	return "email:" + strings.ToLower(strings.TrimSpace(email))
}
