//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"estate-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type INotificationRepository interface {
	Create(notification domain.Notification) (domain.Notification, error)
	ListForUser(userID string, page, perPage int) (domain.PaginatedResponse[domain.Notification], error)
	MarkRead(id string) (domain.Notification, error)
}

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, log: log, now: time.Now}
}

// Create stores the notification under "notification:{id}" and indexes it
// per recipient under "idx:notification:{len(user)}:{user}:{created}:{id}".
func (r *NotificationRepository) Create(notification domain.Notification) (domain.Notification, error) {
	at := r.now()
	notification.ID = uuid.New().String()
	notification.CreatedAt = domain.FormatTimestamp(at)
	notification.IsRead = false

	key := notificationKey(notification.ID)
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := put(txn, key, notification); err != nil {
			return err
		}
		index := fmt.Sprintf("%s%s:%s", notificationIndex(notification.UserID), timeKey(at), notification.ID)
		return txn.Set([]byte(index), []byte(key))
	})
	if err != nil {
		return domain.Notification{}, err
	}
	r.log.Debug("Notification stored", "id", notification.ID, "user", notification.UserID, "type", notification.Type)
	return notification, nil
}

// ListForUser returns one page of the user's notifications, newest first.
func (r *NotificationRepository) ListForUser(userID string, page, perPage int) (domain.PaginatedResponse[domain.Notification], error) {
	var response domain.PaginatedResponse[domain.Notification]
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		response, err = listPage[domain.Notification](txn, notificationIndex(userID), page, perPage)
		return err
	})
	return response, err
}

func (r *NotificationRepository) MarkRead(id string) (domain.Notification, error) {
	var notification domain.Notification
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		notification, err = get[domain.Notification](txn, notificationKey(id))
		if err != nil {
			return err
		}
		notification.MarkRead()
		return put(txn, notificationKey(id), notification)
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return notification, nil
}

func notificationKey(id string) string {
	return "notification:" + id
}

// notificationIndex prefixes the user id with its length, so an id holding
// ':' can never extend another user's prefix.
func notificationIndex(userID string) string {
	return fmt.Sprintf("idx:notification:%d:%s:", len(userID), userID)
}
