//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"estate-hub/domain"
	"estate-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IConversationRepository interface {
	Create(conversation domain.Conversation) (domain.Conversation, error)
	Get(id string) (domain.Conversation, error)
	AppendMessage(message domain.Message) (domain.Message, error)
	GetMessages(conversationID string, cursor *string) ([]domain.Message, *string, error)
	MarkRead(conversationID, readerID string) (domain.Conversation, error)
}

type ConversationRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
	now           func() time.Time
}

func NewConversationRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *ConversationRepository {
	return &ConversationRepository{db: db, log: log, limitMessages: limitMessages, now: time.Now}
}

// Create starts an empty conversation: no last message, nothing unread.
func (r *ConversationRepository) Create(conversation domain.Conversation) (domain.Conversation, error) {
	conversation.ID = uuid.New().String()
	conversation.CreatedAt = domain.FormatTimestamp(r.now())
	conversation.UpdatedAt = conversation.CreatedAt
	conversation.LastMessage = nil
	conversation.UnreadCount = 0

	err := r.db.Update(func(txn *badger.Txn) error {
		return put(txn, conversationKey(conversation.ID), conversation)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

func (r *ConversationRepository) Get(id string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		conversation, err = get[domain.Conversation](txn, conversationKey(id))
		return err
	})
	return conversation, err
}

// AppendMessage persists a message under
// "msg:{conversation_id}:{timestamp_padded}:{uuid}" so a prefix scan returns
// the conversation in chronological order, the uuid breaking ties between
// messages of the same nanosecond. The conversation's lastMessage and
// unreadCount are updated in the same transaction.
func (r *ConversationRepository) AppendMessage(message domain.Message) (domain.Message, error) {
	at := r.now()
	message.ID = uuid.New().String()
	message.Timestamp = domain.FormatTimestamp(at)
	message.IsRead = false

	err := r.db.Update(func(txn *badger.Txn) error {
		conversation, err := get[domain.Conversation](txn, conversationKey(message.ConversationID))
		if err != nil {
			return err
		}
		if !conversation.HasParticipant(message.SenderID) {
			return errors.NewValidationError("senderId", "must be a participant of the conversation")
		}
		if err = put(txn, messageKey(message.ConversationID, at, message.ID), message); err != nil {
			return err
		}
		conversation.LastMessage = &message
		conversation.UnreadCount++
		conversation.UpdatedAt = message.Timestamp
		return put(txn, conversationKey(conversation.ID), conversation)
	})
	if err != nil {
		return domain.Message{}, err
	}
	r.log.Debug("Message stored", "conversation", message.ConversationID, "id", message.ID)
	return message, nil
}

// GetMessages retrieves messages of a conversation, newest first, using a
// reverse prefix scan. The returned cursor resumes right after the last
// message of the batch; it stops once limitMessages is reached.
func (r *ConversationRepository) GetMessages(conversationID string, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", conversationID)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(messages) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d message reached", *r.limitMessages))
				break
			}
			item := it.Item()
			key := string(item.Key())
			lastKey = key[prefixLen:]
			err := item.Value(func(value []byte) error {
				message, err := decode[domain.Message](key, value)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, &lastKey, nil
}

// MarkRead flags every message not sent by readerID as read and recounts
// the conversation's unread messages.
func (r *ConversationRepository) MarkRead(conversationID, readerID string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		conversation, err = get[domain.Conversation](txn, conversationKey(conversationID))
		if err != nil {
			return err
		}
		if !conversation.HasParticipant(readerID) {
			return errors.NewValidationError("readerId", "must be a participant of the conversation")
		}

		keys, messages, err := scanMessages(txn, conversationID)
		if err != nil {
			return err
		}
		var updated []int
		unread := 0
		for i, message := range messages {
			if message.IsRead {
				continue
			}
			if message.SenderID == readerID {
				unread++
				continue
			}
			messages[i].MarkRead()
			updated = append(updated, i)
		}
		for _, i := range updated {
			message := messages[i]
			if err = put(txn, keys[i], message); err != nil {
				return err
			}
			if conversation.LastMessage != nil && conversation.LastMessage.ID == message.ID {
				conversation.LastMessage.MarkRead()
			}
		}

		conversation.UnreadCount = unread
		if err = conversation.CheckUnread(len(messages)); err != nil {
			return err
		}
		return put(txn, conversationKey(conversation.ID), conversation)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

// scanMessages loads a whole conversation in chronological order. The
// iterator is closed before the caller writes in the same transaction.
func scanMessages(txn *badger.Txn, conversationID string) ([]string, []domain.Message, error) {
	prefix := []byte(fmt.Sprintf("msg:%s:", conversationID))
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var keys []string
	var messages []domain.Message
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := string(it.Item().KeyCopy(nil))
		value, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, nil, err
		}
		message, err := decode[domain.Message](key, value)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		messages = append(messages, message)
	}
	return keys, messages, nil
}

func conversationKey(id string) string {
	return "conversation:" + id
}

func messageKey(conversationID string, at time.Time, id string) string {
	return fmt.Sprintf("msg:%s:%s:%s", conversationID, timeKey(at), id)
}
