package domain

import (
	"fmt"

	"estate-hub/errors"

	"github.com/samber/lo"
)

// Conversation groups messages between participants, optionally about a
// property. LastMessage and UnreadCount are derived by the storage layer;
// they are checked here, never computed.
type Conversation struct {
	ID            string        `json:"id" validate:"required"`
	Participants  []Participant `json:"participants" validate:"required,min=1,unique=ID,dive"`
	PropertyID    *string       `json:"propertyId,omitempty" validate:"omitnil,min=1"`
	PropertyTitle *string       `json:"propertyTitle,omitempty"`
	LastMessage   *Message      `json:"lastMessage,omitempty" validate:"-"`
	UnreadCount   int           `json:"unreadCount" validate:"gte=0"`
	CreatedAt     string        `json:"createdAt" validate:"utciso8601"`
	UpdatedAt     string        `json:"updatedAt" validate:"utciso8601"`
}

func (c Conversation) Validate() error {
	if err := checkStruct(c); err != nil {
		return err
	}
	if c.PropertyTitle != nil && c.PropertyID == nil {
		return errors.NewValidationError("propertyTitle", "requires propertyId")
	}
	if c.LastMessage != nil {
		if err := c.LastMessage.Validate(); err != nil {
			return within(err, "lastMessage")
		}
		if c.LastMessage.ConversationID != c.ID {
			return errors.NewValidationError("lastMessage.conversationId", "must match the conversation id")
		}
	}
	return nil
}

func (Conversation) wireFields() []field {
	return []field{
		req("id"), each("participants", participantFields()...),
		opt("propertyId"), opt("propertyTitle"),
		opt("lastMessage", messageFields()...),
		req("unreadCount"), req("createdAt"), req("updatedAt"),
	}
}

// CheckUnread verifies the unread counter against the number of messages
// the conversation actually holds.
func (c Conversation) CheckUnread(messageCount int) error {
	if c.UnreadCount > messageCount {
		return errors.NewValidationError("unreadCount",
			fmt.Sprintf("must not exceed the %d messages of the conversation", messageCount))
	}
	return nil
}

// HasParticipant reports whether userID takes part in the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	return lo.ContainsBy(c.Participants, func(p Participant) bool { return p.ID == userID })
}

// within prefixes a nested validation failure with its parent field.
func within(err error, parent string) error {
	if verr, ok := err.(*errors.ValidationError); ok {
		return verr.Within(parent)
	}
	return err
}
