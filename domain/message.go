package domain

import "estate-hub/errors"

// Message is a single entry of a conversation. Only IsRead changes after
// creation, and only on behalf of the recipient.
type Message struct {
	ID             string      `json:"id" validate:"required"`
	ConversationID string      `json:"conversationId" validate:"required"`
	SenderID       string      `json:"senderId" validate:"required"`
	SenderName     string      `json:"senderName"`
	SenderType     UserType    `json:"senderType" validate:"enum"`
	Content        string      `json:"content"`
	MessageType    MessageType `json:"messageType" validate:"enum"`
	Timestamp      string      `json:"timestamp" validate:"utciso8601"`
	IsRead         bool        `json:"isRead"`
	Attachments    []string    `json:"attachments,omitempty" validate:"omitempty,dive,required"`
}

func (m Message) Validate() error {
	if err := checkStruct(m); err != nil {
		return err
	}
	if m.MessageType == MessageTypeText && m.Content == "" {
		return errors.NewValidationError("content", "is required for text messages")
	}
	return nil
}

func (Message) wireFields() []field {
	return messageFields()
}

func messageFields() []field {
	return []field{
		req("id"), req("conversationId"), req("senderId"), req("senderName"),
		req("senderType"), req("content"), req("messageType"), req("timestamp"),
		req("isRead"), opt("attachments"),
	}
}

func (m *Message) MarkRead() {
	m.IsRead = true
}
