package repositories

import (
	"log/slog"
	"testing"
	"time"

	"estate-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var testLog = logs.GetLoggerFromLevel(slog.LevelDebug)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ticker returns a clock moving one minute forward on every call.
func ticker() func() time.Time {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Minute)
		return at
	}
}

func newProperty(title string) domain.Property {
	return domain.Property{
		Title:       title,
		Description: "Detached duplex with boys quarters",
		Price:       50000000,
		Location: domain.Location{
			Address:     "12 Admiralty Way",
			City:        "Lekki",
			State:       "Lagos",
			Coordinates: domain.Coordinates{Lat: 6.43, Lng: 3.47},
		},
		PropertyType: domain.PropertyTypeHouse,
		Bedrooms:     lo.ToPtr(4),
		Bathrooms:    lo.ToPtr(3),
		Area:         320,
		Amenities:    []string{"pool", "generator"},
		Images:       []string{"https://cdn.example.com/p/1.jpg"},
		AgentID:      "agent-1",
		AgentName:    "Ada Obi",
	}
}

func newUser(email string) domain.User {
	return domain.User{
		Email:     email,
		Phone:     "+2348031234567",
		FirstName: "Chidi",
		LastName:  "Okeke",
		UserType:  domain.UserTypeBuyer,
		Preferences: domain.Preferences{
			PreferredLocations: []string{"Lekki"},
			PriceRange:         domain.PriceRange{Min: 0, Max: 80000000},
			PropertyTypes:      []domain.PropertyType{domain.PropertyTypeHouse},
		},
	}
}

func newConversation() domain.Conversation {
	return domain.Conversation{
		Participants: []domain.Participant{
			{ID: "buyer-1", Name: "Chidi Okeke", Type: domain.UserTypeBuyer},
			{ID: "agent-1", Name: "Ada Obi", Type: domain.UserTypeAgent},
		},
		PropertyID:    lo.ToPtr("p1"),
		PropertyTitle: lo.ToPtr("Lekki duplex"),
	}
}

func newMessage(conversationID, senderID, content string) domain.Message {
	senderType := domain.UserTypeBuyer
	if senderID == "agent-1" {
		senderType = domain.UserTypeAgent
	}
	return domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderID,
		SenderType:     senderType,
		Content:        content,
		MessageType:    domain.MessageTypeText,
	}
}

// corrupt writes a raw value under key, bypassing serialization.
func corrupt(t *testing.T, db *badger.DB, key, value string) {
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	require.NoError(t, err)
}
