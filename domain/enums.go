package domain

import (
	"fmt"
	"strings"

	"estate-hub/errors"

	"github.com/samber/lo"
)

// enumerated is implemented by every closed set of wire literals.
// The "enum" validation tag relies on it.
type enumerated interface {
	IsValid() bool
	allowed() []string
}

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

var propertyTypes = []PropertyType{
	PropertyTypeApartment, PropertyTypeHouse, PropertyTypeLand, PropertyTypeCommercial,
}

func (t PropertyType) IsValid() bool     { return lo.Contains(propertyTypes, t) }
func (t PropertyType) allowed() []string { return literals(propertyTypes) }

// HasRooms reports whether bedroom and bathroom counts apply to the type.
func (t PropertyType) HasRooms() bool { return t != PropertyTypeLand }

func ParsePropertyType(s string) (PropertyType, error) {
	return parseEnum("propertyType", s, propertyTypes)
}

// UserType is shared by users, message senders and conversation participants.
type UserType string

const (
	UserTypeBuyer     UserType = "buyer"
	UserTypeSeller    UserType = "seller"
	UserTypeAgent     UserType = "agent"
	UserTypeDeveloper UserType = "developer"
)

var userTypes = []UserType{UserTypeBuyer, UserTypeSeller, UserTypeAgent, UserTypeDeveloper}

func (t UserType) IsValid() bool     { return lo.Contains(userTypes, t) }
func (t UserType) allowed() []string { return literals(userTypes) }

func ParseUserType(s string) (UserType, error) {
	return parseEnum("userType", s, userTypes)
}

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeFile     MessageType = "file"
	MessageTypeLocation MessageType = "location"
)

var messageTypes = []MessageType{MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeLocation}

func (t MessageType) IsValid() bool     { return lo.Contains(messageTypes, t) }
func (t MessageType) allowed() []string { return literals(messageTypes) }

func ParseMessageType(s string) (MessageType, error) {
	return parseEnum("messageType", s, messageTypes)
}

// Currency has a single accepted value on the wire.
type Currency string

const CurrencyNGN Currency = "NGN"

var currencies = []Currency{CurrencyNGN}

func (c Currency) IsValid() bool     { return lo.Contains(currencies, c) }
func (c Currency) allowed() []string { return literals(currencies) }

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

var paymentMethods = []PaymentMethod{PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodMobileMoney}

func (m PaymentMethod) IsValid() bool     { return lo.Contains(paymentMethods, m) }
func (m PaymentMethod) allowed() []string { return literals(paymentMethods) }

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseEnum("paymentMethod", s, paymentMethods)
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

var notificationTypes = []NotificationType{
	NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError,
}

func (t NotificationType) IsValid() bool     { return lo.Contains(notificationTypes, t) }
func (t NotificationType) allowed() []string { return literals(notificationTypes) }

func ParseNotificationType(s string) (NotificationType, error) {
	return parseEnum("type", s, notificationTypes)
}

// LoadingState tracks a client-side request lifecycle.
type LoadingState string

const (
	LoadingIdle      LoadingState = "idle"
	LoadingPending   LoadingState = "loading"
	LoadingSucceeded LoadingState = "succeeded"
	LoadingFailed    LoadingState = "failed"
)

var loadingStates = []LoadingState{LoadingIdle, LoadingPending, LoadingSucceeded, LoadingFailed}

func (s LoadingState) IsValid() bool     { return lo.Contains(loadingStates, s) }
func (s LoadingState) allowed() []string { return literals(loadingStates) }

func ParseLoadingState(s string) (LoadingState, error) {
	return parseEnum("loadingState", s, loadingStates)
}

func literals[E ~string](values []E) []string {
	return lo.Map(values, func(v E, _ int) string { return string(v) })
}

func parseEnum[E ~string](field, s string, values []E) (E, error) {
	if lo.Contains(values, E(s)) {
		return E(s), nil
	}
	return "", errors.NewValidationError(field, oneOf(literals(values)))
}

func oneOf(values []string) string {
	return fmt.Sprintf("must be one of %s", strings.Join(values, ", "))
}
