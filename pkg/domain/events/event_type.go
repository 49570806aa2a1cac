package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeTransferCompleted   EventType = "Transfer.Completed"
	EventTypeUserRegistered      EventType = "User.Registered"
	EventTypeExchangeRateUpdated EventType = "ExchangeRate.Updated"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// EventTypes maps each event type to a constructor of its zero value, used
// when decoding events received from a broker.
var EventTypes = map[EventType]func() Event{
	EventTypeTransferCompleted:   func() Event { return &TransferCompleted{} },
	EventTypeUserRegistered:      func() Event { return &UserRegistered{} },
	EventTypeExchangeRateUpdated: func() Event { return &ExchangeRateUpdated{} },
}
