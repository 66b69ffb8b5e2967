package event

type EventType string

const (
	// ErrorEventType reported for recoverable errors
	ErrorEventType EventType = "error"
	// FatalErrorEventType reported for unrecoverable errors
	FatalErrorEventType EventType = "fatal-error"
	// ScanCompleteEventType sent when a subnet scan run transitions to done
	ScanCompleteEventType EventType = "scan-complete"
	// PingStoppedEventType sent when a ping session terminates on its own
	PingStoppedEventType EventType = "ping-stopped"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}
