package event

import "sync"

type listener struct {
	id        int
	eventType EventType
	channel   chan Event
}

// EventManager implementation of the Manager interface
type EventManager struct {
	listeners []*listener
	nextID    int
	mux       sync.Mutex
}

// NewEventManager returns a new EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		mux:       sync.Mutex{},
	}
}

// RegisterListener registers a channel to receive events of the given type
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener removes a previously registered listener
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id != id {
			listeners = append(listeners, l)
		}
	}

	m.listeners = listeners

	return id
}

// Send publishes an event to all listeners registered for its type.
// Delivery happens on separate goroutines so a slow listener never
// blocks the sender.
func (m *EventManager) Send(evt Event) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for _, l := range m.listeners {
		if l.eventType != evt.Type {
			continue
		}

		go func(channel chan Event) {
			channel <- evt
		}(l.channel)
	}
}

// ReportFatalError publishes an unrecoverable error event
func (m *EventManager) ReportFatalError(err error) {
	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError publishes a recoverable error event
func (m *EventManager) ReportError(err error) {
	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}
