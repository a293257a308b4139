package justext

import "io"

// EventKind identifies the type of an Event.
type EventKind int

// Event kinds.
const (
	StartTagEvent EventKind = iota + 1
	EndTagEvent
	CharactersEvent
)

// Attribute is an element attribute.
type Attribute struct {
	Name  string
	Value string
}

// Event is one item of a cleaned document: an opening tag, a closing tag
// or a run of character data.
type Event struct {
	Kind  EventKind
	Name  string
	Attrs []Attribute
	Text  string
}

// StartTag returns a start-tag event.
func StartTag(name string, attrs ...Attribute) Event {
	return Event{Kind: StartTagEvent, Name: name, Attrs: attrs}
}

// EndTag returns an end-tag event.
func EndTag(name string) Event {
	return Event{Kind: EndTagEvent, Name: name}
}

// Characters returns a character-data event.
func Characters(text string) Event {
	return Event{Kind: CharactersEvent, Text: text}
}

// EventStream yields the events of a well-formed, pruned document in
// document order. Next returns io.EOF after the last event.
type EventStream interface {
	Next() (Event, error)
}

// Cleaner turns raw HTML into an EventStream. Implementations remove
// head, meta, title, script and style elements and balance tags.
type Cleaner interface {
	// Clean parses html. Returns EPARSE if no stream can be built.
	Clean(html string) (EventStream, error)
}

// EventSlice is an in-memory EventStream.
type EventSlice struct {
	events []Event
	pos    int
}

// NewEventSlice returns a stream over events.
func NewEventSlice(events ...Event) *EventSlice {
	return &EventSlice{events: events}
}

// Next returns the next event or io.EOF.
func (s *EventSlice) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{}, io.EOF
	}
	e := s.events[s.pos]
	s.pos++
	return e, nil
}
