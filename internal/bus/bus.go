// Package bus defines the events the engines emit and the categories
// sessions subscribe to. The gateway implements Publisher and fans events
// out to its sessions; engines only ever see the Publisher interface.
package bus

import (
	"sync/atomic"

	"github.com/tstnetwork/tstnode/internal/model"
)

// Category is a subscription level a session can select.
type Category string

const (
	CategoryBlocks          Category = "blocks"
	CategoryTransactions    Category = "transactions"
	CategoryOwnTransactions Category = "ownTransactions"
	CategoryNames           Category = "names"
	CategoryStake           Category = "stake"
	CategoryValidator       Category = "validator"
)

// Categories lists every valid subscription level.
func Categories() []Category {
	return []Category{
		CategoryBlocks,
		CategoryTransactions,
		CategoryOwnTransactions,
		CategoryNames,
		CategoryStake,
		CategoryValidator,
	}
}

// ValidCategory reports whether s names a subscription level.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// EventType identifies the payload carried by an Event.
type EventType string

const (
	EventBlock       EventType = "block"
	EventTransaction EventType = "transaction"
	EventName        EventType = "name"
	EventStake       EventType = "stake"
	EventValidator   EventType = "validator"
)

// Event is a single broadcast. Exactly one payload field matching Type is
// set. NewWork rides along on block events so miners learn the retarget
// without polling.
type Event struct {
	Type        EventType
	Block       *model.Block
	NewWork     uint64
	Transaction *model.Transaction
	Name        *model.Name
	Stake       *model.Stake
	Validator   string
}

// Publisher accepts events for broadcast. Publish must not block the
// caller; delivery to slow consumers is the implementation's problem.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards every event. It stands in for the gateway in tests
// and tools.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(Event) {}

// Relay forwards events to a target bound after construction. The engines
// take a Publisher when they are built but the gateway hub needs the engines
// first; a Relay stands in until Bind wires the hub.
type Relay struct {
	target atomic.Value
}

// publisherBox gives atomic.Value a single concrete type to store; storing
// Publisher implementations directly would panic on the first Bind with a
// different concrete type.
type publisherBox struct {
	p Publisher
}

// NewRelay returns a Relay that discards events until Bind is called.
func NewRelay() *Relay {
	r := &Relay{}
	r.target.Store(publisherBox{NopPublisher{}})
	return r
}

// Bind sets the forwarding target.
func (r *Relay) Bind(p Publisher) {
	r.target.Store(publisherBox{p})
}

// Publish implements Publisher.
func (r *Relay) Publish(event Event) {
	r.target.Load().(publisherBox).p.Publish(event)
}
