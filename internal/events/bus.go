package events

// Handler receives the payload published with an event.
type Handler func(payload any)

// Bus is a synchronous publish/subscribe hub. All inter-component
// communication in the storefront flows through it.
//
// Delivery is synchronous, in subscriber-registration order, on the calling
// goroutine. A handler that publishes during its own invocation triggers
// immediate nested delivery. There is no error isolation: a panicking
// handler propagates to the publisher and handlers registered after it do
// not run for that publish.
//
// The bus is not safe for concurrent use; the storefront drives it from a
// single goroutine.
type Bus struct {
	subscribers map[string][]*Subscription
}

// Subscription is the handle returned by Subscribe. Unsubscribing is safe
// at any point, including from inside a handler during delivery of the
// same event: the removed handler is skipped if it has not run yet.
type Subscription struct {
	bus    *Bus
	name   string
	handle Handler
	active bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]*Subscription),
	}
}

// Subscribe registers a handler for an exact event name.
func (b *Bus) Subscribe(name string, h Handler) *Subscription {
	sub := &Subscription{
		bus:    b,
		name:   name,
		handle: h,
		active: true,
	}
	b.subscribers[name] = append(b.subscribers[name], sub)
	return sub
}

// Publish delivers payload to every active subscriber of name, in
// registration order. Subscribers added during delivery do not receive the
// current publish.
func (b *Bus) Publish(name string, payload any) {
	subs := b.subscribers[name]
	// Iterate over a snapshot so handlers may subscribe or unsubscribe
	// without disturbing this delivery; the active flag honors
	// unsubscriptions that happen mid-publish.
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		if !sub.active {
			continue
		}
		sub.handle(payload)
	}
}

// Unsubscribe removes the subscription from the bus. Calling it more than
// once is a no-op.
func (s *Subscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	subs := s.bus.subscribers[s.name]
	for i, sub := range subs {
		if sub == s {
			s.bus.subscribers[s.name] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}
