package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe("ping", func(any) { got = append(got, "first") })
	bus.Subscribe("ping", func(any) { got = append(got, "second") })
	bus.Subscribe("ping", func(any) { got = append(got, "third") })

	bus.Publish("ping", nil)

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestBus_ExactNameMatchOnly(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe("cart:update", func(any) { calls++ })

	bus.Publish("cart:open", nil)
	bus.Publish("cart", nil)
	assert.Zero(t, calls)

	bus.Publish("cart:update", nil)
	assert.Equal(t, 1, calls)
}

func TestBus_PayloadReachesHandler(t *testing.T) {
	bus := NewBus()

	var got any
	bus.Subscribe("ping", func(payload any) { got = payload })

	bus.Publish("ping", 42)

	assert.Equal(t, 42, got)
}

func TestBus_NestedPublishDeliversImmediately(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe("outer", func(any) {
		got = append(got, "outer-start")
		bus.Publish("inner", nil)
		got = append(got, "outer-end")
	})
	bus.Subscribe("inner", func(any) { got = append(got, "inner") })

	bus.Publish("outer", nil)

	assert.Equal(t, []string{"outer-start", "inner", "outer-end"}, got)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := bus.Subscribe("ping", func(any) { calls++ })

	bus.Publish("ping", nil)
	sub.Unsubscribe()
	bus.Publish("ping", nil)

	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeDuringDeliverySkipsUnreachedHandler(t *testing.T) {
	bus := NewBus()

	var laterSub *Subscription
	laterCalls := 0
	bus.Subscribe("ping", func(any) {
		laterSub.Unsubscribe()
	})
	laterSub = bus.Subscribe("ping", func(any) { laterCalls++ })

	require.NotPanics(t, func() {
		bus.Publish("ping", nil)
	})
	assert.Zero(t, laterCalls, "handler unsubscribed mid-publish must not run")
}

func TestBus_UnsubscribeSelfDuringDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	var sub *Subscription
	sub = bus.Subscribe("ping", func(any) {
		calls++
		sub.Unsubscribe()
	})
	after := 0
	bus.Subscribe("ping", func(any) { after++ })

	bus.Publish("ping", nil)
	bus.Publish("ping", nil)

	assert.Equal(t, 1, calls, "self-unsubscribed handler runs once")
	assert.Equal(t, 2, after, "later handler still receives both publishes")
}

func TestBus_UnsubscribeTwiceIsNoop(t *testing.T) {
	bus := NewBus()

	sub := bus.Subscribe("ping", func(any) {})
	other := bus.Subscribe("ping", func(any) {})

	sub.Unsubscribe()
	require.NotPanics(t, func() { sub.Unsubscribe() })

	calls := 0
	bus.Subscribe("ping", func(any) { calls++ })
	bus.Publish("ping", nil)
	assert.Equal(t, 1, calls)
	_ = other
}

func TestBus_SubscribeDuringDeliveryMissesCurrentPublish(t *testing.T) {
	bus := NewBus()

	lateCalls := 0
	bus.Subscribe("ping", func(any) {
		bus.Subscribe("ping", func(any) { lateCalls++ })
	})

	bus.Publish("ping", nil)
	assert.Zero(t, lateCalls)

	bus.Publish("ping", nil)
	assert.Equal(t, 1, lateCalls)
}

func TestBus_PanicPropagatesAndStopsLaterHandlers(t *testing.T) {
	bus := NewBus()

	reached := false
	bus.Subscribe("ping", func(any) { panic("handler blew up") })
	bus.Subscribe("ping", func(any) { reached = true })

	assert.Panics(t, func() { bus.Publish("ping", nil) })
	assert.False(t, reached, "handlers after a panicking one do not run")
}

func TestBus_PublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	require.NotPanics(t, func() {
		bus.Publish("nobody:listens", struct{}{})
	})
}
