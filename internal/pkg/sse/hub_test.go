package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishDeliversToTopicSubscribers(t *testing.T) {
	hub := NewHub()

	events, cleanup := hub.Subscribe("console")
	defer cleanup()
	other, otherCleanup := hub.Subscribe("other")
	defer otherCleanup()

	hub.Publish(Event{Topic: "console", Event: "store.changed", Data: 1})

	select {
	case ev := <-events:
		assert.Equal(t, "store.changed", ev.Event)
		assert.Equal(t, 1, ev.Data)
	default:
		t.Fatal("expected an event on the console topic")
	}

	select {
	case <-other:
		t.Fatal("other topic must not receive console events")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	events, cleanup := hub.Subscribe("console")
	require.Equal(t, 1, hub.SubscriberCount("console"))

	cleanup()
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("console"))
	_, open := <-events
	assert.False(t, open)
}

func TestHub_PublishSkipsFullChannels(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("console")
	defer cleanup()

	for i := 0; i < 50; i++ {
		hub.Publish(Event{Topic: "console", Event: "store.changed"})
	}
}
