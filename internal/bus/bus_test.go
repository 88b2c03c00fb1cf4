package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("message.", 10)
	defer unsub()

	b.Publish(Event{Kind: KindMessageSent, Timestamp: time.Now(), Payload: MessageEvent{ChatID: "c1"}})

	select {
	case evt := <-ch:
		if evt.Kind != KindMessageSent {
			t.Errorf("got kind %q, want %s", evt.Kind, KindMessageSent)
		}
		if p, ok := evt.Payload.(MessageEvent); !ok || p.ChatID != "c1" {
			t.Errorf("payload = %#v, want MessageEvent{ChatID: c1}", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	defer unsub()

	b.Publish(Event{Kind: KindMessageSent})
	b.Publish(Event{Kind: KindChatRead})

	select {
	case evt := <-ch:
		if evt.Kind != KindChatRead {
			t.Errorf("got kind %q, want %s", evt.Kind, KindChatRead)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

// Regression: chat "ab" must not receive notifications for chat "abc".
func TestMessagesNamespaceIsExact(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(MessagesNamespace("ab"), 10)
	defer unsub()

	b.Publish(Event{Kind: MessagesNamespace("abc") + "appended"})
	b.Publish(Event{Kind: MessagesNamespace("ab") + "appended"})

	evt := <-ch
	if evt.Kind != "store.messages.ab.appended" {
		t.Errorf("got %q, want store.messages.ab.appended", evt.Kind)
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	unsub()
	unsub()

	b.Publish(Event{Kind: KindChatCreated})

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
	if n := b.Subscribers(); n != 0 {
		t.Errorf("subscribers = %d, want 0", n)
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	var dropped []string
	b.OnDrop(func(evt Event) { dropped = append(dropped, evt.Kind) })

	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
	if len(dropped) != 1 || dropped[0] != "test.two" {
		t.Errorf("dropped = %v, want [test.two]", dropped)
	}
}
