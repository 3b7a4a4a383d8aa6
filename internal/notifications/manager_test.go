package notifications

import (
	"fmt"
	"testing"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

func note(msg string) models.Notification {
	return models.Notification{Type: models.NotifySwapRequest, Message: msg}
}

func TestPublishBufferEvictsOldest(t *testing.T) {
	m := NewManager()

	total := bufferSize + 10
	for i := 0; i < total; i++ {
		m.Publish(7, note(fmt.Sprintf("n%d", i)))
	}

	buf := m.Drain(7)
	if len(buf) != bufferSize {
		t.Fatalf("Drain returned %d, want %d", len(buf), bufferSize)
	}
	// Старые вытеснены: первым лежит уведомление номер 10
	if buf[0].Message != "n10" {
		t.Errorf("buf[0].Message = %q, want n10", buf[0].Message)
	}
	if buf[len(buf)-1].Message != fmt.Sprintf("n%d", total-1) {
		t.Errorf("buf[last].Message = %q", buf[len(buf)-1].Message)
	}
}

func TestDrainOnce(t *testing.T) {
	m := NewManager()
	m.Publish(7, note("hello"))

	if got := m.Drain(7); len(got) != 1 {
		t.Fatalf("first Drain = %d, want 1", len(got))
	}
	if got := m.Drain(7); len(got) != 0 {
		t.Errorf("second Drain = %d, want 0", len(got))
	}
}

func TestDrainIsPerUser(t *testing.T) {
	m := NewManager()
	m.Publish(7, note("for seven"))
	m.Publish(8, note("for eight"))

	if got := m.Drain(7); len(got) != 1 || got[0].Message != "for seven" {
		t.Errorf("Drain(7) = %v", got)
	}
	if got := m.Drain(8); len(got) != 1 || got[0].Message != "for eight" {
		t.Errorf("Drain(8) = %v", got)
	}
}

func TestSubscribeReceivesPublished(t *testing.T) {
	m := NewManager()
	id, ch := m.Subscribe(7)
	defer m.Unsubscribe(7, id)

	m.Publish(7, note("ping"))

	select {
	case n := <-ch:
		if n.Message != "ping" {
			t.Errorf("Message = %q", n.Message)
		}
	default:
		t.Fatal("subscriber did not receive notification")
	}
}

func TestSlowSubscriberDropped(t *testing.T) {
	m := NewManager()
	_, ch := m.Subscribe(7)

	// Канал никто не читает: после переполнения подписчик отключается
	for i := 0; i < subscriberBuffer+1; i++ {
		m.Publish(7, note(fmt.Sprintf("n%d", i)))
	}

	received := 0
	closed := false
	for !closed {
		select {
		case _, ok := <-ch:
			if !ok {
				closed = true
				break
			}
			received++
		default:
			t.Fatalf("channel neither closed nor readable after %d reads", received)
		}
	}
	if received != subscriberBuffer {
		t.Errorf("received = %d, want %d buffered before drop", received, subscriberBuffer)
	}

	// Отключенный подписчик больше не регистрируется менеджером
	m.Publish(7, note("after drop"))
}
