package realtime

import (
	"encoding/json"
	"testing"

	"memberhub.io/memberhub/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestHubPublishReachesAllRecipientSessions(t *testing.T) {
	t.Parallel()

	h := NewHub(4)
	defer h.Close()

	tab1 := h.Subscribe("m-anna")
	tab2 := h.Subscribe("m-anna")
	other := h.Subscribe("m-ben")

	delivered := h.Publish("m-anna", []byte("hello"))
	if delivered != 2 {
		t.Fatalf("delivered = %d, want 2", delivered)
	}

	for i, s := range []*Session{tab1, tab2} {
		select {
		case msg := <-s.Outbox():
			if string(msg) != "hello" {
				t.Fatalf("session %d got %q", i, msg)
			}
		default:
			t.Fatalf("session %d got nothing", i)
		}
	}

	select {
	case msg := <-other.Outbox():
		t.Fatalf("unrelated recipient got %q", msg)
	default:
	}
}

func TestHubPublishWithoutSessions(t *testing.T) {
	t.Parallel()

	h := NewHub(4)
	defer h.Close()

	if n := h.Publish("m-nobody", []byte("x")); n != 0 {
		t.Fatalf("delivered = %d, want 0", n)
	}
}

func TestHubHasSession(t *testing.T) {
	t.Parallel()

	h := NewHub(4)
	defer h.Close()

	if h.HasSession("m-anna") {
		t.Fatal("no session expected before subscribe")
	}
	s := h.Subscribe("m-anna")
	if !h.HasSession("m-anna") {
		t.Fatal("session expected after subscribe")
	}
	h.Unsubscribe(s)
	if h.HasSession("m-anna") {
		t.Fatal("no session expected after unsubscribe")
	}
}

func TestHubUnsubscribeClosesOutbox(t *testing.T) {
	t.Parallel()

	h := NewHub(4)
	defer h.Close()

	s := h.Subscribe("m-anna")
	h.Unsubscribe(s)
	// Idempotent.
	h.Unsubscribe(s)

	if _, open := <-s.Outbox(); open {
		t.Fatal("outbox should be closed")
	}
}

func TestHubDropsSlowSession(t *testing.T) {
	t.Parallel()

	h := NewHub(1)
	defer h.Close()

	slow := h.Subscribe("m-anna")

	// First frame fills the buffer, second overflows and drops the session.
	if n := h.Publish("m-anna", []byte("one")); n != 1 {
		t.Fatalf("first publish delivered %d, want 1", n)
	}
	if n := h.Publish("m-anna", []byte("two")); n != 0 {
		t.Fatalf("second publish delivered %d, want 0", n)
	}

	if h.HasSession("m-anna") {
		t.Fatal("slow session should have been dropped")
	}

	// The buffered frame is still readable, then the channel closes.
	if msg, open := <-slow.Outbox(); !open || string(msg) != "one" {
		t.Fatalf("buffered frame = %q open=%v", msg, open)
	}
	if _, open := <-slow.Outbox(); open {
		t.Fatal("outbox should be closed after drop")
	}
}

func TestHubPublishConcurrentWithDisconnect(t *testing.T) {
	t.Parallel()

	h := NewHub(1)
	defer h.Close()

	// Publish must never send on a closed outbox, no matter how the
	// disconnect interleaves. Run with -race to catch regressions.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			s := h.Subscribe("m-anna")
			h.Unsubscribe(s)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("publish panicked: %v", r)
		}
	}()
	for {
		select {
		case <-done:
			return
		default:
			h.Publish("m-anna", []byte("x"))
		}
	}
}

func TestEncodeNewNotification(t *testing.T) {
	t.Parallel()

	payload, err := EncodeNewNotification(map[string]string{"instance_id": "i-1"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var frame struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if frame.Event != EventNewNotification {
		t.Fatalf("event = %q, want %q", frame.Event, EventNewNotification)
	}
	if frame.Data["instance_id"] != "i-1" {
		t.Fatalf("data = %v", frame.Data)
	}
}
