package fanout

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/realtime"
	"memberhub.io/memberhub/internal/store"
)

func init() {
	_ = logger.Init("error", "json")
}

type recordedDelivery struct {
	instanceID  string
	recipientID string
	via         deliveryrecord.DeliveredVia
}

// fakeDeliveries records writes and can simulate duplicates and failures.
type fakeDeliveries struct {
	mu       sync.Mutex
	written  []recordedDelivery
	existing map[string]bool
	failFor  map[string]error
}

func (f *fakeDeliveries) CreateDelivery(_ context.Context, instanceID, recipientID string, via deliveryrecord.DeliveredVia) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[recipientID]; err != nil {
		return false, err
	}
	if f.existing[recipientID] {
		return false, nil
	}
	f.written = append(f.written, recordedDelivery{instanceID, recipientID, via})
	return true, nil
}

func (f *fakeDeliveries) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.written))
	for _, d := range f.written {
		out = append(out, d.recipientID)
	}
	sort.Strings(out)
	return out
}

func (f *fakeDeliveries) viaFor(recipientID string) (deliveryrecord.DeliveredVia, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.written {
		if d.recipientID == recipientID {
			return d.via, true
		}
	}
	return "", false
}

// fakePusher simulates hub session presence.
type fakePusher struct {
	mu       sync.Mutex
	online   map[string]bool
	payloads map[string][][]byte
}

func (f *fakePusher) HasSession(recipientID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.online[recipientID]
}

func (f *fakePusher) Publish(recipientID string, payload []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.online[recipientID] {
		return 0
	}
	if f.payloads == nil {
		f.payloads = make(map[string][][]byte)
	}
	f.payloads[recipientID] = append(f.payloads[recipientID], payload)
	return 1
}

func testItem() store.InboxItem {
	return store.InboxItem{
		InstanceID: "inst-1",
		Title:      "Choir rehearsal",
		Message:    "Moved to 7pm",
		Type:       "REMINDER",
		FiredAt:    time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestDeliverCreatesOneRecordPerRecipient(t *testing.T) {
	t.Parallel()

	deliveries := &fakeDeliveries{}
	pusher := &fakePusher{}
	e := New(deliveries, pusher, nil)

	res := e.Deliver(context.Background(), testItem(), []string{"m-anna", "m-ben"})

	if res.Created != 2 || res.Failed != 0 {
		t.Fatalf("result = %+v, want 2 created", res)
	}
	got := deliveries.recipients()
	want := []string{"m-anna", "m-ben"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("recipients = %v, want %v", got, want)
	}
}

func TestDeliverChannelFollowsSessionPresence(t *testing.T) {
	t.Parallel()

	deliveries := &fakeDeliveries{}
	pusher := &fakePusher{online: map[string]bool{"m-online": true}}
	e := New(deliveries, pusher, nil)

	res := e.Deliver(context.Background(), testItem(), []string{"m-online", "m-offline"})

	if res.Pushed != 1 {
		t.Fatalf("pushed = %d, want 1", res.Pushed)
	}
	if via, ok := deliveries.viaFor("m-online"); !ok || via != deliveryrecord.DeliveredViaLIVE_PUSH {
		t.Fatalf("online via = %v ok=%v, want LIVE_PUSH", via, ok)
	}
	if via, ok := deliveries.viaFor("m-offline"); !ok || via != deliveryrecord.DeliveredViaINITIAL_SYNC {
		t.Fatalf("offline via = %v ok=%v, want INITIAL_SYNC", via, ok)
	}

	frames := pusher.payloads["m-online"]
	if len(frames) != 1 {
		t.Fatalf("online frames = %d, want 1", len(frames))
	}
	var frame struct {
		Event string          `json:"event"`
		Data  store.InboxItem `json:"data"`
	}
	if err := json.Unmarshal(frames[0], &frame); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if frame.Event != realtime.EventNewNotification {
		t.Fatalf("event = %q", frame.Event)
	}
	if frame.Data.InstanceID != "inst-1" {
		t.Fatalf("frame instance = %q", frame.Data.InstanceID)
	}
}

func TestDeliverIsolatesRecipientFailures(t *testing.T) {
	t.Parallel()

	deliveries := &fakeDeliveries{
		failFor: map[string]error{"m-broken": errors.New("write failed")},
	}
	e := New(deliveries, &fakePusher{}, nil)

	res := e.Deliver(context.Background(), testItem(), []string{"m-anna", "m-broken", "m-ben"})

	if res.Created != 2 {
		t.Fatalf("created = %d, want 2", res.Created)
	}
	if res.Failed != 1 {
		t.Fatalf("failed = %d, want 1", res.Failed)
	}
}

func TestDeliverRerunSkipsExistingRecords(t *testing.T) {
	t.Parallel()

	deliveries := &fakeDeliveries{existing: map[string]bool{"m-anna": true}}
	e := New(deliveries, &fakePusher{}, nil)

	res := e.Deliver(context.Background(), testItem(), []string{"m-anna", "m-ben"})

	if res.Created != 1 || res.Skipped != 1 {
		t.Fatalf("result = %+v, want 1 created 1 skipped", res)
	}
}

func TestDeliverEmptySnapshot(t *testing.T) {
	t.Parallel()

	deliveries := &fakeDeliveries{}
	e := New(deliveries, &fakePusher{}, nil)

	res := e.Deliver(context.Background(), testItem(), nil)
	if res != (Result{}) {
		t.Fatalf("result = %+v, want zero", res)
	}
	if len(deliveries.recipients()) != 0 {
		t.Fatal("no records expected")
	}
}
