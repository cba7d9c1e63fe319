package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixed = time.Date(2025, 5, 20, 13, 30, 0, 0, time.UTC)

func newTestTracker(sink Sink, log *logger.Logger) *Tracker {
	tr := NewTracker(sink, log)
	tr.now = func() time.Time { return fixed }
	return tr
}

func TestEventJSONIsFlat(t *testing.T) {
	q := NewMemoryQueue(0)
	tr := newTestTracker(q, nil)
	tr.SuitabilityComplete(context.Background(), 3, "Moderate", 12)

	events := q.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events", len(events))
	}
	data, err := json.Marshal(events[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat["event"] != SuitabilityComplete || flat["profile"] != "Moderate" || flat["score"] != float64(12) || flat["user_id"] != float64(3) {
		t.Fatalf("unexpected payload %s", data)
	}
	if flat["timestamp"] != "2025-05-20T13:30:00Z" {
		t.Fatalf("timestamp=%v", flat["timestamp"])
	}
}

func TestQueueKeepsOrder(t *testing.T) {
	q := NewMemoryQueue(0)
	tr := newTestTracker(q, nil)
	ctx := context.Background()
	tr.ChatStart(ctx, 1)
	tr.ChatMessage(ctx, 1, "user")
	tr.ChatMessage(ctx, 1, "assistant")
	tr.ChatEnd(ctx, 1, 9)

	want := []string{ChatStart, ChatMessage, ChatMessage, ChatEnd}
	got := q.Events()
	if len(got) != len(want) {
		t.Fatalf("got %d events", len(got))
	}
	for i, e := range got {
		if e.Name != want[i] {
			t.Fatalf("event %d = %s, want %s", i, e.Name, want[i])
		}
	}
	if got[3].Fields["session_id"] != 9 {
		t.Fatalf("chat_end fields: %v", got[3].Fields)
	}
}

type failingSink struct{}

func (failingSink) Publish(context.Context, Event) error { return errors.New("broker down") }

func TestFailuresAreLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	tr := newTestTracker(failingSink{}, log)
	tr.CardRemove(context.Background(), 2, 1)

	if logs.FilterMessage("analytics publish failed").Len() != 1 {
		t.Fatalf("failure was not logged")
	}
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tr *Tracker
	tr.UserLogout(context.Background(), 1)
}

func TestPageViewAnonymous(t *testing.T) {
	q := NewMemoryQueue(0)
	tr := newTestTracker(q, nil)
	tr.PageView(context.Background(), "plans", nil)
	id := 4
	tr.Error(context.Background(), "checkout", "card declined", &id)

	events := q.Events()
	if events[0].Fields["user_id"] != nil {
		t.Fatalf("anonymous page view carries user id %v", events[0].Fields["user_id"])
	}
	if events[1].Fields["user_id"] != 4 {
		t.Fatalf("error event user id %v", events[1].Fields["user_id"])
	}
}

func TestRedisStreamPublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tr := newTestTracker(NewRedisStream(client, "analytics:events", 0), nil)
	tr.PaymentSuccess(context.Background(), 2, 5, 1, 29.9)

	msgs, err := client.XRange(context.Background(), "analytics:events", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d stream entries", len(msgs))
	}
	if msgs[0].Values["event"] != PaymentSuccess {
		t.Fatalf("event field=%v", msgs[0].Values["event"])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(msgs[0].Values["payload"].(string)), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["payment_id"] != float64(5) || payload["amount"] != 29.9 {
		t.Fatalf("payload=%v", payload)
	}
}

func TestQueueDropsOldestWhenFull(t *testing.T) {
	q := NewMemoryQueue(3)
	tr := newTestTracker(q, nil)
	ctx := context.Background()
	for id := 1; id <= 5; id++ {
		tr.UserLogout(ctx, id)
	}

	got := q.Events()
	if len(got) != 3 {
		t.Fatalf("queue holds %d events, want 3", len(got))
	}
	for i, want := range []int{3, 4, 5} {
		if got[i].UserID() != want {
			t.Fatalf("event %d belongs to user %d, want %d", i, got[i].UserID(), want)
		}
	}
	if q.Dropped() != 2 {
		t.Fatalf("dropped=%d, want 2", q.Dropped())
	}
}

func TestQueueRecentFiltersByUser(t *testing.T) {
	q := NewMemoryQueue(0)
	tr := newTestTracker(q, nil)
	ctx := context.Background()
	tr.ChatStart(ctx, 1)
	tr.ChatStart(ctx, 2)
	tr.ChatMessage(ctx, 1, "user")
	tr.PageView(ctx, "plans", nil)
	tr.ChatEnd(ctx, 1, 7)

	got, err := q.Recent(ctx, 1, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].Name != ChatEnd || got[1].Name != ChatMessage {
		t.Fatalf("recent for user 1: %+v", got)
	}
	if none, _ := q.Recent(ctx, 9, 10); len(none) != 0 {
		t.Fatalf("user 9 has no events, got %d", len(none))
	}
}

func TestRedisStreamRecent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	stream := NewRedisStream(client, "analytics:events", 0)
	tr := newTestTracker(stream, nil)
	ctx := context.Background()
	tr.CardAdd(ctx, 2, "Visa")
	tr.CardAdd(ctx, 3, "Mastercard")
	tr.CardRemove(ctx, 2, 5)

	got, err := stream.Recent(ctx, 2, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].Name != CardRemove || got[1].Name != CardAdd {
		t.Fatalf("recent for user 2: %+v", got)
	}
	if got[1].Fields["card_brand"] != "Visa" || !got[1].Timestamp.Equal(fixed) {
		t.Fatalf("decoded event %+v", got[1])
	}
}
