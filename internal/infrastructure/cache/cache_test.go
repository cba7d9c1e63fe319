package cache

import (
	"context"
	"testing"
	"time"
)

func TestSetGetExpire(t *testing.T) {
	c := New[string](context.Background(), 0)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", "x", time.Minute)
	c.Set("forever", "y", 0)
	if v, ok := c.Get("a"); !ok || v != "x" {
		t.Fatalf("get a: %q %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired item still returned")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Fatalf("item without ttl expired")
	}

	c.DeleteExpired()
	if c.Len() != 1 {
		t.Fatalf("len=%d after cleanup, want 1", c.Len())
	}
}

func TestTakeRemoves(t *testing.T) {
	c := New[int](context.Background(), 0)
	c.Set("k", 7, time.Hour)
	if v, ok := c.Take("k"); !ok || v != 7 {
		t.Fatalf("take: %d %v", v, ok)
	}
	if _, ok := c.Take("k"); ok {
		t.Fatalf("second take found the item")
	}
}

func TestJanitorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := New[int](ctx, 5*time.Millisecond)
	c.Set("short", 1, time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for c.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor never removed the expired item")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
}
