package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/jre"
)

func testCache(t *testing.T) *ContactCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}

	client := NewClient(addr)
	t.Cleanup(func() { client.Close() })

	return NewContactCache(client)
}

func TestContactCache_PutAndGet(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	jreID := fmt.Sprintf("jre_test_%d", time.Now().UnixNano())
	contact := jre.Contact{
		JREID:          jreID,
		Mobile:         "9876543210",
		OperatorNumber: "OP-42",
		Found:          true,
	}

	if err := cache.Put(ctx, contact, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cache.Get(ctx, jreID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != contact {
		t.Errorf("got %+v, want %+v", got, contact)
	}
}

func TestContactCache_Get_MissingKey(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, fmt.Sprintf("jre_missing_%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected cache miss for unknown runner")
	}
}

func TestContactCache_NegativeEntry(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	jreID := fmt.Sprintf("jre_negative_%d", time.Now().UnixNano())
	if err := cache.Put(ctx, jre.Contact{JREID: jreID, Found: false}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cache.Get(ctx, jreID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cached negative entry")
	}
	if got.Found {
		t.Error("expected Found to be false")
	}
}

func TestContactCache_Expiry(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	jreID := fmt.Sprintf("jre_expiry_%d", time.Now().UnixNano())
	contact := jre.Contact{JREID: jreID, Mobile: "9123456789", Found: true}

	if err := cache.Put(ctx, contact, 100*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	_, ok, err := cache.Get(ctx, jreID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected entry to expire")
	}
}
