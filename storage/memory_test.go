package storage

import (
	"context"
	"testing"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, err := kv.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get missing key err = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	val, err := kv.Get(ctx, "k")
	if err != nil || val != "v2" {
		t.Errorf("Get = %q, %v; want v2", val, err)
	}

	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := kv.Get(ctx, "k"); err != ErrNotFound {
		t.Errorf("Get after Remove err = %v, want ErrNotFound", err)
	}
	// Removing an absent key is a no-op.
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Errorf("Remove absent key: %v", err)
	}
}
