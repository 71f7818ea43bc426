package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	if tok, err := store.Get(ctx, "sid-1"); err != nil || tok != "" {
		t.Fatalf("missing entry must be empty, got %q %v", tok, err)
	}
	if err := store.Set(ctx, "sid-1", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tok, _ := store.Get(ctx, "sid-1"); tok != "tok" {
		t.Errorf("get after set: %q", tok)
	}
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if tok, _ := store.Get(ctx, "sid-1"); tok != "" {
		t.Errorf("get after delete: %q", tok)
	}
	// Deleting an absent entry is a no-op.
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestIdentityStore_RoundTrip(t *testing.T) {
	store := NewIdentityStore()
	ctx := context.Background()

	if identity, err := store.Get(ctx, "sid-1"); err != nil || identity != nil {
		t.Fatalf("missing entry must be nil, got %+v %v", identity, err)
	}
	if err := store.Set(ctx, "sid-1", domain.Identity{UserID: 7, Role: domain.RoleUser}); err != nil {
		t.Fatalf("set: %v", err)
	}
	identity, _ := store.Get(ctx, "sid-1")
	if identity == nil || identity.UserID != 7 {
		t.Fatalf("get after set: %+v", identity)
	}

	// The returned identity is a copy; mutating it must not affect the store.
	identity.UserID = 99
	again, _ := store.Get(ctx, "sid-1")
	if again.UserID != 7 {
		t.Error("store entry mutated through returned pointer")
	}
}

func TestTokenStore_ConcurrentAccess(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "sid-1", "tok")
			_, _ = store.Get(ctx, "sid-1")
			_ = store.Delete(ctx, "sid-1")
		}()
	}
	wg.Wait()
}
