package middleware

import (
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("user-1") {
			t.Fatalf("Expected request %d within burst to be allowed", i)
		}
	}
	if rl.Allow("user-1") {
		t.Error("Expected request over burst to be denied")
	}
}

func TestRateLimiter_UsersAreIndependent(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	if !rl.Allow("user-1") {
		t.Fatal("Expected first request to be allowed")
	}
	if rl.Allow("user-1") {
		t.Error("Expected user-1 to be limited")
	}
	if !rl.Allow("user-2") {
		t.Error("Expected user-2 to have its own bucket")
	}
}

func TestRateLimiter_GetStateUnknownUser(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 5)
	defer rl.Stop()

	remaining, _ := rl.GetState("never-seen")
	if remaining != 5 {
		t.Errorf("Expected full burst for unknown user, got %d", remaining)
	}
}
