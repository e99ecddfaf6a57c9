package auth

import (
	"context"
	"testing"
)

func TestWithAuthRoundTrip(t *testing.T) {
	ctx := WithAuth(context.Background(), AuthContext{UserID: "user-1", SessionToken: "tok"})

	ac, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected auth context to be present")
	}
	if ac.UserID != "user-1" {
		t.Errorf("user id = %q, want %q", ac.UserID, "user-1")
	}
	if UserID(ctx) != "user-1" {
		t.Errorf("UserID(ctx) = %q, want %q", UserID(ctx), "user-1")
	}
}

func TestEmptyContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no auth context on empty context")
	}
	if UserID(context.Background()) != "" {
		t.Error("expected empty user id on empty context")
	}
}
