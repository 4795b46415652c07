package reqctx

import (
	"context"
	"testing"
)

func TestNew_GeneratesID(t *testing.T) {
	rc := New("")
	if rc.RequestID == "" {
		t.Fatal("expected generated request id")
	}
	if rc.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
	if New("").RequestID == rc.RequestID {
		t.Error("expected unique request ids")
	}
}

func TestFromContext(t *testing.T) {
	rc := New("my-custom-id")
	ctx := WithRequestContext(context.Background(), rc)

	if got := FromContext(ctx); got != rc {
		t.Errorf("expected %+v, got %+v", rc, got)
	}
	if got := FromContext(context.Background()); got.RequestID == "" {
		t.Error("expected fallback request id")
	}
}
