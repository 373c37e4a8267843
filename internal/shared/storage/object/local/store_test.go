package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestPutAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	obj, err := store.Put(ctx, "user-1", "Backend Engineer.pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasSuffix(obj.Key, "_Backend_Engineer.pdf") {
		t.Fatalf("unexpected key %q", obj.Key)
	}
	if obj.Size != int64(len("%PDF-1.4 body")) {
		t.Fatalf("size = %d", obj.Size)
	}
	if obj.ContentType != "application/pdf" {
		t.Fatalf("content type = %q", obj.ContentType)
	}

	rc, err := store.Open(ctx, obj.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "%PDF-1.4 body" {
		t.Fatalf("round trip mismatch: %q", data)
	}
}

func TestPutKeyRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.PutKey(context.Background(), "../outside.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}

func TestPutRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(t.TempDir()).Put(ctx, "u", "a.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected context error")
	}
}
