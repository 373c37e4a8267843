package object

import (
	"errors"
	"io"
	"strings"
	"testing"

	"jd-backend/internal/shared/util"
)

func TestNewKey(t *testing.T) {
	key, err := NewKey("user-1", `C:\docs\My JD (final).pdf`)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 || parts[0] != util.NamespaceKey("user-1") {
		t.Fatalf("unexpected namespace in %q", key)
	}
	if !strings.HasSuffix(parts[1], "_My_JD_final_.pdf") || len(parts[1]) != 36+len("_My_JD_final_.pdf") {
		t.Fatalf("unexpected name in %q", key)
	}

	other, _ := NewKey("user-1", `C:\docs\My JD (final).pdf`)
	if other == key {
		t.Fatalf("keys should be unique")
	}

	if _, err := NewKey("user-1", ".."); !errors.Is(err, util.ErrInvalidFileName) {
		t.Fatalf("expected ErrInvalidFileName, got %v", err)
	}
}

func TestSniffReplaysBody(t *testing.T) {
	body := "%PDF-1.7\n" + strings.Repeat("x", 1000)
	r, contentType, err := Sniff(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Sniff: %v", err)
	}
	if contentType != "application/pdf" {
		t.Fatalf("content type = %q", contentType)
	}
	got, _ := io.ReadAll(r)
	if string(got) != body {
		t.Fatalf("body not replayed: %d bytes", len(got))
	}

	_, contentType, err = Sniff(strings.NewReader("hi"))
	if err != nil || !strings.HasPrefix(contentType, "text/plain") {
		t.Fatalf("short body: %q %v", contentType, err)
	}
}
