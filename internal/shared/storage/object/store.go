package object

import (
	"context"
	"io"
)

// Object describes a stored upload.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// Store saves and retrieves uploaded documents and their derived artifacts.
type Store interface {
	// Put stores r under a fresh key inside the owner's namespace.
	Put(ctx context.Context, owner string, fileName string, r io.Reader) (Object, error)
	// PutKey stores r at an exact key, replacing any existing object.
	PutKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
