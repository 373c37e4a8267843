package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeAPI struct {
	objects map[string][]byte
	puts    []*s3.PutObjectInput
	putErr  error
}

func (f *fakeAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[aws.ToString(in.Key)] = data
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "ns/role.pdf", want: "ns/role.pdf"},
		{name: "simple prefix", prefix: "job-descriptions", key: "ns/role.pdf", want: "job-descriptions/ns/role.pdf"},
		{name: "leading slash key", prefix: "job-descriptions", key: "/ns/role.pdf", want: "job-descriptions/ns/role.pdf"},
		{name: "empty key", prefix: "job-descriptions", key: "", want: "job-descriptions"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(normalizePrefix(tt.prefix), tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestPutUsesPrefixAndEncryption(t *testing.T) {
	fake := &fakeAPI{}
	store := newWithClient(fake, Options{Bucket: "jd-uploads", Prefix: "/job-descriptions/", KMSKeyID: "kms-1"})

	obj, err := store.Put(context.Background(), "user-1", "role.pdf", strings.NewReader("%PDF-1.7 data"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if len(fake.puts) != 1 {
		t.Fatalf("expected one put, got %d", len(fake.puts))
	}
	in := fake.puts[0]
	if aws.ToString(in.Bucket) != "jd-uploads" {
		t.Fatalf("bucket = %q", aws.ToString(in.Bucket))
	}
	if !strings.HasPrefix(aws.ToString(in.Key), "job-descriptions/") {
		t.Fatalf("key = %q", aws.ToString(in.Key))
	}
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(in.SSEKMSKeyId) != "kms-1" {
		t.Fatalf("unexpected encryption settings")
	}
	if obj.ContentType != "application/pdf" || obj.Size != int64(len("%PDF-1.7 data")) {
		t.Fatalf("unexpected object %+v", obj)
	}

	rc, err := store.Open(context.Background(), obj.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "%PDF-1.7 data" {
		t.Fatalf("round trip mismatch: %q", data)
	}
}

func TestPutKeyWrapsErrors(t *testing.T) {
	fake := &fakeAPI{putErr: errors.New("access denied")}
	store := newWithClient(fake, Options{Bucket: "b"})
	_, err := store.PutKey(context.Background(), "k.txt", "text/plain", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "bucket=b key=k.txt") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error for missing bucket")
	}
}
