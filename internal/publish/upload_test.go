package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = data
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "page_index.h"},
		{"headers", "headers/page_index.h"},
		{"/fw/v2/", "fw/v2/page_index.h"},
	}
	for _, tt := range tests {
		if got := ObjectKey(tt.prefix, "page_index.h"); got != tt.want {
			t.Errorf("ObjectKey(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(S3Config{Bucket: "assets"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("New error = %v, want ErrNotConfigured", err)
	}

	p, err := New(S3Config{
		Endpoint:        "https://s3.example.com",
		Bucket:          "assets",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Bucket() != "assets" {
		t.Errorf("Bucket = %q", p.Bucket())
	}
}

func TestUpload(t *testing.T) {
	local := filepath.Join(t.TempDir(), "page_index.h")
	content := []byte("#ifndef PAGE_INDEX_H\n#endif\n")
	if err := os.WriteFile(local, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fake := &fakeS3{}
	p := &Publisher{cfg: S3Config{Bucket: "assets", Prefix: "headers"}, client: fake}

	key, err := p.Upload(context.Background(), local, "page_index.h")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if key != "headers/page_index.h" {
		t.Errorf("key = %q", key)
	}
	if aws.ToString(fake.input.Bucket) != "assets" || aws.ToString(fake.input.Key) != key {
		t.Errorf("unexpected input bucket=%q key=%q", aws.ToString(fake.input.Bucket), aws.ToString(fake.input.Key))
	}
	if aws.ToInt64(fake.input.ContentLength) != int64(len(content)) {
		t.Errorf("ContentLength = %d", aws.ToInt64(fake.input.ContentLength))
	}
	if aws.ToString(fake.input.ContentType) != headerContentType {
		t.Errorf("ContentType = %q", aws.ToString(fake.input.ContentType))
	}
	if string(fake.body) != string(content) {
		t.Errorf("uploaded body = %q", fake.body)
	}
}

func TestUploadErrors(t *testing.T) {
	p := &Publisher{cfg: S3Config{Bucket: "assets"}, client: &fakeS3{}}
	if _, err := p.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.h"), "missing.h"); err == nil {
		t.Error("expected error for missing local file")
	}

	local := filepath.Join(t.TempDir(), "page_a.h")
	if err := os.WriteFile(local, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	denied := errors.New("access denied")
	p.client = &fakeS3{err: denied}

	key, err := p.Upload(context.Background(), local, "page_a.h")
	if !errors.Is(err, denied) {
		t.Errorf("Upload error = %v, want %v", err, denied)
	}
	if key != "page_a.h" {
		t.Errorf("key = %q", key)
	}
}
