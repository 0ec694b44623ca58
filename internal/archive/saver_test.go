package archive

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

func TestDirSaver_WritesAndAvoidsOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := &DirSaver{Dir: dir}

	first, err := s.Save(context.Background(), "a.zip", []byte("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first != filepath.Join(dir, "a.zip") {
		t.Fatalf("first path = %q", first)
	}
	second, err := s.Save(context.Background(), "a.zip", []byte("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if second != filepath.Join(dir, "a-1.zip") {
		t.Fatalf("second path = %q, want a-1.zip", second)
	}
	body, err := os.ReadFile(first)
	if err != nil || string(body) != "one" {
		t.Fatalf("first file = %q, %v", body, err)
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Saver_PutsObject(t *testing.T) {
	fake := &fakePutter{}
	s := &S3Saver{Client: fake, Bucket: "tiles", Prefix: "exports/morocco"}
	loc, err := s.Save(context.Background(), "a.zip", []byte("zipdata"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if loc != "s3://tiles/exports/morocco/a.zip" {
		t.Fatalf("location = %q", loc)
	}
	if aws.ToString(fake.input.Bucket) != "tiles" || aws.ToString(fake.input.Key) != "exports/morocco/a.zip" {
		t.Fatalf("input = %+v", fake.input)
	}
	if string(fake.body) != "zipdata" || aws.ToInt64(fake.input.ContentLength) != 7 {
		t.Fatalf("body = %q len=%d", fake.body, aws.ToInt64(fake.input.ContentLength))
	}
}

func TestS3Saver_Error(t *testing.T) {
	s := &S3Saver{Client: &fakePutter{err: errors.New("denied")}, Bucket: "b"}
	if _, err := s.Save(context.Background(), "a.zip", nil); err == nil {
		t.Fatalf("Save returned nil error")
	}
}

func TestParseS3URL(t *testing.T) {
	cases := []struct {
		in, bucket, prefix string
		ok                 bool
	}{
		{"s3://b", "b", "", true},
		{"s3://b/", "b", "", true},
		{"s3://b/p/q/", "b", "p/q", true},
		{"s3:///p", "", "", false},
	}
	for _, c := range cases {
		bucket, prefix, err := parseS3URL(c.in)
		if (err == nil) != c.ok || bucket != c.bucket || prefix != c.prefix {
			t.Fatalf("parseS3URL(%q) = %q,%q,%v", c.in, bucket, prefix, err)
		}
	}
}

func TestNewSaver_LocalDir(t *testing.T) {
	s, err := NewSaver(context.Background(), "/tmp/out", "")
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	if d, ok := s.(*DirSaver); !ok || d.Dir != "/tmp/out" {
		t.Fatalf("NewSaver = %#v, want DirSaver", s)
	}
}
