package fsutil_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/typscii/pkg/fsutil"
)

func FuzzWriteAtomic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("= Title\n\nbody\n"))
	f.Add([]byte("\x1b[1mbold\x1b[0m\n"))
	f.Add([]byte("\x00\x01\x02\x03"))
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "out.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0o644); err != nil {
			t.Fatalf("WriteAtomic failed: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("content mismatch: got %d bytes, want %d", len(got), len(content))
		}
	})
}

func FuzzNormalizeNewlines(f *testing.F) {
	f.Add([]byte("a\r\nb"))
	f.Add([]byte("\r\r\n\n"))
	f.Add([]byte("\xEF\xBB\xBFx\ry"))

	f.Fuzz(func(t *testing.T, content []byte) {
		got := fsutil.NormalizeNewlines(content)
		if strings.Contains(got, "\r") {
			t.Errorf("carriage return survived normalisation: %q", got)
		}
		if fsutil.NormalizeNewlines([]byte(got)) != got && !strings.HasPrefix(got, "\xEF\xBB\xBF") {
			t.Errorf("normalisation is not idempotent for %q", content)
		}
	})
}
