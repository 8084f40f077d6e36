package uploader

import (
	"context"
	"errors"
	"mime/multipart"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	fail     string
}

func (f *fakeUploader) UploadFile(_ context.Context, file *multipart.FileHeader) (string, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	if file.Filename == f.fail {
		return "", errors.New("oss unavailable")
	}
	return "https://cdn/" + file.Filename, nil
}

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(names))
	for _, n := range names {
		out = append(out, &multipart.FileHeader{Filename: n})
	}
	return out
}

func TestUploadAll(t *testing.T) {
	t.Run("Keeps order and bounds concurrency", func(t *testing.T) {
		u := &fakeUploader{}

		urls, err := UploadAll(context.Background(), u, headers("a", "b", "c", "d", "e", "f"), 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn/a", "https://cdn/b", "https://cdn/c", "https://cdn/d", "https://cdn/e", "https://cdn/f"}, urls)
		assert.LessOrEqual(t, u.peak.Load(), int32(2))
	})

	t.Run("Any failure fails the batch", func(t *testing.T) {
		u := &fakeUploader{fail: "b"}

		urls, err := UploadAll(context.Background(), u, headers("a", "b", "c"), 0)

		assert.EqualError(t, err, "oss unavailable")
		assert.Nil(t, urls)
	})
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "Photo.JPG")
	assert.Regexp(t, regexp.MustCompile(`^feeds/20240501/[0-9a-f-]{36}\.jpg$`), key)
}
