package helper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/helpers/apperr"
)

// DeleteByPublicURL bergantung pada pembalikan URL -> objectKey;
// URL hasil publicURL harus bisa dibalik utuh.
func TestKeyFromPublicURLRoundTrip(t *testing.T) {
	s := &OSSService{
		BucketName: "kampusku-files",
		Endpoint:   "https://oss-ap-southeast-5.aliyuncs.com",
	}

	key := "uploads/submissions/abc/1756400000-xyz.pdf"
	url := s.publicURL(key)
	assert.Equal(t, "https://kampusku-files.oss-ap-southeast-5.aliyuncs.com/"+key, url)

	got, err := s.KeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestKeyFromPublicURLRejectsEmptyPath(t *testing.T) {
	s := &OSSService{BucketName: "b", Endpoint: "https://oss.example.com"}
	_, err := s.KeyFromPublicURL("https://b.oss.example.com/")
	assert.Error(t, err)
}

// Error SDK/context harus keluar sebagai taxonomy retryable, bukan error mentah.
func TestTranslateBlobErr(t *testing.T) {
	assert.ErrorIs(t, translateBlobErr(context.DeadlineExceeded), apperr.ErrTimeout)
	assert.ErrorIs(t, translateBlobErr(context.Canceled), apperr.ErrTimeout)
	assert.ErrorIs(t, translateBlobErr(errors.New("oss: service unavailable")), apperr.ErrStorageUnavailable)
}
