// file: internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sync"
	"time"

	"kampusku_backend/internals/helpers/apperr"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Inti sistem hanya menyimpan URL/objectKey opaque — isi file tidak pernah
diinterpretasi oleh engine lifecycle.
*/
type BlobService interface {
	// UploadRawToDir mengunggah file multipart apa adanya ke direktori logis.
	// Return: publicURL, objectKey, contentType.
	UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)

	// FetchByKey membaca kembali object (dipakai proxy unduhan lampiran).
	FetchByKey(ctx context.Context, objectKey string) (io.ReadCloser, error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// UploadTimeout: batas waktu satu kali upload; lewat dari ini caller
// menerima ErrTimeout yang retryable, bukan request menggantung.
const UploadTimeout = 15 * time.Second

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", apperr.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	url, key, ct, err := b.svc.UploadFromFormFile(ctx, dir, fh)
	if err != nil {
		return "", "", "", translateBlobErr(err)
	}
	return url, key, ct, nil
}

func (b *OSSBlobService) FetchByKey(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()
	rc, err := b.svc.FetchObject(ctx, objectKey)
	if err != nil {
		return nil, translateBlobErr(err)
	}
	return rc, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return translateBlobErr(err)
	}
	return nil
}

func translateBlobErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.ErrTimeout
	case errors.Is(err, context.Canceled):
		return apperr.ErrTimeout
	default:
		return apperr.ErrStorageUnavailable
	}
}

/* ===============================
   Lazy singleton (dipakai controller upload)
=================================*/

var (
	blobOnce sync.Once
	blobSvc  BlobService
	blobErr  error
)

// GetBlobService menginisialisasi BlobService sekali dari ENV.
func GetBlobService() (BlobService, error) {
	blobOnce.Do(func() {
		blobSvc, blobErr = NewOSSBlobServiceFromEnv("uploads/")
	})
	if blobErr != nil {
		return nil, apperr.ErrStorageUnavailable
	}
	return blobSvc, nil
}
