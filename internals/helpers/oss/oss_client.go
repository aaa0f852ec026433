// file: internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/*
OSSService adalah wrapper tipis di atas SDK Aliyun OSS.
Dipakai lewat facade BlobService; controller tidak menyentuh SDK langsung.
*/
type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	BucketName string
	Endpoint   string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap (ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		BucketName: bucketName,
		Endpoint:   endpoint,
		Prefix:     strings.TrimPrefix(prefix, "/"),
	}, nil
}

func (s *OSSService) publicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

func (s *OSSService) buildKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)
	dir = strings.Trim(dir, "/")
	if s.Prefix != "" {
		return fmt.Sprintf("%s%s/%s", s.Prefix, dir, name)
	}
	return fmt.Sprintf("%s/%s", dir, name)
}

// UploadFromFormFile upload multipart apa adanya (tanpa re-encode).
// Return: publicURL, objectKey, contentType.
func (s *OSSService) UploadFromFormFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", "", fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := s.buildKey(dir, fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, f, opts...); err != nil {
		return "", "", "", err
	}
	return s.publicURL(key), key, ct, nil
}

// FetchObject membaca object sebagai stream; caller wajib Close.
func (s *OSSService) FetchObject(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Bucket.GetObject(key, oss.WithContext(ctx))
}

// KeyFromPublicURL membalik publicURL menjadi objectKey.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("object key kosong di URL %q", publicURL)
	}
	return key, nil
}

// DeleteByPublicURL menghapus object berdasar publicURL.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}
