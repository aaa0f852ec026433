// file: internals/features/academic/submissions/controller/upload_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
	helperOSS "kampusku_backend/internals/helpers/oss"
)

// POST /uploads — upload file jawaban/lampiran, balikan fileRef opaque.
// Engine lifecycle tidak pernah membaca isi file, hanya URL/key-nya.
func (ctrl *SubmissionController) UploadFile(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveActor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}

	blob, err := helperOSS.GetBlobService()
	if err != nil {
		return apperr.JsonAppError(c, err)
	}

	dir := "submissions/" + actor.UserID.String()
	url, key, ct, err := blob.UploadRawToDir(c.UserContext(), dir, fh)
	if err != nil {
		// ErrTimeout / ErrStorageUnavailable: retryable, bukan request menggantung
		return apperr.JsonAppError(c, err)
	}

	return helper.JsonCreated(c, "File berhasil diunggah", fiber.Map{
		"file_url":     url,
		"object_key":   key,
		"content_type": ct,
	})
}

// GET /uploads/* — proxy unduhan lampiran; objectKey opaque di sisa path.
// Bucket privat tetap bisa diakses tanpa membocorkan kredensial OSS ke klien.
func (ctrl *SubmissionController) DownloadFile(c *fiber.Ctx) error {
	if _, err := helperAuth.ResolveActor(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	key := strings.TrimPrefix(strings.TrimSpace(c.Params("*")), "/")
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Object key kosong")
	}

	blob, err := helperOSS.GetBlobService()
	if err != nil {
		return apperr.JsonAppError(c, err)
	}

	rc, err := blob.FetchByKey(c.UserContext(), key)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}
	return c.SendStream(rc)
}
