// file: internals/helpers/apperr/apperr.go
package apperr

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "kampusku_backend/internals/helpers"
)

// Taxonomy error inti lifecycle & agregasi.
// Error validasi/eligibilitas bersifat terminal untuk request tsb;
// storage/timeout boleh di-retry oleh caller (engine tidak retry sendiri).
var (
	ErrNotEnrolled        = errors.New("mahasiswa tidak terdaftar di mata kuliah ini")
	ErrDueDatePassed      = errors.New("tenggat tugas sudah lewat")
	ErrAlreadySubmitted   = errors.New("tugas sudah pernah dikumpulkan")
	ErrInvalidGrade       = errors.New("nilai di luar rentang yang diizinkan")
	ErrMissingFeedback    = errors.New("feedback wajib diisi")
	ErrInvalidDueDate     = errors.New("tenggat tugas tidak valid")
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrStorageUnavailable = errors.New("layanan penyimpanan file sedang tidak tersedia")
	ErrTimeout            = errors.New("permintaan melewati batas waktu")
	ErrConflict           = errors.New("data berubah di proses lain, silakan ulangi")
	ErrSubmissionLocked   = errors.New("submission sudah dinilai dan terkunci")
	ErrInvalidTransition  = errors.New("operasi tidak diizinkan pada status submission saat ini")
)

type meta struct {
	Status    int
	Code      string
	Retryable bool
}

var metaByErr = map[error]meta{
	ErrNotEnrolled:        {fiber.StatusForbidden, "NOT_ENROLLED", false},
	ErrDueDatePassed:      {fiber.StatusUnprocessableEntity, "DUE_DATE_PASSED", false},
	ErrAlreadySubmitted:   {fiber.StatusConflict, "ALREADY_SUBMITTED", false},
	ErrInvalidGrade:       {fiber.StatusUnprocessableEntity, "INVALID_GRADE", false},
	ErrMissingFeedback:    {fiber.StatusUnprocessableEntity, "MISSING_FEEDBACK", false},
	ErrInvalidDueDate:     {fiber.StatusInternalServerError, "INVALID_DUE_DATE", false},
	ErrNotFound:           {fiber.StatusNotFound, "NOT_FOUND", false},
	ErrStorageUnavailable: {fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", true},
	ErrTimeout:            {fiber.StatusGatewayTimeout, "TIMEOUT", true},
	ErrConflict:           {fiber.StatusConflict, "CONFLICT", true},
	ErrSubmissionLocked:   {fiber.StatusUnprocessableEntity, "SUBMISSION_LOCKED", false},
	ErrInvalidTransition:  {fiber.StatusUnprocessableEntity, "INVALID_TRANSITION", false},
}

// Status mengembalikan HTTP status untuk error taxonomy (500 bila di luar taxonomy).
func Status(err error) int {
	for sentinel, m := range metaByErr {
		if errors.Is(err, sentinel) {
			return m.Status
		}
	}
	return fiber.StatusInternalServerError
}

// Code mengembalikan error_code stabil untuk response envelope.
func Code(err error) string {
	for sentinel, m := range metaByErr {
		if errors.Is(err, sentinel) {
			return m.Code
		}
	}
	return "INTERNAL_ERROR"
}

// Retryable: true hanya untuk storage/timeout/conflict (boleh backoff di caller).
func Retryable(err error) bool {
	for sentinel, m := range metaByErr {
		if errors.Is(err, sentinel) {
			return m.Retryable
		}
	}
	return false
}

// IsUniqueViolation mendeteksi pelanggaran unique constraint dari Postgres.
// Dipakai untuk menerjemahkan race double-submit menjadi ErrAlreadySubmitted.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "duplicate key") || strings.Contains(le, "unique constraint")
}

// FromDB memetakan error gorm umum ke taxonomy.
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case IsUniqueViolation(err):
		return ErrAlreadySubmitted
	default:
		return err
	}
}

// JsonAppError merender error taxonomy ke envelope standar.
// Error di luar taxonomy jatuh ke 500 dengan pesan asli (tidak pernah ditelan diam-diam).
func JsonAppError(c *fiber.Ctx, err error) error {
	return helper.JsonErrorCode(c, Status(err), Code(err), err.Error(), Retryable(err))
}
