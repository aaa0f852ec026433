package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusAndCodeMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrNotEnrolled, fiber.StatusForbidden, "NOT_ENROLLED"},
		{ErrDueDatePassed, fiber.StatusUnprocessableEntity, "DUE_DATE_PASSED"},
		{ErrAlreadySubmitted, fiber.StatusConflict, "ALREADY_SUBMITTED"},
		{ErrInvalidGrade, fiber.StatusUnprocessableEntity, "INVALID_GRADE"},
		{ErrMissingFeedback, fiber.StatusUnprocessableEntity, "MISSING_FEEDBACK"},
		{ErrInvalidDueDate, fiber.StatusInternalServerError, "INVALID_DUE_DATE"},
		{ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{ErrStorageUnavailable, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{ErrTimeout, fiber.StatusGatewayTimeout, "TIMEOUT"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), tc.code)
		assert.Equal(t, tc.code, Code(tc.err), tc.code)
	}
}

func TestStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("submit gagal: %w", ErrDueDatePassed)
	assert.Equal(t, fiber.StatusUnprocessableEntity, Status(wrapped))
	assert.Equal(t, "DUE_DATE_PASSED", Code(wrapped))
}

func TestRetryableFlags(t *testing.T) {
	assert.True(t, Retryable(ErrStorageUnavailable))
	assert.True(t, Retryable(ErrTimeout))
	assert.False(t, Retryable(ErrNotEnrolled))
	assert.False(t, Retryable(ErrAlreadySubmitted))
	assert.False(t, Retryable(errors.New("lainnya")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`pq: duplicate key value violates unique constraint "uq_submission_assignment_student"`)))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestFromDB(t *testing.T) {
	assert.ErrorIs(t, FromDB(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, FromDB(errors.New("duplicate key value violates unique constraint")), ErrAlreadySubmitted)
	assert.NoError(t, FromDB(nil))

	other := errors.New("disk full")
	assert.Equal(t, other, FromDB(other))
}
